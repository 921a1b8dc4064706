package shared

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type PriceTierSnapshot struct {
	ID         uuid.UUID
	ResortName string
	Label      string
	Amount     decimal.Decimal
}

type UserCredentialsSnapshot struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Role         string
	PasswordHash string
	IsActive     bool
}
