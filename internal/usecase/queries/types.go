package queries

import (
	"time"

	"skipass-api/internal/domain/pass"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PassView is a purchase annotated with everything derived from the clock.
type PassView struct {
	ID                  uuid.UUID
	ResortName          string
	PriceAmount         decimal.Decimal
	PurchasedAt         time.Time
	ActivatedAt         *time.Time
	Status              pass.Status
	ValidUntil          *time.Time
	PermittedOperations []pass.Operation
}

type EntryProofView struct {
	PurchaseID uuid.UUID
	Payload    string
	ValidUntil time.Time
}

// ResortView is JSON-tagged because it is also the catalog cache payload.
type ResortView struct {
	ID            uuid.UUID       `json:"id"`
	Slug          string          `json:"slug"`
	Name          string          `json:"name"`
	Location      string          `json:"location"`
	SlopeLengthKm decimal.Decimal `json:"slope_length_km"`
	Difficulty    string          `json:"difficulty"`
	RouteName     string          `json:"route_name"`
	LiftInfo      string          `json:"lift_info"`
	RentalInfo    string          `json:"rental_info"`
	Description   string          `json:"description"`
	PriceTiers    []PriceTierView `json:"price_tiers"`
}

type PriceTierView struct {
	ID     uuid.UUID       `json:"id"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      string
	IsActive  bool
	LastLogin *time.Time
	CreatedAt time.Time
}

func NewPassView(p *pass.Purchase, now time.Time) *PassView {
	return &PassView{
		ID:                  p.ID(),
		ResortName:          p.ResortName().String(),
		PriceAmount:         p.Price().Amount(),
		PurchasedAt:         p.PurchasedAt(),
		ActivatedAt:         p.ActivatedAt(),
		Status:              p.Status(now),
		ValidUntil:          p.ValidUntil(),
		PermittedOperations: p.PermittedOperations(now),
	}
}
