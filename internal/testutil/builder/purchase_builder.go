//go:build unit || e2e

package builder

import (
	"time"

	"skipass-api/internal/domain/pass"
	"skipass-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	ResortName  string
	Price       string
	PurchasedAt time.Time
	ActivatedAt *time.Time
}

func NewPurchaseBuilder() *PurchaseBuilder {
	return &PurchaseBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		ResortName:  "Straja",
		Price:       "130",
		PurchasedAt: time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC),
	}
}

func (b *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(b)
	return b
}

func (b *PurchaseBuilder) WithOwner(id uuid.UUID) *PurchaseBuilder {
	b.OwnerID = id
	return b
}

func (b *PurchaseBuilder) WithResort(name, price string) *PurchaseBuilder {
	b.ResortName = name
	b.Price = price
	return b
}

func (b *PurchaseBuilder) WithPurchasedAt(t time.Time) *PurchaseBuilder {
	b.PurchasedAt = t
	return b
}

func (b *PurchaseBuilder) WithActivatedAt(t time.Time) *PurchaseBuilder {
	b.ActivatedAt = &t
	return b
}

// Build panics on invalid input; builders are only fed literals in tests.
func (b *PurchaseBuilder) Build() *pass.Purchase {
	name, err := pass.NewResortName(b.ResortName)
	if err != nil {
		panic(err)
	}
	price, err := pass.NewPrice(decimal.RequireFromString(b.Price))
	if err != nil {
		panic(err)
	}
	var activatedAt *time.Time
	if b.ActivatedAt != nil {
		t := *b.ActivatedAt
		activatedAt = &t
	}
	return pass.Reconstruct(b.ID, b.OwnerID, name, price, b.PurchasedAt, activatedAt)
}

func (b *PurchaseBuilder) BuildView(now time.Time) *queries.PassView {
	return queries.NewPassView(b.Build(), now)
}
