package pass

import (
	"time"

	"skipass-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// Purchase is a day pass bought by one owner. Status is never stored; it is
// derived from activatedAt and the caller's notion of now.
type Purchase struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	resortName  ResortName
	price       Price
	purchasedAt time.Time
	activatedAt *time.Time
}

func NewPurchase(ownerID uuid.UUID, resortName, priceAmount string, now time.Time) (*Purchase, error) {
	if ownerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}

	name, err := NewResortName(resortName)
	if err != nil {
		return nil, err
	}

	price, err := ParsePrice(priceAmount)
	if err != nil {
		return nil, err
	}

	return &Purchase{
		id:          uuid.New(),
		ownerID:     ownerID,
		resortName:  name,
		price:       price,
		purchasedAt: now,
	}, nil
}

// Reconstruct rebuilds a purchase from stored values without re-validating them.
func Reconstruct(id, ownerID uuid.UUID, resortName ResortName, price Price, purchasedAt time.Time, activatedAt *time.Time) *Purchase {
	return &Purchase{
		id:          id,
		ownerID:     ownerID,
		resortName:  resortName,
		price:       price,
		purchasedAt: purchasedAt,
		activatedAt: activatedAt,
	}
}

func (p *Purchase) ID() uuid.UUID           { return p.id }
func (p *Purchase) OwnerID() uuid.UUID      { return p.ownerID }
func (p *Purchase) ResortName() ResortName  { return p.resortName }
func (p *Purchase) Price() Price            { return p.price }
func (p *Purchase) PurchasedAt() time.Time  { return p.purchasedAt }
func (p *Purchase) ActivatedAt() *time.Time { return p.activatedAt }

func (p *Purchase) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && p.ownerID == userID
}

func (p *Purchase) Status(now time.Time) Status {
	return DeriveStatus(p.activatedAt, now)
}

// ValidUntil is nil while the pass is pending.
func (p *Purchase) ValidUntil() *time.Time {
	if p.activatedAt == nil {
		return nil
	}
	until := p.activatedAt.Add(ValidityWindow)
	return &until
}

func (p *Purchase) PermittedOperations(now time.Time) []Operation {
	return PermittedOperations(p.Status(now))
}

// Activate stamps activatedAt exactly once. now earlier than purchasedAt is
// clamped so the stored order can never invert.
func (p *Purchase) Activate(now time.Time) error {
	if p.activatedAt != nil {
		return errs.ErrAlreadyActivated
	}
	if now.Before(p.purchasedAt) {
		now = p.purchasedAt
	}
	p.activatedAt = &now
	return nil
}
