package resort

import (
	"strings"

	"skipass-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName      = errs.New("resort name is required")
	ErrEmptySlug      = errs.New("resort slug is required")
	ErrEmptyTierLabel = errs.New("price tier label is required")
	ErrInvalidAmount  = errs.New("price tier amount must be positive with at most two decimals")
	ErrNegativeLength = errs.New("slope length cannot be negative")
	ErrDuplicateTier  = errs.New("price tier labels must be unique per resort")
)

type PriceTier struct {
	id     uuid.UUID
	label  string
	amount decimal.Decimal
}

func NewPriceTier(label string, amount decimal.Decimal) (PriceTier, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return PriceTier{}, errs.Mark(ErrEmptyTierLabel, errs.ErrInvalidInput)
	}
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) {
		return PriceTier{}, errs.Mark(ErrInvalidAmount, errs.ErrInvalidInput)
	}
	return PriceTier{id: uuid.New(), label: label, amount: amount}, nil
}

func ReconstructPriceTier(id uuid.UUID, label string, amount decimal.Decimal) PriceTier {
	return PriceTier{id: id, label: label, amount: amount}
}

func (t PriceTier) ID() uuid.UUID           { return t.id }
func (t PriceTier) Label() string           { return t.label }
func (t PriceTier) Amount() decimal.Decimal { return t.amount }

// Details holds the descriptive fields shown on the resort screen.
type Details struct {
	Location      string
	SlopeLengthKm decimal.Decimal
	Difficulty    string
	RouteName     string
	LiftInfo      string
	RentalInfo    string
	Description   string
}

type Resort struct {
	id      uuid.UUID
	slug    string
	name    string
	details Details
	tiers   []PriceTier
}

func NewResort(slug, name string, details Details, tiers []PriceTier) (*Resort, error) {
	slug = strings.TrimSpace(slug)
	name = strings.TrimSpace(name)
	if slug == "" {
		return nil, errs.Mark(ErrEmptySlug, errs.ErrInvalidInput)
	}
	if name == "" {
		return nil, errs.Mark(ErrEmptyName, errs.ErrInvalidInput)
	}
	if details.SlopeLengthKm.IsNegative() {
		return nil, errs.Mark(ErrNegativeLength, errs.ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(tiers))
	for _, t := range tiers {
		key := strings.ToLower(t.label)
		if _, dup := seen[key]; dup {
			return nil, errs.Mark(ErrDuplicateTier, errs.ErrInvalidInput)
		}
		seen[key] = struct{}{}
	}

	return &Resort{id: uuid.New(), slug: slug, name: name, details: details, tiers: tiers}, nil
}

func Reconstruct(id uuid.UUID, slug, name string, details Details, tiers []PriceTier) *Resort {
	return &Resort{id: id, slug: slug, name: name, details: details, tiers: tiers}
}

func (r *Resort) ID() uuid.UUID           { return r.id }
func (r *Resort) Slug() string            { return r.slug }
func (r *Resort) Name() string            { return r.name }
func (r *Resort) Details() Details        { return r.details }
func (r *Resort) PriceTiers() []PriceTier { return r.tiers }

// Tier looks up one of the resort's price tiers by id.
func (r *Resort) Tier(id uuid.UUID) (PriceTier, bool) {
	for _, t := range r.tiers {
		if t.id == id {
			return t, true
		}
	}
	return PriceTier{}, false
}

// MatchesName reports a case-insensitive substring match; an empty query matches everything.
func (r *Resort) MatchesName(q string) bool {
	q = strings.TrimSpace(q)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.name), strings.ToLower(q))
}
