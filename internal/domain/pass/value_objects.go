package pass

import (
	"strings"

	"skipass-api/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const MaxResortNameLength = 200

var (
	ErrEmptyResortName   = errs.New("resort name is required")
	ErrResortNameTooLong = errs.New("resort name is too long")
	ErrEmptyPrice        = errs.New("price amount is required")
	ErrInvalidPrice      = errs.New("price amount must be a positive amount with at most two decimals")
)

type ResortName struct {
	value string
}

func NewResortName(s string) (ResortName, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return ResortName{}, errs.Mark(ErrEmptyResortName, errs.ErrInvalidInput)
	}
	if len([]rune(t)) > MaxResortNameLength {
		return ResortName{}, errs.Mark(ErrResortNameTooLong, errs.ErrInvalidInput)
	}
	return ResortName{value: t}, nil
}

func (n ResortName) String() string { return n.value }

type Price struct {
	amount decimal.Decimal
}

// ParsePrice accepts plain decimal strings such as "130" or "129.50".
func ParsePrice(s string) (Price, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Price{}, errs.Mark(ErrEmptyPrice, errs.ErrInvalidInput)
	}
	d, err := decimal.NewFromString(t)
	if err != nil {
		return Price{}, errs.Mark(errs.Wrap(ErrInvalidPrice, err.Error()), errs.ErrInvalidInput)
	}
	return NewPrice(d)
}

func NewPrice(d decimal.Decimal) (Price, error) {
	if !d.IsPositive() || !d.Equal(d.Round(2)) {
		return Price{}, errs.Mark(ErrInvalidPrice, errs.ErrInvalidInput)
	}
	return Price{amount: d}, nil
}

func (p Price) Amount() decimal.Decimal { return p.amount }

func (p Price) String() string { return p.amount.StringFixed(2) }
