// Package checkout validates the simulated payment card submitted with a pass
// purchase. Card values are checked and dropped; nothing here is persisted.
package checkout

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"skipass-api/internal/pkg/errs"
)

var (
	ErrMissingCardField  = errs.New("all card fields are required")
	ErrInvalidCardNumber = errs.New("card number must have 13 to 16 digits")
	ErrInvalidExpiry     = errs.New("card expiry is invalid")
	ErrCardExpired       = errs.New("card is expired")
	ErrInvalidCVV        = errs.New("cvv must have 3 digits")
)

var (
	cardNumberRegex = regexp.MustCompile(`^\d{13,16}$`)
	cvvRegex        = regexp.MustCompile(`^\d{3}$`)
	twoDigitsRegex  = regexp.MustCompile(`^\d{2}$`)
)

type Card struct {
	holder   string
	lastFour string
	expMonth int
	expYear  int
}

// NewCard validates the raw form values against now's calendar month.
// Spaces and dashes inside the number are ignored.
func NewCard(holder, number, expMonth, expYear, cvv string, now time.Time) (Card, error) {
	holder = strings.TrimSpace(holder)
	number = strings.NewReplacer(" ", "", "-", "").Replace(number)
	expMonth = strings.TrimSpace(expMonth)
	expYear = strings.TrimSpace(expYear)
	cvv = strings.TrimSpace(cvv)

	if holder == "" || number == "" || expMonth == "" || expYear == "" || cvv == "" {
		return Card{}, invalid(ErrMissingCardField)
	}
	if !cardNumberRegex.MatchString(number) {
		return Card{}, invalid(ErrInvalidCardNumber)
	}

	month, err := strconv.Atoi(expMonth)
	if err != nil || month < 1 || month > 12 {
		return Card{}, invalid(ErrInvalidExpiry)
	}
	if !twoDigitsRegex.MatchString(expYear) {
		return Card{}, invalid(ErrInvalidExpiry)
	}
	yy, _ := strconv.Atoi(expYear)
	year := 2000 + yy

	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return Card{}, invalid(ErrCardExpired)
	}

	if !cvvRegex.MatchString(cvv) {
		return Card{}, invalid(ErrInvalidCVV)
	}

	return Card{
		holder:   holder,
		lastFour: number[len(number)-4:],
		expMonth: month,
		expYear:  year,
	}, nil
}

func (c Card) Holder() string   { return c.holder }
func (c Card) LastFour() string { return c.lastFour }
func (c Card) ExpMonth() int    { return c.expMonth }
func (c Card) ExpYear() int     { return c.expYear }

func invalid(err error) error {
	return errs.Mark(err, errs.ErrInvalidInput)
}
