//go:build unit

package checkout_test

import (
	"testing"
	"time"

	"skipass-api/internal/domain/checkout"
	"skipass-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type cardInput struct {
	holder, number, month, year, cvv string
}

func validInput() cardInput {
	return cardInput{holder: "Ana Pop", number: "4111 1111 1111 1111", month: "12", year: "27", cvv: "123"}
}

func TestNewCard(t *testing.T) {
	t.Run("success: valid card keeps only the last four digits", func(t *testing.T) {
		in := validInput()
		card, err := checkout.NewCard(in.holder, in.number, in.month, in.year, in.cvv, now)
		require.NoError(t, err)

		assert.Equal(t, "Ana Pop", card.Holder())
		assert.Equal(t, "1111", card.LastFour())
		assert.Equal(t, 12, card.ExpMonth())
		assert.Equal(t, 2027, card.ExpYear())
	})

	t.Run("success: card expiring this month is accepted", func(t *testing.T) {
		in := validInput()
		in.month, in.year = "03", "26"
		_, err := checkout.NewCard(in.holder, in.number, in.month, in.year, in.cvv, now)
		assert.NoError(t, err)
	})

	cases := []struct {
		name   string
		mutate func(*cardInput)
		errIs  error
	}{
		{name: "missing holder", mutate: func(c *cardInput) { c.holder = " " }, errIs: checkout.ErrMissingCardField},
		{name: "missing cvv", mutate: func(c *cardInput) { c.cvv = "" }, errIs: checkout.ErrMissingCardField},
		{name: "number too short", mutate: func(c *cardInput) { c.number = "411111111111" }, errIs: checkout.ErrInvalidCardNumber},
		{name: "number too long", mutate: func(c *cardInput) { c.number = "41111111111111111" }, errIs: checkout.ErrInvalidCardNumber},
		{name: "number with letters", mutate: func(c *cardInput) { c.number = "4111abcd11111111" }, errIs: checkout.ErrInvalidCardNumber},
		{name: "month zero", mutate: func(c *cardInput) { c.month = "0" }, errIs: checkout.ErrInvalidExpiry},
		{name: "month thirteen", mutate: func(c *cardInput) { c.month = "13" }, errIs: checkout.ErrInvalidExpiry},
		{name: "four digit year", mutate: func(c *cardInput) { c.year = "2027" }, errIs: checkout.ErrInvalidExpiry},
		{name: "last month", mutate: func(c *cardInput) { c.month, c.year = "02", "26" }, errIs: checkout.ErrCardExpired},
		{name: "last year", mutate: func(c *cardInput) { c.year = "25" }, errIs: checkout.ErrCardExpired},
		{name: "cvv too long", mutate: func(c *cardInput) { c.cvv = "1234" }, errIs: checkout.ErrInvalidCVV},
	}
	for _, c := range cases {
		t.Run("error: "+c.name, func(t *testing.T) {
			in := validInput()
			c.mutate(&in)

			_, err := checkout.NewCard(in.holder, in.number, in.month, in.year, in.cvv, now)
			require.Error(t, err)
			assert.ErrorIs(t, err, c.errIs)
			assert.True(t, errs.Is(err, errs.ErrInvalidInput))
		})
	}
}
