//go:build unit

package seed_test

import (
	"strings"
	"testing"

	"skipass-api/internal/infra/seed"
	"skipass-api/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DefaultCatalog(t *testing.T) {
	resorts, err := seed.Parse(seed.DefaultCatalog())
	require.NoError(t, err)
	require.Len(t, resorts, 5)

	want := map[string]string{
		"rarau":         "120",
		"borsa":         "130",
		"straja":        "130",
		"poiana-brasov": "170",
		"arena-platos":  "90",
	}
	for _, r := range resorts {
		price, ok := want[r.Slug()]
		require.True(t, ok, "unexpected slug %s", r.Slug())
		require.Len(t, r.PriceTiers(), 1)
		assert.True(t, r.PriceTiers()[0].Amount().Equal(decimal.RequireFromString(price)), r.Slug())
		assert.NotEmpty(t, r.Details().Description)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "error: empty catalog",
			doc:  "resorts: []",
		},
		{
			name: "error: unknown field",
			doc: `resorts:
  - slug: a
    name: A
    elevation: 1800`,
		},
		{
			name: "error: non positive amount",
			doc: `resorts:
  - slug: a
    name: A
    price_tiers:
      - label: Day pass
        amount: "0"`,
		},
		{
			name: "error: three decimals",
			doc: `resorts:
  - slug: a
    name: A
    price_tiers:
      - label: Day pass
        amount: "10.005"`,
		},
		{
			name: "error: duplicate slug",
			doc: `resorts:
  - slug: a
    name: A
  - slug: a
    name: B`,
		},
		{
			name: "error: missing name",
			doc: `resorts:
  - slug: a`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrInvalidInput), "got %v", err)
		})
	}
}
