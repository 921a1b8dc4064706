//go:build unit || e2e

package builder

import (
	"skipass-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ResortBuilder struct {
	view queries.ResortView
}

func NewResortBuilder() *ResortBuilder {
	return &ResortBuilder{view: queries.ResortView{
		ID:            uuid.New(),
		Slug:          "straja",
		Name:          "Straja",
		Location:      "Lupeni, Hunedoara",
		SlopeLengthKm: decimal.RequireFromString("4.5"),
		Difficulty:    "intermediate",
		PriceTiers: []queries.PriceTierView{
			{ID: uuid.New(), Label: "Day pass", Amount: decimal.NewFromInt(130)},
		},
	}}
}

func (b *ResortBuilder) WithName(slug, name string) *ResortBuilder {
	b.view.Slug = slug
	b.view.Name = name
	return b
}

func (b *ResortBuilder) WithTier(label, amount string) *ResortBuilder {
	b.view.PriceTiers = append(b.view.PriceTiers, queries.PriceTierView{
		ID:     uuid.New(),
		Label:  label,
		Amount: decimal.RequireFromString(amount),
	})
	return b
}

func (b *ResortBuilder) BuildView() *queries.ResortView {
	v := b.view
	v.PriceTiers = append([]queries.PriceTierView(nil), b.view.PriceTiers...)
	return &v
}
