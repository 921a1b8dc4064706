package response

import (
	"skipass-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PriceTierResponse struct {
	ID     uuid.UUID `json:"id"`
	Label  string    `json:"label"`
	Amount string    `json:"amount"`
}

type ResortResponse struct {
	ID            uuid.UUID           `json:"id"`
	Slug          string              `json:"slug"`
	Name          string              `json:"name"`
	Location      string              `json:"location"`
	SlopeLengthKm string              `json:"slope_length_km"`
	Difficulty    string              `json:"difficulty"`
	RouteName     string              `json:"route_name"`
	LiftInfo      string              `json:"lift_info"`
	RentalInfo    string              `json:"rental_info"`
	Description   string              `json:"description"`
	PriceTiers    []PriceTierResponse `json:"price_tiers"`
}

func FromResortView(v *queries.ResortView) *ResortResponse {
	tiers := make([]PriceTierResponse, len(v.PriceTiers))
	for i, t := range v.PriceTiers {
		tiers[i] = PriceTierResponse{ID: t.ID, Label: t.Label, Amount: t.Amount.StringFixed(2)}
	}
	return &ResortResponse{
		ID:            v.ID,
		Slug:          v.Slug,
		Name:          v.Name,
		Location:      v.Location,
		SlopeLengthKm: v.SlopeLengthKm.String(),
		Difficulty:    v.Difficulty,
		RouteName:     v.RouteName,
		LiftInfo:      v.LiftInfo,
		RentalInfo:    v.RentalInfo,
		Description:   v.Description,
		PriceTiers:    tiers,
	}
}

func FromResortViews(views []*queries.ResortView) []*ResortResponse {
	res := make([]*ResortResponse, len(views))
	for i, v := range views {
		res[i] = FromResortView(v)
	}
	return res
}
