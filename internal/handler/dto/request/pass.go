package request

import (
	"skipass-api/internal/domain/pass"
	"skipass-api/internal/usecase/commands"

	"github.com/google/uuid"
)

// Card is validated by the checkout domain; binding only checks presence.
type CardRequest struct {
	Holder   string `json:"holder" binding:"required"`
	Number   string `json:"number" binding:"required"`
	ExpMonth string `json:"exp_month" binding:"required"`
	ExpYear  string `json:"exp_year" binding:"required"`
	CVV      string `json:"cvv" binding:"required"`
}

type CheckoutRequest struct {
	ResortID    uuid.UUID   `json:"resort_id" binding:"required"`
	PriceTierID uuid.UUID   `json:"price_tier_id" binding:"required"`
	Card        CardRequest `json:"card"`
}

func (r *CheckoutRequest) ToCommand() commands.CheckoutRequest {
	return commands.CheckoutRequest{
		ResortID:    r.ResortID,
		PriceTierID: r.PriceTierID,
		Card: commands.CardDetails{
			Holder:   r.Card.Holder,
			Number:   r.Card.Number,
			ExpMonth: r.Card.ExpMonth,
			ExpYear:  r.Card.ExpYear,
			CVV:      r.Card.CVV,
		},
	}
}

type ListPassesQuery struct {
	Status string `form:"status"`
}

// Filter returns nil when no status was requested.
func (q *ListPassesQuery) Filter() (*pass.Status, error) {
	if q.Status == "" {
		return nil, nil
	}
	s, err := pass.ParseStatus(q.Status)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

type SearchResortsQuery struct {
	Q string `form:"q" binding:"max=100"`
}
