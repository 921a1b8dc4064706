package response

import (
	"time"

	"skipass-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PassResponse struct {
	ID                  uuid.UUID  `json:"id"`
	ResortName          string     `json:"resort_name"`
	Price               string     `json:"price"`
	PurchasedAt         time.Time  `json:"purchased_at"`
	ActivatedAt         *time.Time `json:"activated_at"`
	Status              string     `json:"status"`
	ValidUntil          *time.Time `json:"valid_until"`
	PermittedOperations []string   `json:"permitted_operations"`
}

func FromPassView(v *queries.PassView) *PassResponse {
	ops := make([]string, len(v.PermittedOperations))
	for i, op := range v.PermittedOperations {
		ops[i] = string(op)
	}
	return &PassResponse{
		ID:                  v.ID,
		ResortName:          v.ResortName,
		Price:               v.PriceAmount.StringFixed(2),
		PurchasedAt:         v.PurchasedAt,
		ActivatedAt:         v.ActivatedAt,
		Status:              string(v.Status),
		ValidUntil:          v.ValidUntil,
		PermittedOperations: ops,
	}
}

func FromPassViews(views []*queries.PassView) []*PassResponse {
	res := make([]*PassResponse, len(views))
	for i, v := range views {
		res[i] = FromPassView(v)
	}
	return res
}

type EntryProofResponse struct {
	PurchaseID uuid.UUID `json:"purchase_id"`
	Payload    string    `json:"payload"`
	ValidUntil time.Time `json:"valid_until"`
}

func FromEntryProofView(v *queries.EntryProofView) *EntryProofResponse {
	return &EntryProofResponse{
		PurchaseID: v.PurchaseID,
		Payload:    v.Payload,
		ValidUntil: v.ValidUntil,
	}
}
