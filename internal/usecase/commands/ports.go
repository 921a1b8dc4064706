package commands

import (
	"context"

	"skipass-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// Activation outcomes reported to PassMetrics.
const (
	ActivationResultActivated        = "activated"
	ActivationResultAlreadyActivated = "already_activated"
	ActivationResultNotFound         = "not_found"
	ActivationResultError            = "error"
)

type PassMetrics interface {
	PassPurchased()
	PassActivation(result string)
}

// ResortLookup is the slice of the catalog the write side needs.
type ResortLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.ResortView, error)
}
