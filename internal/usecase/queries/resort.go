package queries

import (
	"context"
	"strings"

	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResortQueries interface {
	List(ctx context.Context, search string) ([]*ResortView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ResortView, error)
}

type ResortReadStore interface {
	// List matches search as a case-insensitive substring of the name; empty matches all.
	List(ctx context.Context, search string) ([]*ResortView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ResortView, error)
}

type resortQueriesImpl struct {
	store ResortReadStore
}

func NewResortQueries(store ResortReadStore) ResortQueries {
	return &resortQueriesImpl{store: store}
}

func (q *resortQueriesImpl) List(ctx context.Context, search string) ([]*ResortView, error) {
	resorts, err := q.store.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, shared.StoreError(err, errs.ErrResortNotFound)
	}
	return resorts, nil
}

func (q *resortQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ResortView, error) {
	r, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, shared.StoreError(err, errs.ErrResortNotFound)
	}
	return r, nil
}
