package queries

import (
	"context"

	"skipass-api/internal/domain/pass"
	"skipass-api/internal/pkg/clock"
	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type PassQueries interface {
	// ListVisible returns every purchase of owner, newest first, each tagged
	// with its derived status. Expired passes stay in the list. A non-nil
	// filter narrows the result after derivation.
	ListVisible(ctx context.Context, ownerID uuid.UUID, filter *pass.Status) ([]*PassView, error)
	GetByID(ctx context.Context, ownerID, purchaseID uuid.UUID) (*PassView, error)
	EntryProof(ctx context.Context, ownerID, purchaseID uuid.UUID) (*EntryProofView, error)
}

type PassReadStore interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*pass.Purchase, error)
	FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*pass.Purchase, error)
}

type passQueriesImpl struct {
	store PassReadStore
	clock clock.Clock
}

func NewPassQueries(store PassReadStore, clk clock.Clock) PassQueries {
	return &passQueriesImpl{store: store, clock: clk}
}

func (q *passQueriesImpl) ListVisible(ctx context.Context, ownerID uuid.UUID, filter *pass.Status) ([]*PassView, error) {
	if ownerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}

	purchases, err := q.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, shared.StoreError(err, errs.ErrPassNotFound)
	}

	// one instant for the whole list so every row agrees
	now := q.clock.Now()
	views := make([]*PassView, 0, len(purchases))
	for _, p := range purchases {
		v := NewPassView(p, now)
		if filter != nil && v.Status != *filter {
			continue
		}
		views = append(views, v)
	}
	return views, nil
}

func (q *passQueriesImpl) GetByID(ctx context.Context, ownerID, purchaseID uuid.UUID) (*PassView, error) {
	p, err := q.find(ctx, ownerID, purchaseID)
	if err != nil {
		return nil, err
	}
	return NewPassView(p, q.clock.Now()), nil
}

func (q *passQueriesImpl) EntryProof(ctx context.Context, ownerID, purchaseID uuid.UUID) (*EntryProofView, error) {
	p, err := q.find(ctx, ownerID, purchaseID)
	if err != nil {
		return nil, err
	}

	proof, err := p.EntryProof(q.clock.Now())
	if err != nil {
		return nil, err
	}
	return &EntryProofView{
		PurchaseID: proof.PurchaseID(),
		Payload:    proof.Payload(),
		ValidUntil: proof.ValidUntil(),
	}, nil
}

func (q *passQueriesImpl) find(ctx context.Context, ownerID, purchaseID uuid.UUID) (*pass.Purchase, error) {
	if ownerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	p, err := q.store.FindByIDForOwner(ctx, purchaseID, ownerID)
	if err != nil {
		return nil, shared.StoreError(err, errs.ErrPassNotFound)
	}
	return p, nil
}
