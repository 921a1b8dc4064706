package readstore

import (
	"context"

	"skipass-api/internal/domain/pass"
	"skipass-api/internal/infra"
	"skipass-api/internal/infra/repository/converter"
	sqlc "skipass-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PurchaseReadQueries interface {
	ListPurchasesByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.Purchases, error)
	GetPurchaseByIDForOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPurchaseByIDForOwnerParams) (sqlc.Purchases, error)
}

// PurchaseReadStore only ever reads rows scoped to one owner.
type PurchaseReadStore struct {
	queries PurchaseReadQueries
	db      sqlc.DBTX
}

func NewPurchaseReadStore(queries PurchaseReadQueries, db sqlc.DBTX) *PurchaseReadStore {
	return &PurchaseReadStore{queries: queries, db: db}
}

func (r *PurchaseReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*pass.Purchase, error) {
	rows, err := r.queries.ListPurchasesByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list purchases", err)
	}

	purchases := make([]*pass.Purchase, 0, len(rows))
	for _, row := range rows {
		p, err := converter.PurchaseFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode purchase", err, infra.KindDBFailure)
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

func (r *PurchaseReadStore) FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*pass.Purchase, error) {
	row, err := r.queries.GetPurchaseByIDForOwner(ctx, r.db, sqlc.GetPurchaseByIDForOwnerParams{
		ID:      id,
		OwnerID: ownerID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find purchase", err)
	}

	p, err := converter.PurchaseFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode purchase", err, infra.KindDBFailure)
	}
	return p, nil
}
