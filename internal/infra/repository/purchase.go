package repository

import (
	"context"

	"skipass-api/internal/domain/pass"
	"skipass-api/internal/infra"
	"skipass-api/internal/infra/repository/converter"
	sqlc "skipass-api/internal/infra/sqlc/generated"
)

type PurchaseWriteQueries interface {
	CreatePurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePurchaseParams) (sqlc.Purchases, error)
	ActivatePurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.ActivatePurchaseParams) (int64, error)
}

type PurchaseRepository struct {
	queries PurchaseWriteQueries
}

func NewPurchaseRepository(queries PurchaseWriteQueries) *PurchaseRepository {
	return &PurchaseRepository{queries: queries}
}

func (r *PurchaseRepository) Create(ctx context.Context, tx sqlc.DBTX, p *pass.Purchase) error {
	if _, err := r.queries.CreatePurchase(ctx, tx, converter.PurchaseToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create purchase", err)
	}
	return nil
}

func (r *PurchaseRepository) ConditionalActivate(ctx context.Context, tx sqlc.DBTX, p *pass.Purchase) (bool, error) {
	if p.ActivatedAt() == nil {
		return false, infra.WrapRepoErr("purchase has no activation time", nil, infra.KindDBFailure)
	}

	n, err := r.queries.ActivatePurchase(ctx, tx, converter.PurchaseToActivateParams(p))
	if err != nil {
		return false, infra.WrapRepoErr("failed to activate purchase", err)
	}
	return n == 1, nil
}
