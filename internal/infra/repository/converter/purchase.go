package converter

import (
	"skipass-api/internal/domain/pass"
	sqlc "skipass-api/internal/infra/sqlc/generated"
	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/pkg/pgconv"
)

func PurchaseToCreateParams(p *pass.Purchase) sqlc.CreatePurchaseParams {
	return sqlc.CreatePurchaseParams{
		ID:          p.ID(),
		OwnerID:     p.OwnerID(),
		ResortName:  p.ResortName().String(),
		PriceAmount: pgconv.NumericFromDecimal(p.Price().Amount()),
		PurchasedAt: pgconv.TimeToPgtype(p.PurchasedAt()),
	}
}

func PurchaseToActivateParams(p *pass.Purchase) sqlc.ActivatePurchaseParams {
	return sqlc.ActivatePurchaseParams{
		ActivatedAt: pgconv.TimePtrToPgtype(p.ActivatedAt()),
		ID:          p.ID(),
		OwnerID:     p.OwnerID(),
	}
}

// PurchaseFromRow trusts the table constraints and skips domain validation
// apart from decoding the stored amount.
func PurchaseFromRow(row sqlc.Purchases) (*pass.Purchase, error) {
	amount, err := pgconv.DecimalFromNumeric(row.PriceAmount)
	if err != nil {
		return nil, errs.Wrap(err, "decode price_amount")
	}
	price, err := pass.NewPrice(amount)
	if err != nil {
		return nil, errs.Wrap(err, "decode price_amount")
	}
	name, err := pass.NewResortName(row.ResortName)
	if err != nil {
		return nil, errs.Wrap(err, "decode resort_name")
	}

	return pass.Reconstruct(
		row.ID,
		row.OwnerID,
		name,
		price,
		pgconv.TimeFromPgtype(row.PurchasedAt),
		pgconv.TimePtrFromPgtype(row.ActivatedAt),
	), nil
}
