package commands

import (
	"context"

	"skipass-api/internal/domain/checkout"
	"skipass-api/internal/domain/pass"
	"skipass-api/internal/infra"
	"skipass-api/internal/pkg/clock"
	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CardDetails struct {
	Holder   string
	Number   string
	ExpMonth string
	ExpYear  string
	CVV      string
}

type CheckoutRequest struct {
	ResortID    uuid.UUID
	PriceTierID uuid.UUID
	Card        CardDetails
}

type PassCommands interface {
	// Buy records a new pending purchase. Payment is assumed already settled.
	Buy(ctx context.Context, ownerID uuid.UUID, resortName, priceAmount string) (*pass.Purchase, error)
	// Checkout validates the card, prices the tier from the catalog and buys.
	Checkout(ctx context.Context, ownerID uuid.UUID, req CheckoutRequest) (*pass.Purchase, error)
	// Activate starts the validity window. Only one call per purchase ever succeeds.
	Activate(ctx context.Context, purchaseID, requesterID uuid.UUID) (*pass.Purchase, error)
}

type passCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics PassMetrics
}

func NewPassCommands(uow shared.UnitOfWork, clk clock.Clock, metrics PassMetrics) PassCommands {
	return &passCommandsImpl{uow: uow, clock: clk, metrics: metrics}
}

func (c *passCommandsImpl) Buy(ctx context.Context, ownerID uuid.UUID, resortName, priceAmount string) (*pass.Purchase, error) {
	p, err := pass.NewPurchase(ownerID, resortName, priceAmount, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Purchases().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		// owner row vanished between token issue and purchase
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, errs.ErrUnauthenticated)
		}
		return nil, shared.StoreError(err, errs.ErrUnauthenticated)
	}

	c.metrics.PassPurchased()
	return p, nil
}

func (c *passCommandsImpl) Checkout(ctx context.Context, ownerID uuid.UUID, req CheckoutRequest) (*pass.Purchase, error) {
	if ownerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}

	card := req.Card
	if _, err := checkout.NewCard(card.Holder, card.Number, card.ExpMonth, card.ExpYear, card.CVV, c.clock.Now()); err != nil {
		return nil, err
	}

	tier, err := c.uow.CommandReads().PriceTierForResort(ctx, req.ResortID, req.PriceTierID)
	if err != nil {
		return nil, shared.StoreError(err, errs.ErrResortNotFound)
	}

	return c.Buy(ctx, ownerID, tier.ResortName, tier.Amount.StringFixed(2))
}

func (c *passCommandsImpl) Activate(ctx context.Context, purchaseID, requesterID uuid.UUID) (*pass.Purchase, error) {
	if requesterID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}

	var activated *pass.Purchase
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().PurchaseForOwner(ctx, purchaseID, requesterID)
		if err != nil {
			return shared.StoreError(err, errs.ErrPassNotFound)
		}

		if err := p.Activate(c.clock.Now()); err != nil {
			return err
		}

		// The read above is not a lock; the conditional update is the real guard.
		ok, err := tx.Purchases().ConditionalActivate(ctx, tx.DB(), p)
		if err != nil {
			return shared.StoreError(err, errs.ErrPassNotFound)
		}
		if !ok {
			return errs.ErrAlreadyActivated
		}

		activated = p
		return nil
	})

	c.metrics.PassActivation(activationResult(err))
	if err != nil {
		return nil, shared.StoreError(err, errs.ErrPassNotFound)
	}
	return activated, nil
}

func activationResult(err error) string {
	switch {
	case err == nil:
		return ActivationResultActivated
	case errs.Is(err, errs.ErrAlreadyActivated):
		return ActivationResultAlreadyActivated
	case errs.Is(err, errs.ErrPassNotFound):
		return ActivationResultNotFound
	default:
		return ActivationResultError
	}
}
