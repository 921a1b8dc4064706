//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"skipass-api/internal/domain/pass"
	"skipass-api/internal/infra"
	commandsmock "skipass-api/internal/mock/commands"
	sharedmock "skipass-api/internal/mock/shared"
	"skipass-api/internal/pkg/clock"
	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/testutil/builder"
	"skipass-api/internal/usecase/commands"
	"skipass-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type passFixture struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	reads     *sharedmock.MockCommandReads
	purchases *sharedmock.MockPurchaseRepository
	metrics   *commandsmock.MockPassMetrics
	clock     *clock.MockClock
	cmds      commands.PassCommands
}

var passNow = time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)

func newPassFixture(t *testing.T) *passFixture {
	ctrl := gomock.NewController(t)
	f := &passFixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		reads:     sharedmock.NewMockCommandReads(ctrl),
		purchases: sharedmock.NewMockPurchaseRepository(ctrl),
		metrics:   commandsmock.NewMockPassMetrics(ctrl),
		clock:     clock.NewMockClock(passNow),
	}
	f.cmds = commands.NewPassCommands(f.uow, f.clock, f.metrics)

	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Purchases().Return(f.purchases).AnyTimes()
	return f
}

// runTx makes Within invoke its callback against the mocked Tx.
func (f *passFixture) runTx() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func TestPassCommands_Buy(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("success: creates a pending purchase", func(t *testing.T) {
		f := newPassFixture(t)
		f.runTx()
		f.purchases.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.metrics.EXPECT().PassPurchased()

		p, err := f.cmds.Buy(ctx, owner, "Poiana Brașov", "170")

		require.NoError(t, err)
		assert.Equal(t, owner, p.OwnerID())
		assert.Equal(t, pass.StatusPending, p.Status(passNow))
		assert.Nil(t, p.ActivatedAt())
		assert.True(t, p.PurchasedAt().Equal(passNow))
		assert.True(t, p.Price().Amount().Equal(decimal.NewFromInt(170)))
	})

	t.Run("error: invalid input never reaches the store", func(t *testing.T) {
		cases := []struct {
			name       string
			resortName string
			price      string
		}{
			{name: "empty resort name", resortName: "  ", price: "120"},
			{name: "zero price", resortName: "Rarău", price: "0"},
			{name: "negative price", resortName: "Rarău", price: "-5"},
			{name: "non-numeric price", resortName: "Rarău", price: "abc"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newPassFixture(t)

				_, err := f.cmds.Buy(ctx, owner, tc.resortName, tc.price)

				assert.True(t, errs.Is(err, errs.ErrInvalidInput))
			})
		}
	})

	t.Run("error: no identity is unauthenticated", func(t *testing.T) {
		f := newPassFixture(t)

		_, err := f.cmds.Buy(ctx, uuid.Nil, "Rarău", "120")

		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})

	t.Run("error: unknown owner row is unauthenticated", func(t *testing.T) {
		f := newPassFixture(t)
		f.runTx()
		f.purchases.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create purchase", errors.New("fk"), infra.KindForeignKeyViolated))

		_, err := f.cmds.Buy(ctx, owner, "Rarău", "120")

		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})

	t.Run("error: store failure is collaborator unavailable", func(t *testing.T) {
		f := newPassFixture(t)
		f.runTx()
		f.purchases.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create purchase", errors.New("conn reset")))

		_, err := f.cmds.Buy(ctx, owner, "Rarău", "120")

		assert.True(t, errs.Is(err, errs.ErrCollaboratorUnavailable))
	})
}

func TestPassCommands_Checkout(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	validCard := commands.CardDetails{
		Holder:   "Ana Pop",
		Number:   "4111 1111 1111 1111",
		ExpMonth: "12",
		ExpYear:  "29",
		CVV:      "123",
	}
	req := commands.CheckoutRequest{ResortID: uuid.New(), PriceTierID: uuid.New(), Card: validCard}

	t.Run("success: price comes from the catalog tier", func(t *testing.T) {
		f := newPassFixture(t)
		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().PriceTierForResort(gomock.Any(), req.ResortID, req.PriceTierID).
			Return(&shared.PriceTierSnapshot{ID: req.PriceTierID, ResortName: "Arena Platoș", Label: "Day pass", Amount: decimal.NewFromInt(90)}, nil)
		f.runTx()
		f.purchases.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.metrics.EXPECT().PassPurchased()

		p, err := f.cmds.Checkout(ctx, owner, req)

		require.NoError(t, err)
		assert.Equal(t, "Arena Platoș", p.ResortName().String())
		assert.Equal(t, "90.00", p.Price().String())
	})

	t.Run("error: invalid card is rejected before the catalog lookup", func(t *testing.T) {
		bad := req
		bad.Card.CVV = "12"
		f := newPassFixture(t)

		_, err := f.cmds.Checkout(ctx, owner, bad)

		assert.True(t, errs.Is(err, errs.ErrInvalidInput))
	})

	t.Run("error: expired card", func(t *testing.T) {
		bad := req
		bad.Card.ExpMonth = "01"
		bad.Card.ExpYear = "26"
		f := newPassFixture(t)

		_, err := f.cmds.Checkout(ctx, owner, bad)

		assert.True(t, errs.Is(err, errs.ErrInvalidInput))
	})

	t.Run("error: unknown tier is resort not found", func(t *testing.T) {
		f := newPassFixture(t)
		f.uow.EXPECT().CommandReads().Return(f.reads)
		f.reads.EXPECT().PriceTierForResort(gomock.Any(), req.ResortID, req.PriceTierID).
			Return(nil, infra.WrapRepoErr("price tier not found", nil, infra.KindNotFound))

		_, err := f.cmds.Checkout(ctx, owner, req)

		assert.True(t, errs.Is(err, errs.ErrResortNotFound))
	})
}

func TestPassCommands_Activate(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("success: pending pass becomes active at now", func(t *testing.T) {
		f := newPassFixture(t)
		p := builder.NewPurchaseBuilder().WithOwner(owner).Build()
		f.runTx()
		f.reads.EXPECT().PurchaseForOwner(gomock.Any(), p.ID(), owner).Return(p, nil)
		f.purchases.EXPECT().ConditionalActivate(gomock.Any(), gomock.Any(), p).Return(true, nil)
		f.metrics.EXPECT().PassActivation(commands.ActivationResultActivated)

		got, err := f.cmds.Activate(ctx, p.ID(), owner)

		require.NoError(t, err)
		require.NotNil(t, got.ActivatedAt())
		assert.True(t, got.ActivatedAt().Equal(passNow))
		assert.Equal(t, pass.StatusActive, got.Status(passNow))
		assert.True(t, got.ValidUntil().Equal(passNow.Add(pass.ValidityWindow)))
	})

	t.Run("error: already activated pass", func(t *testing.T) {
		f := newPassFixture(t)
		p := builder.NewPurchaseBuilder().WithOwner(owner).WithActivatedAt(passNow.Add(-time.Hour)).Build()
		f.runTx()
		f.reads.EXPECT().PurchaseForOwner(gomock.Any(), p.ID(), owner).Return(p, nil)
		f.metrics.EXPECT().PassActivation(commands.ActivationResultAlreadyActivated)

		_, err := f.cmds.Activate(ctx, p.ID(), owner)

		assert.True(t, errs.Is(err, errs.ErrAlreadyActivated))
		require.NotNil(t, p.ActivatedAt())
		assert.True(t, p.ActivatedAt().Equal(passNow.Add(-time.Hour)))
	})

	t.Run("error: second activation keeps the first activated_at", func(t *testing.T) {
		f := newPassFixture(t)
		p := builder.NewPurchaseBuilder().WithOwner(owner).Build()
		f.runTx()
		f.runTx()
		f.reads.EXPECT().PurchaseForOwner(gomock.Any(), p.ID(), owner).Return(p, nil).Times(2)
		f.purchases.EXPECT().ConditionalActivate(gomock.Any(), gomock.Any(), p).Return(true, nil)
		gomock.InOrder(
			f.metrics.EXPECT().PassActivation(commands.ActivationResultActivated),
			f.metrics.EXPECT().PassActivation(commands.ActivationResultAlreadyActivated),
		)

		first, err := f.cmds.Activate(ctx, p.ID(), owner)
		require.NoError(t, err)
		activatedAt := *first.ActivatedAt()

		_, err = f.cmds.Activate(ctx, p.ID(), owner)

		assert.True(t, errs.Is(err, errs.ErrAlreadyActivated))
		require.NotNil(t, p.ActivatedAt())
		assert.True(t, p.ActivatedAt().Equal(activatedAt))
	})

	t.Run("error: losing a concurrent race is already activated", func(t *testing.T) {
		f := newPassFixture(t)
		p := builder.NewPurchaseBuilder().WithOwner(owner).Build()
		f.runTx()
		f.reads.EXPECT().PurchaseForOwner(gomock.Any(), p.ID(), owner).Return(p, nil)
		f.purchases.EXPECT().ConditionalActivate(gomock.Any(), gomock.Any(), p).Return(false, nil)
		f.metrics.EXPECT().PassActivation(commands.ActivationResultAlreadyActivated)

		_, err := f.cmds.Activate(ctx, p.ID(), owner)

		assert.True(t, errs.Is(err, errs.ErrAlreadyActivated))
	})

	t.Run("error: another owner's pass is not found", func(t *testing.T) {
		f := newPassFixture(t)
		id := uuid.New()
		f.runTx()
		f.reads.EXPECT().PurchaseForOwner(gomock.Any(), id, owner).
			Return(nil, infra.WrapRepoErr("purchase not found", nil, infra.KindNotFound))
		f.metrics.EXPECT().PassActivation(commands.ActivationResultNotFound)

		_, err := f.cmds.Activate(ctx, id, owner)

		assert.True(t, errs.Is(err, errs.ErrPassNotFound))
	})

	t.Run("error: store failure is collaborator unavailable", func(t *testing.T) {
		f := newPassFixture(t)
		id := uuid.New()
		f.runTx()
		f.reads.EXPECT().PurchaseForOwner(gomock.Any(), id, owner).
			Return(nil, infra.WrapRepoErr("failed to get purchase", errors.New("timeout")))
		f.metrics.EXPECT().PassActivation(commands.ActivationResultError)

		_, err := f.cmds.Activate(ctx, id, owner)

		assert.True(t, errs.Is(err, errs.ErrCollaboratorUnavailable))
	})

	t.Run("error: no identity is unauthenticated", func(t *testing.T) {
		f := newPassFixture(t)

		_, err := f.cmds.Activate(ctx, uuid.New(), uuid.Nil)

		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})
}
