//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"skipass-api/internal/domain/pass"
	"skipass-api/internal/infra"
	sqlc "skipass-api/internal/infra/sqlc/generated"
	"skipass-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPurchaseReadQueries struct {
	mock.Mock
}

func (m *MockPurchaseReadQueries) ListPurchasesByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.Purchases, error) {
	args := m.Called(ctx, db, ownerID)
	return args.Get(0).([]sqlc.Purchases), args.Error(1)
}

func (m *MockPurchaseReadQueries) GetPurchaseByIDForOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPurchaseByIDForOwnerParams) (sqlc.Purchases, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Purchases), args.Error(1)
}

func purchaseRow(owner uuid.UUID, amount string, purchasedAt time.Time, activatedAt *time.Time) sqlc.Purchases {
	return sqlc.Purchases{
		ID:          uuid.New(),
		OwnerID:     owner,
		ResortName:  "Poiana Brașov",
		PriceAmount: pgconv.NumericFromDecimal(decimal.RequireFromString(amount)),
		PurchasedAt: pgconv.TimeToPgtype(purchasedAt),
		ActivatedAt: pgconv.TimePtrToPgtype(activatedAt),
	}
}

func TestPurchaseReadStore_ListByOwner(t *testing.T) {
	owner := uuid.New()
	t0 := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	activated := t0.Add(time.Hour)
	rows := []sqlc.Purchases{
		purchaseRow(owner, "170", t0.Add(2*time.Hour), nil),
		purchaseRow(owner, "170.00", t0, &activated),
	}

	mockQueries := new(MockPurchaseReadQueries)
	mockQueries.On("ListPurchasesByOwner", mock.Anything, nil, owner).Return(rows, nil)

	got, err := NewPurchaseReadStore(mockQueries, nil).ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, rows[0].ID, got[0].ID())
	assert.Nil(t, got[0].ActivatedAt())
	assert.Equal(t, "170.00", got[0].Price().String())
	assert.Equal(t, activated, *got[1].ActivatedAt())
	assert.Equal(t, pass.StatusActive, got[1].Status(activated.Add(time.Minute)))
	mockQueries.AssertExpectations(t)
}

func TestPurchaseReadStore_ListByOwner_CorruptAmount(t *testing.T) {
	owner := uuid.New()
	row := purchaseRow(owner, "1", time.Now(), nil)
	row.PriceAmount = pgtype.Numeric{NaN: true, Valid: true}

	mockQueries := new(MockPurchaseReadQueries)
	mockQueries.On("ListPurchasesByOwner", mock.Anything, nil, owner).Return([]sqlc.Purchases{row}, nil)

	_, err := NewPurchaseReadStore(mockQueries, nil).ListByOwner(context.Background(), owner)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestPurchaseReadStore_FindByIDForOwner(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()

	mockQueries := new(MockPurchaseReadQueries)
	mockQueries.On("GetPurchaseByIDForOwner", mock.Anything, nil, sqlc.GetPurchaseByIDForOwnerParams{ID: id, OwnerID: owner}).
		Return(sqlc.Purchases{}, pgx.ErrNoRows)

	p, err := NewPurchaseReadStore(mockQueries, nil).FindByIDForOwner(context.Background(), id, owner)
	assert.Nil(t, p)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	mockQueries.AssertExpectations(t)
}
