//go:build unit

package readstore

import (
	"context"
	"errors"
	"testing"

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

type MockResortReadQueries struct {
	mock.Mock
}

func (m *MockResortReadQueries) ListResorts(ctx context.Context, db sqlc.DBTX, search pgtype.Text) ([]sqlc.ListResortsRow, error) {
	args := m.Called(ctx, db, search)
	return args.Get(0).([]sqlc.ListResortsRow), args.Error(1)
}

func (m *MockResortReadQueries) GetResortByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetResortByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetResortByIDRow), args.Error(1)
}

func (m *MockResortReadQueries) ListPriceTiersByResortIDs(ctx context.Context, db sqlc.DBTX, resortIds []uuid.UUID) ([]sqlc.PriceTiers, error) {
	args := m.Called(ctx, db, resortIds)
	return args.Get(0).([]sqlc.PriceTiers), args.Error(1)
}

func (m *MockResortReadQueries) GetPriceTierForResort(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPriceTierForResortParams) (sqlc.GetPriceTierForResortRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.GetPriceTierForResortRow), args.Error(1)
}

type fakeDB struct {
	sqlc.DBTX
	name string
}

type fakeSnapshotter struct {
	db    sqlc.DBTX
	err   error
	calls int
}

func (s *fakeSnapshotter) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	return fn(ctx, s.db)
}

func resortRow(id uuid.UUID, name string) sqlc.GetResortByIDRow {
	return sqlc.GetResortByIDRow{
		ID:            id,
		Slug:          "straja",
		Name:          name,
		SlopeLengthKm: pgconv.NumericFromDecimal(decimal.RequireFromString("4.5")),
	}
}

func tierRow(resortID uuid.UUID, amount string) sqlc.PriceTiers {
	return sqlc.PriceTiers{
		ID:       uuid.New(),
		ResortID: resortID,
		Label:    "Day pass",
		Amount:   pgconv.NumericFromDecimal(decimal.RequireFromString(amount)),
	}
}

func TestResortReadStore_List(t *testing.T) {
	pool := &fakeDB{name: "pool"}
	snapshotDB := &fakeDB{name: "snapshot"}
	id := uuid.New()

	t.Run("success: resorts and tiers are read from one snapshot", func(t *testing.T) {
		q := new(MockResortReadQueries)
		snap := &fakeSnapshotter{db: snapshotDB}
		q.On("ListResorts", mock.Anything, snapshotDB, pgconv.OptionalStringToPgtype("str")).
			Return([]sqlc.ListResortsRow{sqlc.ListResortsRow(resortRow(id, "Straja"))}, nil)
		q.On("ListPriceTiersByResortIDs", mock.Anything, snapshotDB, []uuid.UUID{id}).
			Return([]sqlc.PriceTiers{tierRow(id, "130.00")}, nil)

		got, err := NewResortReadStore(q, pool).WithSnapshots(snap).List(context.Background(), "str")

		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Len(t, got[0].PriceTiers, 1)
		assert.Equal(t, "130.00", got[0].PriceTiers[0].Amount.StringFixed(2))
		assert.Equal(t, 1, snap.calls)
		q.AssertExpectations(t)
	})

	t.Run("error: failing to open the snapshot is a DB failure", func(t *testing.T) {
		q := new(MockResortReadQueries)
		snap := &fakeSnapshotter{err: errors.New("connection refused")}

		_, err := NewResortReadStore(q, pool).WithSnapshots(snap).List(context.Background(), "")

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		q.AssertNotCalled(t, "ListResorts", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestResortReadStore_FindByID(t *testing.T) {
	pool := &fakeDB{name: "pool"}
	snapshotDB := &fakeDB{name: "snapshot"}
	id := uuid.New()

	t.Run("success: without snapshots both statements run on the store db", func(t *testing.T) {
		q := new(MockResortReadQueries)
		q.On("GetResortByID", mock.Anything, pool, id).Return(resortRow(id, "Straja"), nil)
		q.On("ListPriceTiersByResortIDs", mock.Anything, pool, []uuid.UUID{id}).Return([]sqlc.PriceTiers{}, nil)

		got, err := NewResortReadStore(q, pool).FindByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, "Straja", got.Name)
		assert.NotNil(t, got.PriceTiers)
		q.AssertExpectations(t)
	})

	t.Run("error: not found inside the snapshot keeps its kind", func(t *testing.T) {
		q := new(MockResortReadQueries)
		snap := &fakeSnapshotter{db: snapshotDB}
		q.On("GetResortByID", mock.Anything, snapshotDB, id).Return(sqlc.GetResortByIDRow{}, pgx.ErrNoRows)

		_, err := NewResortReadStore(q, pool).WithSnapshots(snap).FindByID(context.Background(), id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		q.AssertNotCalled(t, "ListPriceTiersByResortIDs", mock.Anything, mock.Anything, mock.Anything)
	})
}
