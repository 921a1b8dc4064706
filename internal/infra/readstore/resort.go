package readstore

import (
	"context"

	"skipass-api/internal/infra"
	sqlc "skipass-api/internal/infra/sqlc/generated"
	"skipass-api/internal/pkg/pgconv"
	"skipass-api/internal/usecase/queries"
	"skipass-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ResortReadQueries interface {
	ListResorts(ctx context.Context, db sqlc.DBTX, search pgtype.Text) ([]sqlc.ListResortsRow, error)
	GetResortByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetResortByIDRow, error)
	ListPriceTiersByResortIDs(ctx context.Context, db sqlc.DBTX, resortIds []uuid.UUID) ([]sqlc.PriceTiers, error)
	GetPriceTierForResort(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPriceTierForResortParams) (sqlc.GetPriceTierForResortRow, error)
}

// Snapshotter runs fn inside one read-only snapshot. shared.UnitOfWork satisfies it.
type Snapshotter interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type ResortReadStore struct {
	queries  ResortReadQueries
	db       sqlc.DBTX
	snapshot Snapshotter
}

func NewResortReadStore(queries ResortReadQueries, db sqlc.DBTX) *ResortReadStore {
	return &ResortReadStore{queries: queries, db: db}
}

// WithSnapshots makes List and FindByID read a resort and its tiers from the
// same snapshot. Without it both statements run directly on db, which is
// what the unit of work wants when db is already a transaction.
func (r *ResortReadStore) WithSnapshots(s Snapshotter) *ResortReadStore {
	r.snapshot = s
	return r
}

func (r *ResortReadStore) read(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	if r.snapshot == nil {
		return fn(ctx, r.db)
	}
	return r.snapshot.WithinReadOnly(ctx, fn)
}

func (r *ResortReadStore) List(ctx context.Context, search string) ([]*queries.ResortView, error) {
	var views []*queries.ResortView
	err := r.read(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		views, err = r.list(ctx, db, search)
		return err
	})
	if err != nil {
		return nil, wrapSnapshotErr("failed to list resorts", err)
	}
	return views, nil
}

func (r *ResortReadStore) list(ctx context.Context, db sqlc.DBTX, search string) ([]*queries.ResortView, error) {
	rows, err := r.queries.ListResorts(ctx, db, pgconv.OptionalStringToPgtype(search))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resorts", err)
	}

	views := make([]*queries.ResortView, 0, len(rows))
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		v, err := resortView(sqlc.GetResortByIDRow(row))
		if err != nil {
			return nil, err
		}
		views = append(views, v)
		ids = append(ids, row.ID)
	}

	if err := r.attachTiers(ctx, db, ids, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *ResortReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResortView, error) {
	var view *queries.ResortView
	err := r.read(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		view, err = r.findByID(ctx, db, id)
		return err
	})
	if err != nil {
		return nil, wrapSnapshotErr("failed to find resort", err)
	}
	return view, nil
}

func (r *ResortReadStore) findByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.ResortView, error) {
	row, err := r.queries.GetResortByID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find resort", err)
	}

	v, err := resortView(row)
	if err != nil {
		return nil, err
	}
	if err := r.attachTiers(ctx, db, []uuid.UUID{id}, []*queries.ResortView{v}); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *ResortReadStore) PriceTierForResort(ctx context.Context, resortID, tierID uuid.UUID) (*shared.PriceTierSnapshot, error) {
	row, err := r.queries.GetPriceTierForResort(ctx, r.db, sqlc.GetPriceTierForResortParams{
		ID:       tierID,
		ResortID: resortID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find price tier", err)
	}

	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode price tier amount", err, infra.KindDBFailure)
	}
	return &shared.PriceTierSnapshot{
		ID:         row.ID,
		ResortName: row.ResortName,
		Label:      row.Label,
		Amount:     amount,
	}, nil
}

// One tier query per call regardless of how many resorts are listed.
func (r *ResortReadStore) attachTiers(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID, views []*queries.ResortView) error {
	if len(ids) == 0 {
		return nil
	}

	tiers, err := r.queries.ListPriceTiersByResortIDs(ctx, db, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list price tiers", err)
	}

	byResort := make(map[uuid.UUID][]queries.PriceTierView, len(ids))
	for _, t := range tiers {
		amount, err := pgconv.DecimalFromNumeric(t.Amount)
		if err != nil {
			return infra.WrapRepoErr("failed to decode price tier amount", err, infra.KindDBFailure)
		}
		byResort[t.ResortID] = append(byResort[t.ResortID], queries.PriceTierView{
			ID:     t.ID,
			Label:  t.Label,
			Amount: amount,
		})
	}

	for _, v := range views {
		v.PriceTiers = byResort[v.ID]
		if v.PriceTiers == nil {
			v.PriceTiers = []queries.PriceTierView{}
		}
	}
	return nil
}

// Errors from inside fn are already RepositoryErrors; begin/commit failures are not.
func wrapSnapshotErr(msg string, err error) error {
	if infra.IsRepoErr(err) {
		return err
	}
	return infra.WrapRepoErr(msg, err, infra.KindDBFailure)
}

func resortView(row sqlc.GetResortByIDRow) (*queries.ResortView, error) {
	length, err := pgconv.DecimalFromNumeric(row.SlopeLengthKm)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode slope length", err, infra.KindDBFailure)
	}
	return &queries.ResortView{
		ID:            row.ID,
		Slug:          row.Slug,
		Name:          row.Name,
		Location:      row.Location,
		SlopeLengthKm: length,
		Difficulty:    row.Difficulty,
		RouteName:     row.RouteName,
		LiftInfo:      row.LiftInfo,
		RentalInfo:    row.RentalInfo,
		Description:   row.Description,
	}, nil
}
