// Package seed loads the resort catalog from YAML into Postgres.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"io"

	"skipass-api/internal/domain/resort"
	"skipass-api/internal/infra"
	sqlc "skipass-api/internal/infra/sqlc/generated"
	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed resorts.yaml
var defaultCatalog []byte

type catalogFile struct {
	Resorts []resortEntry `yaml:"resorts"`
}

type resortEntry struct {
	Slug          string          `yaml:"slug"`
	Name          string          `yaml:"name"`
	Location      string          `yaml:"location"`
	SlopeLengthKm decimal.Decimal `yaml:"slope_length_km"`
	Difficulty    string          `yaml:"difficulty"`
	RouteName     string          `yaml:"route_name"`
	LiftInfo      string          `yaml:"lift_info"`
	RentalInfo    string          `yaml:"rental_info"`
	Description   string          `yaml:"description"`
	PriceTiers    []tierEntry     `yaml:"price_tiers"`
}

type tierEntry struct {
	Label  string          `yaml:"label"`
	Amount decimal.Decimal `yaml:"amount"`
}

// DefaultCatalog returns the catalog shipped with the binary.
func DefaultCatalog() io.Reader {
	return bytes.NewReader(defaultCatalog)
}

// Parse decodes a catalog and validates every entry through the resort domain.
func Parse(r io.Reader) ([]*resort.Resort, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode catalog"), errs.ErrInvalidInput)
	}
	if len(file.Resorts) == 0 {
		return nil, errs.Mark(errs.New("catalog has no resorts"), errs.ErrInvalidInput)
	}

	slugs := make(map[string]struct{}, len(file.Resorts))
	out := make([]*resort.Resort, 0, len(file.Resorts))
	for i, e := range file.Resorts {
		tiers := make([]resort.PriceTier, 0, len(e.PriceTiers))
		for _, t := range e.PriceTiers {
			tier, err := resort.NewPriceTier(t.Label, t.Amount)
			if err != nil {
				return nil, errs.Wrapf(err, "resort %d (%s) tier %q", i, e.Slug, t.Label)
			}
			tiers = append(tiers, tier)
		}

		r, err := resort.NewResort(e.Slug, e.Name, resort.Details{
			Location:      e.Location,
			SlopeLengthKm: e.SlopeLengthKm,
			Difficulty:    e.Difficulty,
			RouteName:     e.RouteName,
			LiftInfo:      e.LiftInfo,
			RentalInfo:    e.RentalInfo,
			Description:   e.Description,
		}, tiers)
		if err != nil {
			return nil, errs.Wrapf(err, "resort %d (%s)", i, e.Slug)
		}
		if _, dup := slugs[r.Slug()]; dup {
			return nil, errs.Mark(errs.Newf("duplicate slug %q", r.Slug()), errs.ErrInvalidInput)
		}
		slugs[r.Slug()] = struct{}{}
		out = append(out, r)
	}
	return out, nil
}

type SeedQueries interface {
	UpsertResort(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertResortParams) (uuid.UUID, error)
	UpsertPriceTier(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPriceTierParams) error
}

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Apply upserts every resort and tier in one transaction and returns the
// stored resort ids. Existing rows keep their ids.
func Apply(ctx context.Context, db TxBeginner, q SeedQueries, resorts []*resort.Resort) ([]uuid.UUID, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("begin seed transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ids := make([]uuid.UUID, 0, len(resorts))
	for _, r := range resorts {
		d := r.Details()
		id, err := q.UpsertResort(ctx, tx, sqlc.UpsertResortParams{
			ID:            r.ID(),
			Slug:          r.Slug(),
			Name:          r.Name(),
			Location:      d.Location,
			SlopeLengthKm: pgconv.NumericFromDecimal(d.SlopeLengthKm),
			Difficulty:    d.Difficulty,
			RouteName:     d.RouteName,
			LiftInfo:      d.LiftInfo,
			RentalInfo:    d.RentalInfo,
			Description:   d.Description,
		})
		if err != nil {
			return nil, infra.WrapRepoErr("upsert resort "+r.Slug(), err)
		}

		for _, t := range r.PriceTiers() {
			err := q.UpsertPriceTier(ctx, tx, sqlc.UpsertPriceTierParams{
				ID:       t.ID(),
				ResortID: id,
				Label:    t.Label(),
				Amount:   pgconv.NumericFromDecimal(t.Amount()),
			})
			if err != nil {
				return nil, infra.WrapRepoErr("upsert price tier "+r.Slug()+"/"+t.Label(), err)
			}
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("commit seed transaction", err)
	}
	return ids, nil
}
