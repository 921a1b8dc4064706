package queries

import (
	"context"
	"log/slog"
	"sort"

	"skipass-api/internal/infra"
	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type FavoriteQueries interface {
	List(ctx context.Context, userID uuid.UUID) ([]*ResortView, error)
}

type favoriteQueriesImpl struct {
	favorites shared.FavoriteStore
	resorts   ResortReadStore
}

func NewFavoriteQueries(favorites shared.FavoriteStore, resorts ResortReadStore) FavoriteQueries {
	return &favoriteQueriesImpl{favorites: favorites, resorts: resorts}
}

// List resolves favorite ids through the catalog. Ids whose resort no longer
// exists are skipped rather than failing the whole list.
func (q *favoriteQueriesImpl) List(ctx context.Context, userID uuid.UUID) ([]*ResortView, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}

	ids, err := q.favorites.Members(ctx, userID)
	if err != nil {
		return nil, shared.StoreError(err, errs.ErrResortNotFound)
	}

	views := make([]*ResortView, 0, len(ids))
	for _, id := range ids {
		r, err := q.resorts.FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				slog.Debug("skipping stale favorite", "user_id", userID, "resort_id", id)
				continue
			}
			return nil, shared.StoreError(err, errs.ErrResortNotFound)
		}
		views = append(views, r)
	}

	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views, nil
}
