package redisstore

import (
	"context"
	"log/slog"

	"skipass-api/internal/infra"
	"skipass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var _ shared.FavoriteStore = (*FavoriteStore)(nil)

// FavoriteStore keeps one redis set of resort ids per user. SADD makes a
// repeated add a no-op.
type FavoriteStore struct {
	cache Client
}

func NewFavoriteStore(cache Client) *FavoriteStore {
	return &FavoriteStore{cache: cache}
}

func favoritesKey(userID uuid.UUID) string {
	return "favorites:" + userID.String()
}

func (s *FavoriteStore) Add(ctx context.Context, userID, resortID uuid.UUID) error {
	if err := s.cache.SAdd(ctx, favoritesKey(userID), resortID.String()); err != nil {
		return infra.WrapRepoErr("failed to add favorite", err, infra.KindCacheFailure)
	}
	return nil
}

func (s *FavoriteStore) Remove(ctx context.Context, userID, resortID uuid.UUID) error {
	if err := s.cache.SRem(ctx, favoritesKey(userID), resortID.String()); err != nil {
		return infra.WrapRepoErr("failed to remove favorite", err, infra.KindCacheFailure)
	}
	return nil
}

func (s *FavoriteStore) Members(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	members, err := s.cache.SMembers(ctx, favoritesKey(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favorites", err, infra.KindCacheFailure)
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			slog.Warn("ignoring malformed favorite member", "user_id", userID, "member", m)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
