package commands

import (
	"context"

	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type FavoriteCommands interface {
	// Add is idempotent; unknown resorts are rejected.
	Add(ctx context.Context, userID, resortID uuid.UUID) error
	Remove(ctx context.Context, userID, resortID uuid.UUID) error
}

type favoriteCommandsImpl struct {
	favorites shared.FavoriteStore
	resorts   ResortLookup
}

func NewFavoriteCommands(favorites shared.FavoriteStore, resorts ResortLookup) FavoriteCommands {
	return &favoriteCommandsImpl{favorites: favorites, resorts: resorts}
}

func (c *favoriteCommandsImpl) Add(ctx context.Context, userID, resortID uuid.UUID) error {
	if userID == uuid.Nil {
		return errs.ErrUnauthenticated
	}
	if _, err := c.resorts.FindByID(ctx, resortID); err != nil {
		return shared.StoreError(err, errs.ErrResortNotFound)
	}
	return shared.StoreError(c.favorites.Add(ctx, userID, resortID), errs.ErrResortNotFound)
}

func (c *favoriteCommandsImpl) Remove(ctx context.Context, userID, resortID uuid.UUID) error {
	if userID == uuid.Nil {
		return errs.ErrUnauthenticated
	}
	return shared.StoreError(c.favorites.Remove(ctx, userID, resortID), errs.ErrResortNotFound)
}
