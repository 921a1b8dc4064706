package queries

import (
	"context"

	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUserInactive = errs.New("user inactive")

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

// A deleted or deactivated account is treated as no identity at all.
func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}

	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.StoreError(err, errs.ErrUnauthenticated)
	}

	if !user.IsActive {
		return nil, errs.Mark(ErrUserInactive, errs.ErrUnauthenticated)
	}

	return user, nil
}
