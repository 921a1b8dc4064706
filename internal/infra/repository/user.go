package repository

import (
	"context"
	"time"

	"skipass-api/internal/domain/user"
	"skipass-api/internal/infra"
	"skipass-api/internal/infra/repository/converter"
	sqlc "skipass-api/internal/infra/sqlc/generated"
	"skipass-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) error
	UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) (sqlc.UpdateUserProfileRow, error)
	UpdateUserPassword(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserPasswordParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error {
	err := r.queries.UpdateUserLastLogin(ctx, tx, sqlc.UpdateUserLastLoginParams{
		ID:        userID,
		LastLogin: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, name user.Name, email user.Email, now time.Time) error {
	_, err := r.queries.UpdateUserProfile(ctx, tx, sqlc.UpdateUserProfileParams{
		ID:        userID,
		Name:      name.Value(),
		Email:     email.Value(),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, passwordHash string, now time.Time) error {
	n, err := r.queries.UpdateUserPassword(ctx, tx, sqlc.UpdateUserPasswordParams{
		ID:           userID,
		PasswordHash: passwordHash,
		UpdatedAt:    pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user password", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
