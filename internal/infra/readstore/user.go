package readstore

import (
	"context"

	"skipass-api/internal/infra"
	sqlc "skipass-api/internal/infra/sqlc/generated"
	"skipass-api/internal/pkg/pgconv"
	"skipass-api/internal/usecase/queries"
	"skipass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	FindUserCredentialsByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserCredentialsByIDRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.AuthorizedUserView{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Role:      row.Role,
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

// FindByEmail returns inactive users as well; the caller decides what inactive means.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*shared.UserCredentialsSnapshot, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return &shared.UserCredentialsSnapshot{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		Role:         row.Role,
		PasswordHash: row.PasswordHash,
		IsActive:     row.IsActive,
	}, nil
}

func (r *UserReadStore) CredentialsByID(ctx context.Context, id uuid.UUID) (*shared.UserCredentialsSnapshot, error) {
	view, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cred, err := r.queries.FindUserCredentialsByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load user credentials", err)
	}

	return &shared.UserCredentialsSnapshot{
		ID:           view.ID,
		Name:         view.Name,
		Email:        view.Email,
		Role:         view.Role,
		PasswordHash: cred.PasswordHash,
		IsActive:     view.IsActive,
	}, nil
}
