package commands

import (
	"context"

	"skipass-api/internal/domain/user"
	"skipass-api/internal/infra"
	"skipass-api/internal/pkg/clock"
	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/pkg/password"
	"skipass-api/internal/pkg/patch"
	"skipass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrWrongCurrentPassword = errs.New("current password is incorrect")

// Nil fields keep their stored value.
type UpdateProfileInput struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) error
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk}
}

func (c *userCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) error {
	if userID == uuid.Nil {
		return errs.ErrUnauthenticated
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().UserCredentials(ctx, userID)
		if err != nil {
			return shared.StoreError(err, errs.ErrUnauthenticated)
		}
		if patch.Noop(in.Name, current.Name) && patch.Noop(in.Email, current.Email) {
			return nil
		}

		name, err := user.NewName(patch.Coalesce(in.Name, current.Name))
		if err != nil {
			return err
		}
		email, err := user.NewEmail(patch.Coalesce(in.Email, current.Email))
		if err != nil {
			return err
		}

		return tx.Users().UpdateProfile(ctx, tx.DB(), userID, name, email, c.clock.Now())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(err, errs.ErrEmailTaken)
		}
		return shared.StoreError(err, errs.ErrUnauthenticated)
	}
	return nil
}

func (c *userCommandsImpl) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if userID == uuid.Nil {
		return errs.ErrUnauthenticated
	}

	next, err := user.NewPassword(newPassword)
	if err != nil {
		return err
	}

	account, err := c.uow.CommandReads().UserCredentials(ctx, userID)
	if err != nil {
		return shared.StoreError(err, errs.ErrUnauthenticated)
	}
	if err := password.ComparePassword(account.PasswordHash, currentPassword); err != nil {
		return errs.Mark(ErrWrongCurrentPassword, errs.ErrInvalidInput)
	}

	hash, err := password.HashPassword(next.Value())
	if err != nil {
		if errs.Is(err, password.ErrPasswordTooLong) {
			return errs.Mark(err, errs.ErrInvalidInput)
		}
		return err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdatePassword(ctx, tx.DB(), userID, hash, c.clock.Now())
	})
	return shared.StoreError(err, errs.ErrUnauthenticated)
}
