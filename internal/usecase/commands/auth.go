package commands

import (
	"context"
	"log/slog"

	"skipass-api/internal/domain/auth"
	"skipass-api/internal/domain/user"
	"skipass-api/internal/infra"
	"skipass-api/internal/pkg/clock"
	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/pkg/jwt"
	"skipass-api/internal/pkg/password"
	"skipass-api/internal/usecase/queries"
	"skipass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserInactive    = errs.New("user inactive")
	ErrTokenGeneration = errs.New("token generation failed")
	ErrTokenValidation = errs.New("token validation failed")
)

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (uuid.UUID, error)
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	name, err := user.NewName(in.Name)
	if err != nil {
		return uuid.Nil, err
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return uuid.Nil, err
	}
	pw, err := user.NewConfirmedPassword(in.Password, in.ConfirmPassword)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		if errs.Is(err, password.ErrPasswordTooLong) {
			return uuid.Nil, errs.Mark(err, errs.ErrInvalidInput)
		}
		return uuid.Nil, err
	}

	u := user.NewUser(name, email, hash, user.RoleCustomer, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, errs.ErrEmailTaken)
		}
		return uuid.Nil, shared.StoreError(err, errs.ErrUnauthenticated)
	}

	return u.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, rawPassword)
	if err != nil {
		return nil, err
	}

	account, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnauthenticated)
	}

	tokenPair, err := a.issueTokens(account.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), account.ID, a.clock.Now())
	})
	if err != nil {
		// Login already succeeded; last_login is informational.
		slog.Warn("failed to update last login", "user_id", account.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    account.ID,
		TokenPair: tokenPair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(errs.Mark(err, ErrTokenValidation), errs.ErrUnauthenticated)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, errs.Mark(ErrTokenValidation, errs.ErrUnauthenticated)
	}

	// Validate user still exists and is active
	account, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, shared.StoreError(err, errs.ErrUnauthenticated)
	}
	if !account.IsActive {
		return nil, errs.Mark(ErrUserInactive, errs.ErrUnauthenticated)
	}

	// role comes from the store so a changed role takes effect on refresh
	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnauthenticated)
	}

	return a.issueTokens(account.ID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Unknown email and wrong password return the same error after the same bcrypt work.
func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*shared.UserCredentialsSnapshot, error) {
	account, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			_ = password.CompareDummy(credentials.Password())
			return nil, errs.Mark(auth.ErrInvalidCredentials, errs.ErrUnauthenticated)
		}
		return nil, shared.StoreError(err, errs.ErrUnauthenticated)
	}

	if err := password.ComparePassword(account.PasswordHash, credentials.Password()); err != nil {
		return nil, errs.Mark(auth.ErrInvalidCredentials, errs.ErrUnauthenticated)
	}

	if !account.IsActive {
		return nil, errs.Mark(ErrUserInactive, errs.ErrUnauthenticated)
	}

	return account, nil
}
