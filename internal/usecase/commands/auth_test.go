//go:build unit

package commands_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"skipass-api/internal/domain/auth"
	"skipass-api/internal/infra"
	queriesmock "skipass-api/internal/mock/queries"
	sharedmock "skipass-api/internal/mock/shared"
	"skipass-api/internal/pkg/clock"
	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/pkg/jwt"
	"skipass-api/internal/pkg/password"
	"skipass-api/internal/testutil/builder"
	"skipass-api/internal/usecase/commands"
	"skipass-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	reads     *sharedmock.MockCommandReads
	users     *sharedmock.MockUserRepository
	readStore *queriesmock.MockUserReadStore
	jwt       *jwt.Service
	cmds      commands.AuthCommands
}

func newAuthFixture(t *testing.T) *authFixture {
	password.Cost = bcrypt.MinCost
	ctrl := gomock.NewController(t)
	f := &authFixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		reads:     sharedmock.NewMockCommandReads(ctrl),
		users:     sharedmock.NewMockUserRepository(ctrl),
		readStore: queriesmock.NewMockUserReadStore(ctrl),
		jwt:       jwt.NewService("test-secret-key-for-jwt-signing-only", 15*time.Minute, 24*time.Hour),
	}
	f.cmds = commands.NewAuthCommands(f.uow, f.readStore, f.jwt, clock.NewMockClock(passNow))

	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	return f
}

func (f *authFixture) runTx() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func TestAuthCommands_Register(t *testing.T) {
	ctx := context.Background()
	valid := commands.RegisterInput{
		Name:            "Ana Pop",
		Email:           "Ana.Pop@Gmail.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}

	t.Run("success: stores a customer with a lower-cased email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.runTx()
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		id, err := f.cmds.Register(ctx, valid)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("error: validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(in *commands.RegisterInput)
		}{
			{name: "unsupported email provider", mutate: func(in *commands.RegisterInput) { in.Email = "ana@example.com" }},
			{name: "short password", mutate: func(in *commands.RegisterInput) { in.Password, in.ConfirmPassword = "short", "short" }},
			{name: "confirmation mismatch", mutate: func(in *commands.RegisterInput) { in.ConfirmPassword = "password124" }},
			{name: "blank name", mutate: func(in *commands.RegisterInput) { in.Name = "   " }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newAuthFixture(t)
				in := valid
				tc.mutate(&in)

				_, err := f.cmds.Register(ctx, in)

				assert.True(t, errs.Is(err, errs.ErrInvalidInput))
			})
		}
	})

	t.Run("error: duplicate email is email taken", func(t *testing.T) {
		f := newAuthFixture(t)
		f.runTx()
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create user", errors.New("23505"), infra.KindDuplicateKey))

		_, err := f.cmds.Register(ctx, valid)

		assert.True(t, errs.Is(err, errs.ErrEmailTaken))
	})
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := func() (string, error) {
		password.Cost = bcrypt.MinCost
		return password.HashPassword("password123")
	}()
	require.NoError(t, err)

	account := func() *shared.UserCredentialsSnapshot {
		u := builder.NewUserBuilder()
		return &shared.UserCredentialsSnapshot{
			ID:           uuid.New(),
			Name:         u.Name,
			Email:        u.Email,
			Role:         u.Role,
			PasswordHash: hash,
			IsActive:     true,
		}
	}

	t.Run("success: returns a token pair", func(t *testing.T) {
		f := newAuthFixture(t)
		acc := account()
		f.reads.EXPECT().UserByEmail(gomock.Any(), acc.Email).Return(acc, nil)
		f.runTx()
		f.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), acc.ID, passNow).Return(nil)

		res, err := f.cmds.Login(ctx, "  ANA.POP@gmail.com ", "password123")

		require.NoError(t, err)
		assert.Equal(t, acc.ID, res.UserID)
		claims, err := f.jwt.ValidateToken(res.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("success: last login failure does not fail the login", func(t *testing.T) {
		f := newAuthFixture(t)
		acc := account()
		f.reads.EXPECT().UserByEmail(gomock.Any(), acc.Email).Return(acc, nil)
		f.runTx()
		f.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), acc.ID, passNow).
			Return(infra.WrapRepoErr("failed to update last login", errors.New("timeout")))

		_, err := f.cmds.Login(ctx, acc.Email, "password123")

		require.NoError(t, err)
	})

	t.Run("error: unknown email and wrong password look the same", func(t *testing.T) {
		f := newAuthFixture(t)
		acc := account()
		f.reads.EXPECT().UserByEmail(gomock.Any(), "nobody@gmail.com").
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))
		f.reads.EXPECT().UserByEmail(gomock.Any(), acc.Email).Return(acc, nil)

		_, unknownErr := f.cmds.Login(ctx, "nobody@gmail.com", "password123")
		_, wrongErr := f.cmds.Login(ctx, acc.Email, "password124")

		assert.True(t, errs.Is(unknownErr, errs.ErrUnauthenticated))
		assert.True(t, errs.Is(wrongErr, errs.ErrUnauthenticated))
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("error: unknown email spends a bcrypt comparison like a wrong password", func(t *testing.T) {
		const runs = 5
		f := newAuthFixture(t)
		acc := account()
		f.reads.EXPECT().UserByEmail(gomock.Any(), "nobody@gmail.com").
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)).Times(runs)
		f.reads.EXPECT().UserByEmail(gomock.Any(), acc.Email).Return(acc, nil).Times(runs)

		fastest := func(email string) time.Duration {
			best := time.Duration(math.MaxInt64)
			for range runs {
				start := time.Now()
				_, err := f.cmds.Login(ctx, email, "password124")
				require.True(t, errs.Is(err, auth.ErrInvalidCredentials))
				best = min(best, time.Since(start))
			}
			return best
		}

		unknown, wrong := fastest("nobody@gmail.com"), fastest(acc.Email)

		assert.Greater(t, unknown*4, wrong, "unknown email took %s, wrong password %s", unknown, wrong)
	})

	t.Run("error: inactive account", func(t *testing.T) {
		f := newAuthFixture(t)
		acc := account()
		acc.IsActive = false
		f.reads.EXPECT().UserByEmail(gomock.Any(), acc.Email).Return(acc, nil)

		_, err := f.cmds.Login(ctx, acc.Email, "password123")

		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})

	t.Run("error: missing credentials", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.cmds.Login(ctx, "", "")

		assert.True(t, errs.Is(err, errs.ErrInvalidInput))
	})
}

func TestAuthCommands_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("success: refresh token issues a new pair", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewUserBuilder().BuildView()
		refresh, err := f.jwt.GenerateRefreshToken(view.ID, "customer")
		require.NoError(t, err)
		f.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		pair, err := f.cmds.RefreshToken(ctx, refresh)

		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("error: access token is not accepted", func(t *testing.T) {
		f := newAuthFixture(t)
		access, err := f.jwt.GenerateAccessToken(uuid.New(), "customer")
		require.NoError(t, err)

		_, err = f.cmds.RefreshToken(ctx, access)

		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})

	t.Run("error: garbage token", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.cmds.RefreshToken(ctx, "not-a-token")

		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})

	t.Run("error: inactive user", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewUserBuilder().AsInactive().BuildView()
		refresh, err := f.jwt.GenerateRefreshToken(view.ID, "customer")
		require.NoError(t, err)
		f.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err = f.cmds.RefreshToken(ctx, refresh)

		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})
}
