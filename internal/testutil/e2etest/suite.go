//go:build e2e

package e2etest

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"skipass-api/cmd/bootstrap"
	"skipass-api/cmd/bootstrap/components"
	"skipass-api/internal/handler/dto/request"
	"skipass-api/internal/handler/dto/response"
	"skipass-api/internal/pkg/config"
	"skipass-api/internal/testutil/dbtest"
	"skipass-api/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

const DefaultPassword = "password123"

// SharedSuite runs the fully wired application against real postgres and
// redis containers. Each suite gets its own database and redis index.
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	DB      *pgxpool.Pool
	Config  config.Config
	Resorts map[string]uuid.UUID
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pool, dbCfg := dbtest.NewDatabase(t)
	redisCfg := dbtest.NewRedis(t)
	s.DB = pool
	s.Resorts = dbtest.SeedCatalog(t, pool)

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Redis = redisCfg

	router, app := buildApp(t, pool, cfg)
	s.Router = router
	s.Config = cfg

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
}

func (s *SharedSuite) SetupSubTest() {
	dbtest.ResetUsers(s.T(), s.DB)
}

func buildApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) (*gin.Engine, *fx.App) {
	t.Helper()
	var router *gin.Engine

	app := fx.New(
		fx.Provide(func() config.Config { return cfg }),
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.RedisModule,
		bootstrap.JWTModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")
	require.NotNil(t, router, "router was not populated")

	return router, app
}

// RegisterAndLogin creates an account and returns its access token.
func (s *SharedSuite) RegisterAndLogin(name, email string) string {
	t := s.T()

	reg := request.RegisterRequest{
		Name:            name,
		Email:           email,
		Password:        DefaultPassword,
		ConfirmPassword: DefaultPassword,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register", reg, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	login := request.LoginRequest{Email: email, Password: DefaultPassword}
	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", login, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.LoginResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}

// DayPassTier returns the single tier of a seeded resort.
func (s *SharedSuite) DayPassTier(slug string) (resortID, tierID uuid.UUID) {
	t := s.T()

	resortID, ok := s.Resorts[slug]
	require.True(t, ok, "resort %q is not seeded", slug)

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/resorts/"+resortID.String(), nil, "")
	var res response.ResortResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.NotEmpty(t, res.PriceTiers)
	return resortID, res.PriceTiers[0].ID
}

func ValidCard() request.CardRequest {
	return request.CardRequest{
		Holder:   "Ana Pop",
		Number:   "4111111111111111",
		ExpMonth: "12",
		ExpYear:  "39",
		CVV:      "123",
	}
}
