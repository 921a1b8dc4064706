package handler

import (
	"net/http"

	"skipass-api/internal/handler/api"
	"skipass-api/internal/handler/middleware"
	"skipass-api/internal/infra/metrics"
	"skipass-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine          *gin.Engine
	Config          config.Config
	Logger          *middleware.Logger
	HTTPMetrics     middleware.HTTPMetrics
	Gatherer        prometheus.Gatherer
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimiter     *middleware.RateLimiter
	AuthHandler     *api.AuthHandler
	UserHandler     *api.UserHandler
	PassHandler     *api.PassHandler
	ResortHandler   *api.ResortHandler
	FavoriteHandler *api.FavoriteHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	p.Engine.Use(middleware.Metrics(p.HTTPMetrics))
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	requireAuth := p.AuthMiddleware.RequireAuth()
	perUser := p.RateLimiter.PerUser()

	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler(p.Gatherer)))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: p.AuthHandler.Register, Mw: []gin.HandlerFunc{middleware.SanitizeJSON("name")}},
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.AuthHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
			})
		}

		users := apiGroup.Group("/users/me")
		users.Use(requireAuth)
		{
			addRoutes(users, []route{
				{Method: http.MethodPatch, Path: "", Handler: p.UserHandler.UpdateProfile, Mw: []gin.HandlerFunc{middleware.SanitizeJSON("name")}},
				{Method: http.MethodPut, Path: "/password", Handler: p.UserHandler.ChangePassword},
			})
		}

		resorts := apiGroup.Group("/resorts")
		{
			addRoutes(resorts, []route{
				{Method: http.MethodGet, Path: "", Handler: p.ResortHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.ResortHandler.Get},
			})
		}

		favorites := apiGroup.Group("/favorites")
		favorites.Use(requireAuth)
		{
			addRoutes(favorites, []route{
				{Method: http.MethodGet, Path: "", Handler: p.FavoriteHandler.List},
				{Method: http.MethodPut, Path: "/:resortId", Handler: p.FavoriteHandler.Add},
				{Method: http.MethodDelete, Path: "/:resortId", Handler: p.FavoriteHandler.Remove},
			})
		}

		passes := apiGroup.Group("/passes")
		passes.Use(requireAuth)
		{
			addRoutes(passes, []route{
				{Method: http.MethodGet, Path: "", Handler: p.PassHandler.List},
				{Method: http.MethodPost, Path: "", Handler: p.PassHandler.Checkout, Mw: []gin.HandlerFunc{perUser}},
				{Method: http.MethodGet, Path: "/:id", Handler: p.PassHandler.Get},
				{Method: http.MethodPost, Path: "/:id/activate", Handler: p.PassHandler.Activate, Mw: []gin.HandlerFunc{perUser}},
				{Method: http.MethodGet, Path: "/:id/entry-proof", Handler: p.PassHandler.EntryProof},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

// chainHandlers runs hs in order and stops at the first abort. It is the
// last handler of the route, so c.Next() inside hs is a no-op.
func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
