package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"gym-booking/internal/domain/user"
	"gym-booking/internal/handler/api"
	"gym-booking/internal/handler/middleware"
	"gym-booking/internal/infra/metrics"
	"gym-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Logger         *slog.Logger
	Config         config.Config
	Metrics        *metrics.Registry
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter

	Auth    *api.AuthHandler
	Catalog *api.CatalogHandler
	Credit  *api.CreditHandler
	Order   *api.OrderHandler
	Webhook *api.WebhookHandler
	Admin   *api.AdminHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Logger, p.Config, p.Metrics)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, logger *slog.Logger, cfg config.Config, reg *metrics.Registry) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger, time.FixedZone(cfg.Log.TimeZone, cfg.Log.TimeZoneOffset)))
	engine.Use(middleware.Metrics(reg))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine, authMw, limit := p.Engine, p.AuthMiddleware, p.RateLimiter

	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Metrics.Gatherer(), promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.Auth.Login, Mw: []gin.HandlerFunc{limit.Limit("login")}},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: p.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/sessions", Handler: p.Catalog.Sessions},
			{Method: http.MethodGet, Path: "/credit-packages", Handler: p.Catalog.CreditPackages},
			{Method: http.MethodPost, Path: "/webhooks/payments", Handler: p.Webhook.Payments, Mw: []gin.HandlerFunc{limit.Limit("webhook")}},
		})

		optional := apiGroup.Group("")
		optional.Use(authMw.OptionalAuth())
		{
			addRoutes(optional, []route{
				{Method: http.MethodPost, Path: "/checkout", Handler: p.Order.Checkout, Mw: []gin.HandlerFunc{limit.Limit("checkout")}},
				{Method: http.MethodGet, Path: "/orders/:reference", Handler: p.Order.Get},
				{Method: http.MethodGet, Path: "/orders/:reference/await", Handler: p.Order.Await},
			})
		}

		customer := apiGroup.Group("")
		customer.Use(authMw.RequireAuth())
		{
			addRoutes(customer, []route{
				{Method: http.MethodGet, Path: "/credits", Handler: p.Credit.Summary},
				{Method: http.MethodPost, Path: "/credits/checkout", Handler: p.Credit.Checkout, Mw: []gin.HandlerFunc{limit.Limit("checkout")}},
				{Method: http.MethodPost, Path: "/bookings/use-credit", Handler: p.Credit.UseCredit, Mw: []gin.HandlerFunc{limit.Limit("use-credit")}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMw.RequireAuth(), authMw.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: p.Admin.CancelBooking},
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
