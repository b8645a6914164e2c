package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medilink/backend/internal/config"
	"github.com/medilink/backend/internal/service"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// HTTPMetrics is the Prometheus surface the router mounts.
type HTTPMetrics interface {
	Middleware() gin.HandlerFunc
	Handler() http.Handler
}

// RouterDeps collects everything NewRouter mounts. Metrics and DB may be nil.
type RouterDeps struct {
	AuthService   *service.AuthService
	Auth          *AuthHandler
	Users         *UserHandler
	Medicines     *MedicineHandler
	Reviews       *ReviewHandler
	SearchHistory *SearchHistoryHandler
	Chat          *ChatHandler

	DB      Pinger
	Metrics HTTPMetrics
	Logger  *zap.Logger

	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	ServiceName string
	Tracing     bool
}

func NewRouter(d RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(Recover(d.Logger))
	if d.Tracing {
		router.Use(otelgin.Middleware(d.ServiceName))
	}
	router.Use(RequestLogger(d.Logger))
	if d.Metrics != nil {
		router.Use(d.Metrics.Middleware())
	}
	router.Use(CORSMiddleware(d.CORS.AllowedOrigins, d.CORS.AllowCredentials))

	router.GET("/", Root)
	router.GET("/ping", Ping)
	router.GET("/openapi.json", OpenAPIDoc)
	if d.DB != nil {
		router.GET("/healthz", Healthz(d.DB))
	}
	if d.Metrics != nil {
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	api := router.Group("/api/v1")

	admin := api.Group("/admin")
	admin.POST("/login", NewRateLimiter(d.RateLimit.LoginPerMinute).Handler(), d.Auth.Login)
	admin.POST("/logout", d.Auth.Logout)

	api.POST("/chat", NewRateLimiter(d.RateLimit.ChatPerMinute).Handler(), d.Chat.Chat)

	guarded := api.Group("")
	guarded.Use(AuthMiddleware(d.AuthService))
	{
		guarded.GET("/admin/profile", d.Auth.Profile)
		guarded.PUT("/admin/profile", d.Auth.UpdateProfile)
		guarded.PUT("/admin/change-password", d.Auth.ChangePassword)

		guarded.GET("/users", d.Users.List)
		guarded.POST("/users", d.Users.Create)
		guarded.GET("/users/:id", d.Users.Get)
		guarded.PUT("/users/:id", d.Users.Update)
		guarded.PATCH("/users/:id/status", d.Users.SetStatus)
		guarded.DELETE("/users/:id", d.Users.Delete)

		guarded.GET("/medicines", d.Medicines.List)
		guarded.POST("/medicines", d.Medicines.Create)
		guarded.GET("/medicines/:id", d.Medicines.Get)
		guarded.PUT("/medicines/:id", d.Medicines.Update)
		guarded.DELETE("/medicines/:id", d.Medicines.Delete)

		guarded.GET("/reviews", d.Reviews.List)
		guarded.GET("/reviews/:id", d.Reviews.Get)
		guarded.PATCH("/reviews/:id/status", d.Reviews.SetStatus)
		guarded.DELETE("/reviews/:id", d.Reviews.Delete)

		guarded.GET("/search-history", d.SearchHistory.List)
		guarded.GET("/search-history/top", d.SearchHistory.Top)
		guarded.DELETE("/search-history/:id", d.SearchHistory.Delete)
		guarded.DELETE("/search-history/users/:user_id", d.SearchHistory.ClearUser)

		guarded.GET("/dashboard/stats", d.SearchHistory.DashboardStats)
	}

	return router
}
