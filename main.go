// @title MediLink Admin API
// @version 1.0
// @description Admin backend for the MediLink health app.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medilink/backend/internal/client"
	"github.com/medilink/backend/internal/config"
	"github.com/medilink/backend/internal/db"
	"github.com/medilink/backend/internal/handler"
	"github.com/medilink/backend/internal/jobs"
	"github.com/medilink/backend/internal/logger"
	"github.com/medilink/backend/internal/metrics"
	"github.com/medilink/backend/internal/service"
	"github.com/medilink/backend/internal/telemetry"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Named("fx")}
		}),
		fx.Provide(
			newConfig,
			newLogger,
			newTelemetry,
			newPGXPool,
			db.New,
			metrics.New,
			newAuthService,
			newUserService,
			newMedicineService,
			newReviewService,
			newSearchHistoryService,
			newChatService,
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewMedicineHandler,
			handler.NewReviewHandler,
			handler.NewSearchHistoryHandler,
			newChatHandler,
			newRouter,
		),
		fx.Invoke(bootstrap, startScheduler, startHTTPServer),
	)

	app.Run()
}

func newConfig() (config.Config, error) {
	return config.Load()
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.App.Env)
}

func newTelemetry(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*telemetry.Provider, error) {
	provider, err := telemetry.New(context.Background(), cfg.Telemetry, logger)
	if err != nil {
		return nil, fmt.Errorf("telemetry init: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return provider.Shutdown(stopCtx)
		},
	})

	return provider, nil
}

func newPGXPool(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			pool.Close()
			return nil
		},
	})

	return pool, nil
}

func newAuthService(store *db.Postgres, cfg config.Config, m *metrics.Metrics, logger *zap.Logger) (*service.AuthService, error) {
	return service.NewAuthService(store, cfg.Auth,
		service.WithAuthObserver(m),
		service.WithAuthLogger(logger.Named("auth")),
	)
}

func newUserService(store *db.Postgres) *service.UserService {
	return service.NewUserService(store, bcrypt.DefaultCost)
}

func newMedicineService(store *db.Postgres) *service.MedicineService {
	return service.NewMedicineService(store)
}

func newReviewService(store *db.Postgres) *service.ReviewService {
	return service.NewReviewService(store)
}

func newSearchHistoryService(store *db.Postgres, cfg config.Config, logger *zap.Logger) *service.SearchHistoryService {
	return service.NewSearchHistoryService(store, cfg.Jobs.SearchHistoryRetention, logger.Named("search_history"))
}

// newChatService falls back to keyword replies when no LLM key is configured
// or the client cannot be built.
func newChatService(cfg config.Config, logger *zap.Logger) *service.ChatService {
	logger = logger.Named("chat")
	if cfg.Chat.APIKey == "" {
		logger.Info("AI_API_KEY not set, chat uses fallback replies only")
		return service.NewChatService(nil, logger)
	}

	llm, err := client.NewChatClient(context.Background(), cfg.Chat)
	if err != nil {
		logger.Warn("chat client init failed, chat uses fallback replies only", zap.Error(err))
		return service.NewChatService(nil, logger)
	}
	logger.Info("chat client ready", zap.String("model", llm.Model()))
	return service.NewChatService(llm, logger)
}

func newChatHandler(svc *service.ChatService, m *metrics.Metrics) *handler.ChatHandler {
	return handler.NewChatHandler(svc, m)
}

type routerParams struct {
	fx.In

	Config        config.Config
	Logger        *zap.Logger
	Telemetry     *telemetry.Provider
	Metrics       *metrics.Metrics
	Store         *db.Postgres
	AuthService   *service.AuthService
	Auth          *handler.AuthHandler
	Users         *handler.UserHandler
	Medicines     *handler.MedicineHandler
	Reviews       *handler.ReviewHandler
	SearchHistory *handler.SearchHistoryHandler
	Chat          *handler.ChatHandler
}

func newRouter(p routerParams) *gin.Engine {
	switch strings.ToLower(p.Config.App.Env) {
	case "local", "dev", "development":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	return handler.NewRouter(handler.RouterDeps{
		AuthService:   p.AuthService,
		Auth:          p.Auth,
		Users:         p.Users,
		Medicines:     p.Medicines,
		Reviews:       p.Reviews,
		SearchHistory: p.SearchHistory,
		Chat:          p.Chat,
		DB:            p.Store,
		Metrics:       p.Metrics,
		Logger:        p.Logger,
		CORS:          p.Config.CORS,
		RateLimit:     p.Config.RateLimit,
		ServiceName:   p.Config.Telemetry.ServiceName,
		Tracing:       p.Telemetry.Enabled(),
	})
}

// bootstrap prepares the schema and the initial admin before traffic is served.
func bootstrap(lc fx.Lifecycle, cfg config.Config, store *db.Postgres, auth *service.AuthService, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := store.EnsureSchema(ctx); err != nil {
				return fmt.Errorf("ensure schema: %w", err)
			}
			if cfg.Auth.AdminUsername == "" {
				logger.Info("ADMIN_USERNAME not set, skipping bootstrap admin")
				return nil
			}
			if err := auth.EnsureAdmin(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
				return fmt.Errorf("bootstrap admin: %w", err)
			}
			return nil
		},
	})
}

func startScheduler(lc fx.Lifecycle, svc *service.SearchHistoryService, cfg config.Config, m *metrics.Metrics, logger *zap.Logger) {
	scheduler := jobs.NewScheduler(svc, cfg.Jobs.SearchHistoryPruneSpec, m.ObservePruned, logger.Named("jobs"))
	var cancel context.CancelFunc

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			runCtx, stop := context.WithCancel(context.Background())
			cancel = stop
			return scheduler.Start(runCtx)
		},
		OnStop: func(context.Context) error {
			if cancel != nil {
				cancel()
			}
			scheduler.Stop()
			return nil
		},
	})
}

func startHTTPServer(lc fx.Lifecycle, router *gin.Engine, cfg config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.App.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
			logger.Info("http server listening", zap.String("addr", srv.Addr))

			go func() {
				defer close(done)
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, cfg.App.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(stopCtx); err != nil {
				return fmt.Errorf("http shutdown: %w", err)
			}
			<-done
			return nil
		},
	})
}
