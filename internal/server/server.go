package server

import (
	"fmt"
	"net/http"
	"time"

	"sama-store/internal/config"
	custommiddleware "sama-store/internal/middleware"
	"sama-store/internal/recommend"
	"sama-store/internal/service"
	"sama-store/internal/store"
	"sama-store/internal/tracking"
	"sama-store/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
}

// NewServer wires the router: ambient middleware, the public storefront
// surface, and the authenticated/admin surfaces over the domain store.
// recommender and redisClient may be nil when those features are off.
func NewServer(cfg *config.Config, logger *zap.Logger, st *store.Store, auth service.AuthService, recommender *recommend.Client, redisClient *redis.Client) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.Server.Env == "development"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	authMW := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)
	optionalAuthMW := custommiddleware.OptionalAuthMiddleware(cfg.JWT.Secret, logger)
	requireAdmin := custommiddleware.RequireAdmin(logger)

	var rateLimiter func(http.Handler) http.Handler
	if cfg.RateLimit.Enabled && redisClient != nil {
		rateLimiter = custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
			Window:            time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
			KeyPrefix:         "ratelimit:login",
		}, logger)
	}

	simulator := tracking.New(st)

	transport.NewAuthHandler(auth, logger).RegisterRoutes(router, rateLimiter)
	transport.NewCatalogHandler(st, recommender, logger).RegisterRoutes(router)
	transport.NewCartHandler(st, logger).RegisterRoutes(router)
	transport.NewOrderHandler(st, simulator, logger).RegisterRoutes(router, authMW)
	transport.NewChatHandler(st, logger).RegisterRoutes(router, optionalAuthMW)
	transport.NewAdminHandler(st, logger).RegisterRoutes(router, authMW, requireAdmin)

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
	}
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")
	s.logger.Sync()
	return nil
}
