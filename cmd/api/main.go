package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"sama-store/internal/config"
	"sama-store/internal/logger"
	"sama-store/internal/recommend"
	"sama-store/internal/server"
	"sama-store/internal/service"
	"sama-store/internal/storage"
	"sama-store/internal/store"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, logger *zap.Logger, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")
	done <- true
}

// newProvider selects the persistence backend from config.
func newProvider(cfg *config.Config, redisClient *redis.Client) (storage.Provider, error) {
	switch cfg.Storage.Driver {
	case "file":
		return storage.NewFileProvider(cfg.Storage.DataDir)
	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("redis storage driver requires a redis connection")
		}
		return storage.NewRedisProvider(redisClient), nil
	case "memory":
		return storage.NewMemoryProvider(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func main() {
	// .env values feed viper's AutomaticEnv.
	godotenv.Load()
	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting storefront API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("storage", cfg.Storage.Driver),
	)

	var redisClient *redis.Client
	if cfg.Storage.Driver == "redis" || cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	provider, err := newProvider(cfg, redisClient)
	if err != nil {
		log.Fatal("Failed to initialize storage provider", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := provider.Ping(ctx); err != nil {
		log.Fatal("Storage provider health check failed", zap.Error(err))
	}
	st := store.New(ctx, provider, log)
	cancel()
	log.Info("Domain store loaded", zap.Int("products", len(st.Products())))

	auth, err := service.NewAuthService(st, cfg.Admin.Email, cfg.Admin.Password, cfg.JWT.Secret,
		time.Duration(cfg.JWT.TokenExpiry)*time.Minute)
	if err != nil {
		log.Fatal("Failed to initialize auth service", zap.Error(err))
	}

	var recommender *recommend.Client
	if cfg.Recommend.Enabled {
		recommender = recommend.NewClient(cfg.Recommend.BaseURL, cfg.Recommend.APIKey, cfg.Recommend.Model,
			recommend.WithLogger(log))
		log.Info("Recommendation gateway enabled", zap.String("model", cfg.Recommend.Model))
	}

	srv := server.NewServer(cfg, log, st, auth, recommender, redisClient)

	done := make(chan bool, 1)
	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	<-done
	log.Info("Graceful shutdown complete")
}
