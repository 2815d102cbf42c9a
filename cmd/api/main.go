package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/profile-catalog/internal/cache"
	"github.com/BruksfildServices01/profile-catalog/internal/config"
	dbpkg "github.com/BruksfildServices01/profile-catalog/internal/db"
	infraRepo "github.com/BruksfildServices01/profile-catalog/internal/infra/repository"
	"github.com/BruksfildServices01/profile-catalog/internal/middleware"
	"github.com/BruksfildServices01/profile-catalog/internal/routes"
	"github.com/BruksfildServices01/profile-catalog/internal/seed"
	"github.com/BruksfildServices01/profile-catalog/internal/storage"
	ucService "github.com/BruksfildServices01/profile-catalog/internal/usecase/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}

	if err := seed.Defaults(cfg.SeedDir).Run(ctx, infraRepo.NewCatalogGormRepository(db)); err != nil {
		return err
	}

	store, err := newStore(cfg)
	if err != nil {
		return err
	}

	redisCache, err := cache.NewRedis(ctx, cfg.RedisURL, cfg.CacheTTL)
	if err != nil {
		return err
	}
	defer redisCache.Close()

	var responseCache ucService.Cache
	if redisCache != nil {
		responseCache = redisCache
	}

	if !strings.EqualFold(cfg.LogLevel, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Config: cfg,
		Store:  store,
		Cache:  responseCache,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", cfg.Addr())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	slog.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func newStore(cfg *config.Config) (storage.Store, error) {
	if cfg.StorageDriver == "s3" {
		return storage.NewS3Store(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		}), nil
	}
	local, err := storage.NewLocalStore(cfg.PhotoDir)
	if err != nil {
		return nil, err
	}
	return local, nil
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
