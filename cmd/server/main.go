package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/iliyamo/giftshop-catalog/internal/config"
	"github.com/iliyamo/giftshop-catalog/internal/database"
	"github.com/iliyamo/giftshop-catalog/internal/handler"
	"github.com/iliyamo/giftshop-catalog/internal/logger"
	"github.com/iliyamo/giftshop-catalog/internal/metrics"
	"github.com/iliyamo/giftshop-catalog/internal/middleware"
	"github.com/iliyamo/giftshop-catalog/internal/repository"
	"github.com/iliyamo/giftshop-catalog/internal/router"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// run owns every resource so its deferred cleanup runs on all exit paths.
func run() error {
	cfg := config.Load()

	lg, err := logger.NewForEnvironment(cfg.Env,
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(cfg.LogFormat),
	)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = lg.Sync() }()

	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb == nil {
		lg.Warn("redis unreachable, rate limiting disabled", zap.String("addr", cfg.Redis.Addr))
	} else {
		defer rdb.Close()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	e := newEcho(lg, metrics.NewHTTP(reg))
	catalog := handler.NewCatalogHandler(
		repository.NewGiftWrapRepo(db, cfg.QueryTimeout),
		repository.NewOccasionRepo(db, cfg.QueryTimeout),
		lg,
	)
	router.RegisterRoutes(e, reg)
	router.RegisterCatalog(e, catalog, middleware.NewTokenBucket(cfg.RateLimit, rdb, lg))
	router.RegisterSession(e, cfg.JWTSecret)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.Port
	lg.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	return serve(ctx, e, addr)
}

// newEcho builds the server with the global middleware chain.  Metrics sits
// outside Recover so recovered panics are still counted as 500s.
func newEcho(lg *zap.Logger, m *metrics.HTTP) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(
		echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}),
		middleware.RequestLogger(lg),
		middleware.Metrics(m),
		echomw.Recover(),
	)
	return e
}

// serve runs e on addr until ctx is cancelled or the listener fails.  A
// listener failure is returned instead of exiting so callers unwind normally.
func serve(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
