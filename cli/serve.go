package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"calc-suite/config"
	httpLayer "calc-suite/http"
	"calc-suite/repository"
	"calc-suite/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, logger)
	},
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	cache, closeCache, err := openCache(ctx, cfg.Cache, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	repo, closeRepo, err := openHistory(ctx, cfg.History)
	if err != nil {
		return err
	}
	defer closeRepo()

	svc := service.NewCalculatorService(cache, repo, logger)

	var limiter *httpLayer.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = httpLayer.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		defer limiter.Stop()
	}

	router := httpLayer.NewRouter(httpLayer.RouterOptions{
		Handler: httpLayer.NewCalculatorHandler(svc, logger, cfg.Server.MaxBodyBytes),
		Limiter: limiter,
		Metrics: httpLayer.NewMetrics(),
		Logger:  logger,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("api listening",
			zap.String("addr", server.Addr),
			zap.String("cache", cfg.Cache.Backend),
			zap.String("history", cfg.History.Backend),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server exited")
	return nil
}

// openCache builds the configured cache. An unreachable redis degrades to the
// in-process cache.
func openCache(ctx context.Context, cc config.CacheConfig, logger *zap.Logger) (repository.CacheRepository, func(), error) {
	noop := func() {}
	switch cc.Backend {
	case config.CacheNone:
		return repository.NoopCache{}, noop, nil
	case config.CacheRedis:
		rc := repository.NewRedisCache(cc.RedisAddr, cc.TTL)
		err := rc.Ping(ctx)
		if err == nil {
			return rc, func() { _ = rc.Close() }, nil
		}
		logger.Warn("redis unavailable, using in-process cache", zap.String("addr", cc.RedisAddr), zap.Error(err))
		_ = rc.Close()
	}
	lc, err := repository.NewLRUCache(cc.Size)
	if err != nil {
		return nil, noop, err
	}
	return lc, noop, nil
}

func openHistory(ctx context.Context, hc config.HistoryConfig) (repository.CalculationRepository, func(), error) {
	switch hc.Backend {
	case config.HistoryMemory:
		return repository.NewCalculationRepositoryMemory(hc.Capacity), func() {}, nil
	case config.HistorySQL:
		repo, err := repository.NewSQLCalculationRepository(ctx, hc.DatabaseURL)
		if err != nil {
			return nil, func() {}, err
		}
		return repo, func() { _ = repo.Close() }, nil
	}
	return nil, func() {}, nil
}
