package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/daily-shlok/internal/auth"
	"github.com/heartmarshall/daily-shlok/internal/config"
	"github.com/heartmarshall/daily-shlok/internal/scheduler"
	"github.com/heartmarshall/daily-shlok/internal/transport/middleware"
	"github.com/heartmarshall/daily-shlok/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, wires the
// publication pipeline, and serves the HTTP API alongside the daily
// scheduler until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	c, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newHandler(cfg, c, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.Scheduler.Enabled {
		daily := scheduler.New(logger, c.Publication, cfg.Scheduler.At, cfg.Publication.Location)
		g.Go(func() error {
			return daily.Run(gctx)
		})
	} else {
		logger.Info("scheduler disabled")
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("stopped")
	return nil
}

// newHandler builds the middleware chain around the API router.
func newHandler(cfg *config.Config, c *Components, logger *slog.Logger) http.Handler {
	checks := []rest.Check{{Name: "database", Ping: c.Pool.Ping}}
	if c.Redis != nil {
		checks = append(checks, rest.Check{
			Name:     "cache",
			Ping:     func(ctx context.Context) error { return c.Redis.Ping(ctx).Err() },
			Optional: true,
		})
	}

	router := rest.NewRouter(
		rest.NewShlokHandler(c.Publication, logger),
		rest.NewHealthHandler(BuildVersion(), checks...),
	)

	var authMW middleware.Middleware
	if cfg.Admin.Enabled() {
		jwt := auth.NewJWTManager(cfg.Admin.JWTSecret, cfg.Admin.JWTIssuer, cfg.Admin.TokenTTL)
		authMW = middleware.Auth(jwt)
	} else {
		logger.Warn("admin secret not set, admin endpoints reject every request")
	}

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		authMW,
	)(router)
}
