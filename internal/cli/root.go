// Package cli implements shlokctl, the operator command line for the daily
// shlok service.
package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/daily-shlok/internal/adapter/postgres"
	"github.com/heartmarshall/daily-shlok/internal/app"
	"github.com/heartmarshall/daily-shlok/internal/config"
	"github.com/heartmarshall/daily-shlok/internal/domain"
	"github.com/heartmarshall/daily-shlok/internal/service/publication"
)

// service is the slice of the publication service the commands drive.
type service interface {
	PublishForDate(ctx context.Context, date domain.Date) (*publication.PublishResult, error)
	ForDate(ctx context.Context, date domain.Date) (*domain.PublishedShlok, error)
	PruneOrphans(ctx context.Context, olderThan time.Duration) (int64, error)
	CurrentDate() domain.Date
}

// Runtime supplies the side-effecting dependencies of the commands.
type Runtime struct {
	LoadConfig      func() (*config.Config, error)
	NewLogger       func(config.LogConfig) *slog.Logger
	Connect         func(ctx context.Context, cfg *config.Config, log *slog.Logger) (service, func(), error)
	Migrate         func(ctx context.Context, dsn string) ([]int64, error)
	MigrationStatus func(ctx context.Context, dsn string) ([]postgres.MigrationState, error)
}

// DefaultRuntime talks to the configured PostgreSQL, Redis and LLM provider.
func DefaultRuntime() Runtime {
	return Runtime{
		LoadConfig: config.Load,
		NewLogger:  app.NewLogger,
		Connect: func(ctx context.Context, cfg *config.Config, log *slog.Logger) (service, func(), error) {
			c, err := app.Build(ctx, cfg, log)
			if err != nil {
				return nil, nil, err
			}
			return c.Publication, c.Close, nil
		},
		Migrate:         postgres.Migrate,
		MigrationStatus: postgres.MigrationStatus,
	}
}

// NewRootCmd builds the shlokctl command tree.
func NewRootCmd(rt Runtime) *cobra.Command {
	root := &cobra.Command{
		Use:           "shlokctl",
		Short:         "Operate the daily shlok service",
		Long:          "shlokctl applies migrations, publishes and inspects daily shloks, prunes orphaned content and mints admin tokens.",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(rt),
		newPublishCmd(rt),
		newShowCmd(rt),
		newPruneCmd(rt),
		newTokenCmd(rt),
	)
	return root
}

// setup loads configuration and the logger shared by every command.
func (rt Runtime) setup() (*config.Config, *slog.Logger, error) {
	cfg, err := rt.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	return cfg, rt.NewLogger(cfg.Log), nil
}

// connect loads configuration and wires the publication service.
func (rt Runtime) connect(ctx context.Context) (service, func(), error) {
	cfg, log, err := rt.setup()
	if err != nil {
		return nil, nil, err
	}
	return rt.Connect(ctx, cfg, log)
}

// dateFlag resolves an optional --date flag; empty means today in the home zone.
func dateFlag(raw string, svc service) (domain.Date, error) {
	if raw == "" {
		return svc.CurrentDate(), nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return domain.Date{}, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	return d, nil
}
