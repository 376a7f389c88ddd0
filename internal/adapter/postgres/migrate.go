package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/daily-shlok/migrations"
)

// MigrationState is the applied state of one migration.
type MigrationState struct {
	Version int64
	Source  string
	Applied bool
}

// Migrate applies all pending embedded migrations and returns the versions
// it applied.
func Migrate(ctx context.Context, dsn string) ([]int64, error) {
	var applied []int64
	err := withProvider(ctx, dsn, func(p *goose.Provider) error {
		results, err := p.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		for _, r := range results {
			applied = append(applied, r.Source.Version)
		}
		return nil
	})
	return applied, err
}

// MigrationStatus reports every embedded migration and whether it is applied.
func MigrationStatus(ctx context.Context, dsn string) ([]MigrationState, error) {
	var states []MigrationState
	err := withProvider(ctx, dsn, func(p *goose.Provider) error {
		status, err := p.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, s := range status {
			states = append(states, MigrationState{
				Version: s.Source.Version,
				Source:  s.Source.Path,
				Applied: s.State == goose.StateApplied,
			})
		}
		return nil
	})
	return states, err
}

// withProvider opens a database/sql handle for goose, which does not
// speak pgxpool.
func withProvider(ctx context.Context, dsn string, fn func(*goose.Provider) error) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	return fn(provider)
}
