package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/kitchen-api/internal/platform/postgres/migrations"
	"github.com/pressly/goose/v3"
)

// MigrationTableName is the goose version table.
const MigrationTableName = "schema_migrations"

type migrationFunc func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error

var migrationCommands = map[string]migrationFunc{
	"up":      goose.UpContext,
	"down":    goose.DownContext,
	"reset":   goose.ResetContext,
	"status":  goose.StatusContext,
	"version": goose.VersionContext,
}

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements goose.Logger.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements goose.Logger. It does not exit; the failure is returned
// to main.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// runMigrations executes one goose command against the embedded migrations.
func runMigrations(ctx context.Context, db *sql.DB, command string, log *slog.Logger) error {
	fn, ok := migrationCommands[command]
	if !ok {
		return fmt.Errorf("unknown migration command: %s (expected up, down, reset, status or version)", command)
	}

	migrationLogger := log.With(slog.String("component", "migrations"), slog.String("command", command))
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&slogGooseLogger{logger: migrationLogger})
	goose.SetTableName(MigrationTableName)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	start := time.Now()
	if err := fn(ctx, db, "."); err != nil {
		migrationLogger.Error("migration command failed",
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		return fmt.Errorf("migration command '%s' failed: %w", command, err)
	}

	migrationLogger.Info("migration command executed successfully",
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}
