package db

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/Spok95/project-assistant/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// MigratePostgres применяет миграции через отдельное database/sql соединение (драйвер pgx).
func MigratePostgres(ctx context.Context, dsn string, log *slog.Logger) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return Migrate(ctx, sqlDB, goose.DialectPostgres, "postgres", log)
}

func MigrateSQLite(ctx context.Context, sqlDB *sql.DB, log *slog.Logger) error {
	return Migrate(ctx, sqlDB, goose.DialectSQLite3, "sqlite", log)
}

// Migrate прогоняет встроенные миграции из каталога dir.
func Migrate(ctx context.Context, sqlDB *sql.DB, dialect goose.Dialect, dir string, log *slog.Logger) error {
	fsys, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return err
	}
	p, err := goose.NewProvider(dialect, sqlDB, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		log.Info("migration applied", "version", r.Source.Version, "took", r.Duration)
	}
	return nil
}
