package db

import (
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var migrations embed.FS

type Command string

const (
	Up     Command = "up"
	Down   Command = "down"
	Status Command = "status"
)

// SetupPostgres applies all pending migrations through the application pool.
func SetupPostgres(pool *pgxpool.Pool, logger *zap.Logger) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	return Migrate(sqlDB, Up, logger)
}

func Migrate(sqlDB *sql.DB, command Command, logger *zap.Logger) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(newGooseLogger(logger))

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("can not set goose dialect: %w", err)
	}

	var err error
	switch command {
	case Up:
		err = goose.Up(sqlDB, migrationsDir)
	case Down:
		err = goose.Down(sqlDB, migrationsDir)
	case Status:
		err = goose.Status(sqlDB, migrationsDir)
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}

	if err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	return nil
}

type gooseLogger struct {
	l *zap.SugaredLogger
}

func newGooseLogger(logger *zap.Logger) goose.Logger {
	if logger == nil {
		return goose.NopLogger()
	}
	return gooseLogger{l: logger.Named("goose").Sugar()}
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.l.Fatalf(strings.TrimSpace(format), v...)
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.l.Infof(strings.TrimSpace(format), v...)
}
