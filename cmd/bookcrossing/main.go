package main

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	"github.com/project/bookcrossing/config"
	"github.com/project/bookcrossing/db"
	"github.com/project/bookcrossing/internal/app"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "bookcrossing",
		Short:        "Peer-to-peer book lending service",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		log.Fatalf("bookcrossing: %s", err)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC server, the REST gateway and the outbox relay",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			cfg, logger := mustBootstrap()
			defer func() { _ = logger.Sync() }()

			app.Run(logger, cfg)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply or inspect database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(db.Up), string(db.Down), string(db.Status)},
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, logger := mustBootstrap()
			defer func() { _ = logger.Sync() }()

			sqlDB, err := sql.Open("postgres", cfg.PG.URL)
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			return db.Migrate(sqlDB, db.Command(args[0]), logger)
		},
	}
}

func mustBootstrap() (*config.Config, *zap.Logger) {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("can not get application config: %s", err)
	}

	logger, err := NewFileLogger(cfg.Log.File)
	if err != nil {
		log.Fatalf("can not initialize logger: %s", err)
	}

	return cfg, logger
}

func NewFileLogger(logFile string) (*zap.Logger, error) {
	if dir := filepath.Dir(logFile); dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)

	if err != nil {
		return nil, err
	}

	writeSyncer := zapcore.AddSync(file)
	encoderCfg := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	core := zapcore.NewCore(encoder, writeSyncer, zap.InfoLevel)

	return zap.New(core), nil
}
