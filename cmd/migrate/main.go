package main

import (
	"database/sql"
	stdlog "log"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/tropicaldog17/stockfolio/internal/config"
	"github.com/tropicaldog17/stockfolio/internal/db"
	"github.com/tropicaldog17/stockfolio/internal/logger"
	"github.com/tropicaldog17/stockfolio/migrations"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		stdlog.Fatal("Failed to build logger:", err)
	}
	defer log.Sync()

	dbConfig := db.NewConfig()
	conn, err := sql.Open("postgres", dbConfig.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		log.Fatal("Failed to ping database", zap.Error(err))
	}

	applied, err := migrations.Apply(conn)
	for _, name := range applied {
		log.Info("Migration applied", zap.String("file", name))
	}
	if err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
	log.Info("All migrations completed successfully", zap.Int("applied", len(applied)))
}
