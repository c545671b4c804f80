package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/aliyacapital/seriesdash/internal/config"
	"github.com/aliyacapital/seriesdash/internal/db"
	"github.com/aliyacapital/seriesdash/internal/logger"
	"github.com/aliyacapital/seriesdash/migrations"
)

func main() {
	cfgPath := flag.String("config", os.Getenv("SERIESDASH_CONFIG"), "config file")
	status := flag.Bool("status", false, "print the applied version and exit")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.App.Env, cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	database, err := sql.Open("postgres", db.DSN(cfg.DB))
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := database.PingContext(ctx); err != nil {
		log.Fatal("failed to ping database", zap.Error(err))
	}

	if *status {
		v, err := migrations.CurrentVersion(ctx, database)
		if err != nil {
			log.Fatal("failed to read schema version", zap.Error(err))
		}
		log.Info("schema version", zap.Int("version", v))
		return
	}

	if _, err := migrations.Run(ctx, database, log); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
}
