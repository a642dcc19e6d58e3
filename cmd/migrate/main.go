package main

import (
	"flag"
	"os"

	"github.com/tourvista/tourism-backend/internal/config"
	"github.com/tourvista/tourism-backend/internal/database"
	"github.com/tourvista/tourism-backend/internal/migration"
	pkglogger "github.com/tourvista/tourism-backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs/config.local.yaml", "config file path")
	seed := flag.Bool("seed", false, "insert demo content into empty tables")
	verbose := flag.Bool("verbose", false, "verbose SQL logging")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	config.LoadDotEnv(env)
	pkglogger.InitStructured(env, os.Getenv("LOG_LEVEL"), config.IsDevelopmentEnv(env))
	log := pkglogger.GetLogger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := database.Open(cfg.Database, *verbose)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() { _ = database.Close(db) }()

	if err := migration.Run(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Msg("schema migrated")

	if *seed {
		if err := migration.Seed(db); err != nil {
			log.Fatal().Err(err).Msg("seed failed")
		}
		log.Info().Msg("demo content seeded")
	}
}
