package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/cliniccare-api/internal/config"
	"github.com/jwalitptl/cliniccare-api/internal/repository/postgres"
	"github.com/jwalitptl/cliniccare-api/internal/seed"
	"github.com/jwalitptl/cliniccare-api/pkg/logger"
	"github.com/jwalitptl/cliniccare-api/pkg/security"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	clearCodes := flag.Bool("clear", false, "delete existing diagnosis codes before seeding")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Init(cfg.Log.ToLoggerConfig())

	if err := run(cfg, *clearCodes); err != nil {
		log.Error().Err(err).Msg("seeding failed")
		os.Exit(1)
	}
	log.Info().Msg("seeding complete")
}

func run(cfg *config.Config, clearCodes bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := postgres.NewDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}

	repos := postgres.NewRepositories(db, nil)
	seeder := seed.NewSeeder(db, repos.Doctors, security.NewBcryptHasher(cfg.BcryptCost))

	if _, err := seeder.SeedDiagnosisCodes(ctx, clearCodes); err != nil {
		return err
	}
	if _, err := seeder.SeedDefaultDoctor(ctx, cfg.Seed); err != nil {
		return err
	}
	return nil
}
