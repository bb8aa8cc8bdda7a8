// Command seeder inserts demo RFID tags and samples. Rows that already exist
// are left untouched, so it is safe to run repeatedly.
//
// Flags:
//
//	--fixtures  path to a YAML fixture file (default: built-in demo data)
//	--dry-run   validate fixtures without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/labsample-backend/internal/adapter/postgres"
	"github.com/heartmarshall/labsample-backend/internal/app"
	"github.com/heartmarshall/labsample-backend/internal/config"
	"github.com/heartmarshall/labsample-backend/internal/seeder"
)

func main() {
	fixturesFlag := flag.String("fixtures", "", "path to YAML fixture file")
	dryRunFlag := flag.Bool("dry-run", false, "validate fixtures without writing to DB")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log, nil)

	seederCfg, err := seeder.LoadConfig()
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override env.
	if *fixturesFlag != "" {
		seederCfg.FixturePath = *fixturesFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	fixtures, err := seeder.LoadFixtures(seederCfg.FixturePath)
	if err != nil {
		logger.Error("load fixtures", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	s := seeder.New(logger, pool, postgres.NewTxManager(pool))
	res, err := s.Run(ctx, fixtures, seederCfg.DryRun)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding complete",
		slog.Int("tags_created", res.TagsCreated),
		slog.Int("tags_skipped", res.TagsSkipped),
		slog.Int("samples_created", res.SamplesCreated),
		slog.Int("samples_skipped", res.SamplesSkipped),
	)
}
