package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/fitverse/internal/config"
	"github.com/claude/fitverse/internal/importer"
	"github.com/claude/fitverse/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	exportPath := flag.String("path", "", "path to mobile export file (required)")
	user := flag.String("user", "local", "user ID to import workouts under")
	dryRun := flag.Bool("dry-run", false, "report counts without inserting into database")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *exportPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: fitverse-import -config config.yaml -path /path/to/export.db [-user id] [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if _, err := os.Stat(*exportPath); err != nil {
		log.Error("export file does not exist", "path", *exportPath)
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()

	// Run migrations
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	ctx := context.Background()

	if *dryRun {
		log.Info("DRY RUN mode — no data will be written to the database")
	}

	// Connect database
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	// Run import
	imp := importer.New(db, log, *dryRun)
	stats, err := imp.Import(ctx, *exportPath, *user)
	if err != nil {
		log.Error("import failed", "error", err)
		printStats(log, stats)
		os.Exit(1)
	}

	printStats(log, stats)
	log.Info("import complete")
}

func printStats(log *slog.Logger, stats *importer.Stats) {
	log.Info("import stats",
		"workouts_imported", stats.WorkoutsImported,
		"workouts_duplicated", stats.WorkoutsDuplicated,
		"workouts_skipped", stats.WorkoutsSkipped,
		"sets_imported", stats.SetsImported,
		"records_set", stats.RecordsSet,
	)
}
