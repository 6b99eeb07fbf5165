// Command sweep deletes asset files that no album row references.
// It runs outside the request path and is safe to schedule periodically.
package main

import (
	"context"
	"flag"
	"os"

	"albumvault/internal/config"
	"albumvault/internal/database"
	"albumvault/internal/logger"
	"albumvault/internal/storage"
	"albumvault/internal/sweep"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report orphaned files without deleting them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := cfg.Finalize(); err != nil {
		os.Stderr.WriteString("invalid configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(&cfg.Logging)

	db, err := database.Open(&cfg.Database)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store, err := storage.New(&cfg.Storage, log)
	if err != nil {
		log.Error("failed to open asset store", "error", err)
		os.Exit(1)
	}

	report, err := sweep.Run(context.Background(), db, store, log, *dryRun)
	if err != nil {
		log.Error("sweep failed", "error", err)
		os.Exit(1)
	}

	log.Info(
		"sweep complete",
		"scanned", report.Scanned,
		"orphaned", report.Orphaned,
		"deleted", report.Deleted,
		"dry_run", *dryRun,
	)
}
