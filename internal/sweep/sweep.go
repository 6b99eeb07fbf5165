// Package sweep reconciles the asset store against the albumes table.
// The creation pipeline deliberately leaves a PDF behind when its insert
// fails, and deletes never remove files; this sweep deletes those orphaned
// files out of band. Dangling references (rows pointing at missing files)
// are left alone: fetch handles them lazily.
package sweep

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"albumvault/internal/storage"
)

// Report summarizes a reconciliation pass.
type Report struct {
	Scanned  int
	Orphaned int
	Deleted  int
}

// Run collects referenced filenames from the database and reconciles both
// asset directories against them. With dryRun set, orphans are reported but
// not deleted.
func Run(ctx context.Context, db *sql.DB, store storage.System, logger *slog.Logger, dryRun bool) (Report, error) {
	refs, err := CollectReferences(ctx, db)
	if err != nil {
		return Report{}, err
	}
	return Reconcile(ctx, refs, store, logger, dryRun)
}

// CollectReferences returns the set of storage keys referenced by album rows.
func CollectReferences(ctx context.Context, db *sql.DB) (map[string]struct{}, error) {
	rows, err := db.QueryContext(ctx, `SELECT "Imagen", "ImagenPDF" FROM albumes`)
	if err != nil {
		return nil, fmt.Errorf("query references: %w", err)
	}
	defer rows.Close()

	refs := make(map[string]struct{})
	for rows.Next() {
		var image *string
		var pdf string
		if err := rows.Scan(&image, &pdf); err != nil {
			return nil, fmt.Errorf("scan references: %w", err)
		}
		if image != nil {
			refs[storage.ImageKey(*image)] = struct{}{}
		}
		refs[storage.PDFKey(pdf)] = struct{}{}
	}

	return refs, rows.Err()
}

// Reconcile deletes stored files whose keys are not in refs.
func Reconcile(ctx context.Context, refs map[string]struct{}, store storage.System, logger *slog.Logger, dryRun bool) (Report, error) {
	var report Report

	for _, prefix := range []string{storage.ImagePrefix, storage.PDFPrefix} {
		keys, err := store.List(ctx, prefix)
		if err != nil {
			return report, fmt.Errorf("list %s: %w", prefix, err)
		}

		for _, key := range keys {
			report.Scanned++
			if _, ok := refs[key]; ok {
				continue
			}

			report.Orphaned++
			if dryRun {
				logger.Info("orphaned file", "key", key)
				continue
			}

			if err := store.Delete(ctx, key); err != nil {
				logger.Error("orphan delete failed", "key", key, "error", err)
				continue
			}
			report.Deleted++
			logger.Info("orphaned file deleted", "key", key)
		}
	}

	return report, nil
}
