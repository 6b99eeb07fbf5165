package sweep_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"albumvault/internal/config"
	"albumvault/internal/storage"
	"albumvault/internal/sweep"
)

func testStore(t *testing.T) storage.System {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store, err := storage.New(&config.StorageConfig{BasePath: t.TempDir()}, logger)
	if err != nil {
		t.Fatalf("storage.New() failed: %v", err)
	}
	return store
}

func seed(t *testing.T, store storage.System, keys ...string) {
	t.Helper()

	for _, key := range keys {
		if err := store.Store(context.Background(), key, []byte("x")); err != nil {
			t.Fatalf("Store(%q) failed: %v", key, err)
		}
	}
}

func TestReconcile_DeletesOrphans(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	referenced := []string{
		storage.ImageKey("Imagen-kept.jpg"),
		storage.PDFKey("kept_1.pdf"),
	}
	orphaned := []string{
		storage.ImageKey("Imagen-orphan.png"),
		storage.PDFKey("orphan_2.pdf"),
	}
	seed(t, store, referenced...)
	seed(t, store, orphaned...)

	refs := make(map[string]struct{})
	for _, key := range referenced {
		refs[key] = struct{}{}
	}

	report, err := sweep.Reconcile(ctx, refs, store, logger, false)
	if err != nil {
		t.Fatalf("Reconcile() failed: %v", err)
	}

	if report.Scanned != 4 {
		t.Errorf("Scanned = %d, want 4", report.Scanned)
	}
	if report.Orphaned != 2 {
		t.Errorf("Orphaned = %d, want 2", report.Orphaned)
	}
	if report.Deleted != 2 {
		t.Errorf("Deleted = %d, want 2", report.Deleted)
	}

	for _, key := range referenced {
		exists, err := store.Validate(ctx, key)
		if err != nil {
			t.Fatalf("Validate(%q) failed: %v", key, err)
		}
		if !exists {
			t.Errorf("referenced file %q was deleted", key)
		}
	}
	for _, key := range orphaned {
		exists, err := store.Validate(ctx, key)
		if err != nil {
			t.Fatalf("Validate(%q) failed: %v", key, err)
		}
		if exists {
			t.Errorf("orphaned file %q still present", key)
		}
	}
}

func TestReconcile_DryRun(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	orphan := storage.PDFKey("orphan_3.pdf")
	seed(t, store, orphan)

	report, err := sweep.Reconcile(ctx, map[string]struct{}{}, store, logger, true)
	if err != nil {
		t.Fatalf("Reconcile() failed: %v", err)
	}

	if report.Orphaned != 1 {
		t.Errorf("Orphaned = %d, want 1", report.Orphaned)
	}
	if report.Deleted != 0 {
		t.Errorf("Deleted = %d, want 0 in dry run", report.Deleted)
	}

	exists, err := store.Validate(ctx, orphan)
	if err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if !exists {
		t.Error("dry run deleted a file")
	}
}

func TestReconcile_EmptyStore(t *testing.T) {
	store := testStore(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	report, err := sweep.Reconcile(context.Background(), map[string]struct{}{}, store, logger, false)
	if err != nil {
		t.Fatalf("Reconcile() failed: %v", err)
	}
	if report.Scanned != 0 || report.Orphaned != 0 || report.Deleted != 0 {
		t.Errorf("report = %+v, want all zero", report)
	}
}
