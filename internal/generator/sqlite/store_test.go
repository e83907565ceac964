package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fablegen/fable/internal/generator"
)

func openTestStore(t *testing.T, seed int64) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "fixtures.db"), seed)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// TestStoreRoundTrip ensures generated records land in the fixture table.
func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, 1234)

	gen, err := generator.New(generator.Config{Seed: 1234, Preset: generator.PresetDemo, Count: 5})
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	if err := gen.Run(ctx, store); err != nil {
		t.Fatalf("run generator: %v", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count records: %v", err)
	}
	if count != 5 {
		t.Fatalf("stored %d records, want 5", count)
	}
}

// TestStoreSeparatesSeeds ensures counts are scoped to the session seed.
func TestStoreSeparatesSeeds(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "fixtures.db")

	first, err := Open(path, 1)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	rec := generator.Record{FirstName: "A", LastName: "B"}
	if err := first.Write(ctx, rec); err != nil {
		t.Fatalf("write record: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	second, err := Open(path, 2)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer second.Close()
	count, err := second.Count(ctx)
	if err != nil {
		t.Fatalf("count records: %v", err)
	}
	if count != 0 {
		t.Fatalf("seed 2 sees %d records, want 0", count)
	}
}
