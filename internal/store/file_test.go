package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_RoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	ctx := context.Background()

	if _, found, err := fs.Load(ctx, KeyBookings); err != nil || found {
		t.Fatalf("expected empty store, found=%v err=%v", found, err)
	}

	if err := fs.Save(ctx, KeyBookings, []byte(`[{"id":"BK-1"}]`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	raw, found, err := fs.Load(ctx, KeyBookings)
	if err != nil || !found {
		t.Fatalf("load after save: found=%v err=%v", found, err)
	}
	if string(raw) != `[{"id":"BK-1"}]` {
		t.Fatalf("unexpected value %q", raw)
	}

	// Save overwrites the whole value.
	if err := fs.Save(ctx, KeyBookings, []byte(`[]`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	raw, _, _ = fs.Load(ctx, KeyBookings)
	if string(raw) != `[]` {
		t.Fatalf("expected overwritten value, got %q", raw)
	}

	if err := fs.Delete(ctx, KeyBookings); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, found, _ := fs.Load(ctx, KeyBookings); found {
		t.Fatal("value still present after delete")
	}

	// Deleting an absent key is not an error.
	if err := fs.Delete(ctx, KeyBookings); err != nil {
		t.Fatalf("delete of absent key failed: %v", err)
	}
}

func TestFileStore_KeyToFilename(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if err := fs.Save(context.Background(), "triptix:session", []byte(`{}`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "triptix_session.json")); err != nil {
		t.Fatalf("expected colon replaced in filename: %v", err)
	}
}

func TestLoadJSON_CorruptValueFallsBack(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	ctx := context.Background()

	if err := fs.Save(ctx, KeyUser, []byte(`{"name": truncated`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var out map[string]any
	found, err := LoadJSON(ctx, fs, KeyUser, &out)
	if err != nil {
		t.Fatalf("corrupt value should not error: %v", err)
	}
	if found {
		t.Fatal("corrupt value reported as found")
	}
}

func TestSaveJSON_RoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	ctx := context.Background()

	in := map[string]int{"count": 3}
	if err := SaveJSON(ctx, fs, KeyAttempts, in); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var out map[string]int
	found, err := LoadJSON(ctx, fs, KeyAttempts, &out)
	if err != nil || !found {
		t.Fatalf("load failed: found=%v err=%v", found, err)
	}
	if out["count"] != 3 {
		t.Fatalf("unexpected value %v", out)
	}
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	value := []byte(`{"a":1}`)
	if err := ms.Save(ctx, KeyUser, value); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	value[0] = 'x'

	raw, found, err := ms.Load(ctx, KeyUser)
	if err != nil || !found {
		t.Fatalf("load failed: found=%v err=%v", found, err)
	}
	if string(raw) != `{"a":1}` {
		t.Fatalf("stored value aliased caller slice: %q", raw)
	}
}
