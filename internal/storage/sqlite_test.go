package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteMediumRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	medium, err := NewSQLiteMedium(path)
	if err != nil {
		t.Fatalf("NewSQLiteMedium() returned error: %v", err)
	}
	ctx := context.Background()

	if _, ok, err := medium.Retrieve(ctx, "missing"); err != nil || ok {
		t.Fatalf("Retrieve(missing) = ok=%v err=%v, want absent", ok, err)
	}

	if err := medium.Persist(ctx, "k", "v1"); err != nil {
		t.Fatalf("Persist() returned error: %v", err)
	}
	if err := medium.Persist(ctx, "k", "v2"); err != nil {
		t.Fatalf("Persist() overwrite returned error: %v", err)
	}
	value, ok, err := medium.Retrieve(ctx, "k")
	if err != nil || !ok || value != "v2" {
		t.Fatalf("Retrieve(k) = %q, %v, %v, want v2", value, ok, err)
	}

	if err := medium.Clear(ctx, "k"); err != nil {
		t.Fatalf("Clear() returned error: %v", err)
	}
	if _, ok, _ := medium.Retrieve(ctx, "k"); ok {
		t.Error("key still present after Clear")
	}
	if err := medium.Close(); err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}
}

func TestSQLiteMediumSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	medium, err := NewSQLiteMedium(path)
	if err != nil {
		t.Fatalf("NewSQLiteMedium() returned error: %v", err)
	}
	if err := medium.Persist(ctx, StateKey, `{"accounts":[]}`); err != nil {
		t.Fatalf("Persist() returned error: %v", err)
	}
	if err := medium.Close(); err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}

	reopened, err := NewSQLiteMedium(path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	value, ok, err := reopened.Retrieve(ctx, StateKey)
	if err != nil || !ok || value != `{"accounts":[]}` {
		t.Fatalf("value did not survive reopen: %q, %v, %v", value, ok, err)
	}
}
