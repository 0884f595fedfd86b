package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type payload struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func testProviderRoundTrip(t *testing.T, p Provider) {
	t.Helper()
	ctx := context.Background()

	var missing []payload
	if err := p.Load(ctx, CollectionProducts, &missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("load of absent collection: got %v, want ErrNotFound", err)
	}

	in := []payload{{ID: "p1", Count: 3}, {ID: "p2", Count: 0}}
	if err := p.Save(ctx, CollectionProducts, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var out []payload
	if err := p.Load(ctx, CollectionProducts, &out); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(out) != 2 || out[0].ID != "p1" || out[0].Count != 3 || out[1].ID != "p2" {
		t.Fatalf("Load returned %+v, want %+v", out, in)
	}

	if err := p.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if err := p.Load(ctx, CollectionProducts, &out); !errors.Is(err, ErrNotFound) {
		t.Fatalf("load after reset: got %v, want ErrNotFound", err)
	}
}

func TestMemoryProviderRoundTrip(t *testing.T) {
	testProviderRoundTrip(t, NewMemoryProvider())
}

func TestMemoryProviderFailSaves(t *testing.T) {
	p := NewMemoryProvider()
	p.FailSaves = true
	if err := p.Save(context.Background(), CollectionOrders, []payload{{ID: "o1"}}); err == nil {
		t.Fatal("expected Save to fail with FailSaves set")
	}
}

func TestFileProviderRoundTrip(t *testing.T) {
	p, err := NewFileProvider(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileProvider failed: %v", err)
	}
	testProviderRoundTrip(t, p)
}

func TestFileProviderCorruptFileIsNotFound(t *testing.T) {
	dir := t.TempDir()
	p, err := NewFileProvider(dir)
	if err != nil {
		t.Fatalf("NewFileProvider failed: %v", err)
	}

	path := filepath.Join(dir, string(CollectionChats)+".rec")
	if err := os.WriteFile(path, []byte("!!not a record!!"), 0o644); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	var out []payload
	if err := p.Load(context.Background(), CollectionChats, &out); !errors.Is(err, ErrNotFound) {
		t.Fatalf("load of corrupt file: got %v, want ErrNotFound", err)
	}
}

func TestFileProviderSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileProvider(dir)
	if err != nil {
		t.Fatalf("NewFileProvider failed: %v", err)
	}
	if err := first.Save(ctx, CollectionLogs, []payload{{ID: "a1", Count: 1}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	second, err := NewFileProvider(dir)
	if err != nil {
		t.Fatalf("NewFileProvider reopen failed: %v", err)
	}
	var out []payload
	if err := second.Load(ctx, CollectionLogs, &out); err != nil {
		t.Fatalf("Load after reopen failed: %v", err)
	}
	if len(out) != 1 || out[0].ID != "a1" {
		t.Fatalf("Load after reopen returned %+v", out)
	}
}
