package storage

import (
	"context"
	"testing"

	"github.com/hammamikhairi/forkify/internal/domain"
	"github.com/hammamikhairi/forkify/internal/logger"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	// Empty.
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty store, got %+v", got)
	}

	// Save.
	in := []domain.Like{{ID: "47746", Title: "Best Pizza Dough Ever"}}
	if err := store.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	in[0].Title = "mutated"

	// Load.
	got, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Best Pizza Dough Ever" {
		t.Fatalf("unexpected slot: %+v", got)
	}

	// Replace.
	if err := store.Save(ctx, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, _ = store.Load(ctx)
	if len(got) != 0 {
		t.Fatalf("expected slot cleared, got %+v", got)
	}
}
