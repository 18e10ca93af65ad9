package credential

import (
	"context"
	"testing"
)

func TestMemoryStore_LifecycleSingleSlot(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, present, err := store.Get(ctx); err != nil || present {
		t.Fatalf("expected empty slot initially, present=%v err=%v", present, err)
	}

	if err := store.Set(ctx, "token-one"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "token-two"); err != nil {
		t.Fatalf("rotate: %v", err)
	}
	token, present, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !present || token != "token-two" {
		t.Fatalf("expected rotated token, got %q present=%v", token, present)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, present, _ := store.Get(ctx); present {
		t.Fatalf("expected slot to be empty after clear")
	}
}

func TestMemoryStore_RejectsBlankToken(t *testing.T) {
	if err := NewMemoryStore().Set(context.Background(), "   "); err == nil {
		t.Fatalf("expected blank token to be rejected")
	}
}

func TestSQLiteStore_PersistsAcrossHandles(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir() + "/slots.db"

	store, err := OpenSQLiteStore(ctx, path, "")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.Set(ctx, "durable-token"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenSQLiteStore(ctx, path, "")
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	token, present, err := reopened.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !present || token != "durable-token" {
		t.Fatalf("expected persisted token, got %q present=%v", token, present)
	}

	if err := reopened.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, present, _ := reopened.Get(ctx); present {
		t.Fatalf("expected slot empty after clear")
	}
}

func TestSQLiteStore_UpsertKeepsSingleRowPerSlot(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLiteStore(ctx, t.TempDir()+"/slots.db", "custom::slot")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	for _, token := range []string{"first", "second", "third"} {
		if err := store.Set(ctx, token); err != nil {
			t.Fatalf("set %q: %v", token, err)
		}
	}
	token, present, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !present || token != "third" {
		t.Fatalf("expected latest token, got %q present=%v", token, present)
	}
}
