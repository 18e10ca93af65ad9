package cache

import (
	"testing"
	"time"
)

func TestTTLCache_SetThenGetReturnsValue(t *testing.T) {
	c := New()
	c.Set("model-info", map[string]any{"accuracy": 0.95}, 5*time.Minute)

	value, ok := c.Get("model-info")
	if !ok {
		t.Fatalf("expected hit immediately after set")
	}
	info, ok := value.(map[string]any)
	if !ok || info["accuracy"] != 0.95 {
		t.Fatalf("expected stored value back, got %#v", value)
	}
}

func TestTTLCache_GetAfterTTLElapsedMissesAndEvicts(t *testing.T) {
	now := time.Unix(1_700_000_000, 0).UTC()
	c := New()
	c.Now = func() time.Time { return now }
	c.Set("model-info", map[string]any{"accuracy": 0.95}, 300*time.Second)

	now = now.Add(301 * time.Second)
	if _, ok := c.Get("model-info"); ok {
		t.Fatalf("expected miss after ttl elapsed")
	}
	if c.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted on read, have %d entries", c.Len())
	}
}

func TestTTLCache_EntryValidUntilExactTTLBoundary(t *testing.T) {
	now := time.Unix(1_700_000_000, 0).UTC()
	c := New()
	c.Now = func() time.Time { return now }
	c.Set("model-features", []string{"v14", "v17"}, time.Minute)

	now = now.Add(59 * time.Second)
	if _, ok := c.Get("model-features"); !ok {
		t.Fatalf("expected hit inside ttl window")
	}

	now = now.Add(time.Second)
	if _, ok := c.Get("model-features"); ok {
		t.Fatalf("expected miss once elapsed equals ttl")
	}
}

func TestTTLCache_SetOverwritesWithFreshTimestamp(t *testing.T) {
	now := time.Unix(1_700_000_000, 0).UTC()
	c := New()
	c.Now = func() time.Time { return now }
	c.Set("model-info", "stale", time.Minute)

	now = now.Add(50 * time.Second)
	c.Set("model-info", "fresh", time.Minute)

	now = now.Add(30 * time.Second)
	value, ok := c.Get("model-info")
	if !ok {
		t.Fatalf("expected overwrite to restart the ttl window")
	}
	if value != "fresh" {
		t.Fatalf("expected latest value, got %v", value)
	}
}

func TestTTLCache_SetWithoutTTLUsesDefault(t *testing.T) {
	now := time.Unix(1_700_000_000, 0).UTC()
	c := New()
	c.Now = func() time.Time { return now }
	c.Set("auth::me", "user", 0)

	now = now.Add(DefaultTTL - time.Second)
	if _, ok := c.Get("auth::me"); !ok {
		t.Fatalf("expected hit inside default ttl window")
	}
	now = now.Add(2 * time.Second)
	if _, ok := c.Get("auth::me"); ok {
		t.Fatalf("expected miss after default ttl")
	}
}

func TestTTLCache_ClearPatternRemovesOnlyMatchingKeys(t *testing.T) {
	c := New()
	c.Set("model-info", 1, time.Minute)
	c.Set("model-features", 2, time.Minute)
	c.Set("user-stats", 3, time.Minute)

	c.Clear("model")

	if _, ok := c.Get("model-info"); ok {
		t.Fatalf("expected model-info to be flushed")
	}
	if _, ok := c.Get("model-features"); ok {
		t.Fatalf("expected model-features to be flushed")
	}
	if _, ok := c.Get("user-stats"); !ok {
		t.Fatalf("expected user-stats to survive the pattern flush")
	}
}

func TestTTLCache_ClearWithoutPatternEmptiesCache(t *testing.T) {
	c := New()
	c.Set("model-info", 1, time.Minute)
	c.Set("user-stats", 2, time.Minute)

	c.Clear()

	if c.Len() != 0 {
		t.Fatalf("expected empty cache, have %d entries", c.Len())
	}
}
