package transport

import (
	"context"
	"testing"
	"time"

	"github.com/frauddash/go-fraudclient/cache"
	"github.com/frauddash/go-fraudclient/credential"
	"github.com/frauddash/go-fraudclient/session"
)

func TestAuthGuard_ClearsCredentialFlushesIdentityAndBroadcasts(t *testing.T) {
	ctx := context.Background()
	store := credential.NewMemoryStore()
	if err := store.Set(ctx, "doomed-token"); err != nil {
		t.Fatalf("seed credential: %v", err)
	}
	ttlCache := cache.New()
	ttlCache.Set("auth::me", map[string]any{"username": "john"}, 5*time.Minute)
	ttlCache.Set("analytics::model-info", "keep", 5*time.Minute)
	broadcaster := session.NewExpiryBroadcaster()
	_, expired := broadcaster.Subscribe()

	guard := NewAuthGuard(store, ttlCache, broadcaster, nil)
	guard.HandleUnauthorized(ctx)

	if _, present, _ := store.Get(ctx); present {
		t.Fatalf("expected credential to be cleared")
	}
	if _, ok := ttlCache.Get("auth::me"); ok {
		t.Fatalf("expected cached identity record to be flushed")
	}
	if _, ok := ttlCache.Get("analytics::model-info"); !ok {
		t.Fatalf("expected non-identity cache entries to survive")
	}
	select {
	case <-expired:
	default:
		t.Fatalf("expected session-expired signal to be broadcast")
	}
}

func TestAuthGuard_BroadcastsExactlyOncePerInvocation(t *testing.T) {
	broadcaster := session.NewExpiryBroadcaster()
	_, expired := broadcaster.Subscribe()
	guard := NewAuthGuard(credential.NewMemoryStore(), cache.New(), broadcaster, nil)

	guard.HandleUnauthorized(context.Background())

	<-expired
	select {
	case <-expired:
		t.Fatalf("expected a single signal per forced logout")
	default:
	}
}

func TestAuthGuard_ToleratesMissingCollaborators(t *testing.T) {
	guard := NewAuthGuard(nil, nil, nil, nil)
	guard.HandleUnauthorized(context.Background())

	var nilGuard *AuthGuard
	nilGuard.HandleUnauthorized(context.Background())
}
