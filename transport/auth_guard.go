package transport

import (
	"context"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/frauddash/go-fraudclient/core"
)

// identityCachePattern matches every cached identity record; the façade
// stores the current user under an "auth"-prefixed key.
const identityCachePattern = "auth"

// AuthGuard is the response interceptor that reacts to authorization
// failure. On a 401 it clears the credential slot, flushes the cached
// identity record, and broadcasts the session-expired signal, strictly in
// that order. It never retries the failing request and never swallows the
// error: the caller still observes the original failure after the global
// state has been reset.
type AuthGuard struct {
	Credentials core.CredentialStore
	Cache       core.Cache
	Broadcaster core.SessionBroadcaster
	Logger      core.Logger
}

func NewAuthGuard(
	credentials core.CredentialStore,
	cache core.Cache,
	broadcaster core.SessionBroadcaster,
	logger core.Logger,
) *AuthGuard {
	return &AuthGuard{
		Credentials: credentials,
		Cache:       cache,
		Broadcaster: broadcaster,
		Logger:      glog.Ensure(logger),
	}
}

// HandleUnauthorized performs the forced de-authentication. It is the only
// code path that can log the session out globally.
func (g *AuthGuard) HandleUnauthorized(ctx context.Context) {
	if g == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if g.Credentials != nil {
		if err := g.Credentials.Clear(ctx); err != nil && g.Logger != nil {
			g.Logger.Warn("credential clear failed during forced logout", "error", err.Error())
		}
	}
	if g.Cache != nil {
		g.Cache.Clear(identityCachePattern)
	}
	if g.Broadcaster != nil {
		g.Broadcaster.Broadcast()
	}
	if g.Logger != nil {
		g.Logger.Info("session expired, credential cleared")
	}
}
