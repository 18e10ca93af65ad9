package core

import (
	"context"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

// TransportRequest is the wire-agnostic shape a domain operation hands to the
// transport. Path is relative to the configured base endpoint root. Query
// values are encoded as-is; callers filter empty values before building the
// map. ContentType overrides the transport default for this call only.
type TransportRequest struct {
	Method      string
	Path        string
	Headers     map[string]string
	Query       map[string]string
	Body        []byte
	ContentType string
	Binary      bool
	Metadata    map[string]any
}

type TransportResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Metadata   map[string]any
}

type TransportAdapter interface {
	Kind() string
	Do(ctx context.Context, req TransportRequest) (TransportResponse, error)
}

// CredentialStore owns the single bearer-token slot. At most one credential
// exists; Set overwrites, Clear removes. Get is called at send time on every
// outgoing request, never cached by the transport.
type CredentialStore interface {
	Get(ctx context.Context) (string, bool, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Cache is the read-through TTL cache consulted by the slow-changing
// endpoints. Clear with a pattern removes every key containing the pattern
// as a substring; Clear with no arguments empties the cache.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	Clear(patterns ...string)
}

// SessionBroadcaster fans out the payload-less session-expired signal. The
// broadcast never blocks on listeners.
type SessionBroadcaster interface {
	Broadcast()
}

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger
