// Package credential owns the single bearer-token slot: created on login or
// registration, read on every outgoing request, destroyed on logout or the
// first 401.
package credential

import (
	"context"
	"strings"
	"sync"

	"github.com/frauddash/go-fraudclient/core"
)

// DefaultSlot names the one durable storage key the runtime uses.
const DefaultSlot = "fraud_dashboard::access_token"

// MemoryStore keeps the credential in process memory only. It is the
// default store and the one tests substitute.
type MemoryStore struct {
	mu      sync.Mutex
	token   string
	present bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(context.Context) (string, bool, error) {
	if s == nil {
		return "", false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.present, nil
}

func (s *MemoryStore) Set(_ context.Context, token string) error {
	if s == nil {
		return core.InternalError("credential: memory store is nil", nil)
	}
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return core.BadInputError("credential: token is required", nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = trimmed
	s.present = true
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.present = false
	return nil
}

var _ core.CredentialStore = (*MemoryStore)(nil)
