package fraudclient

import (
	"context"
	"fmt"
	"net/url"
)

// APIKeyService binds the /api-keys routes for programmatic access keys.
type APIKeyService struct {
	client *Client
}

func (s *APIKeyService) Create(ctx context.Context, name string, expiresInDays int) (APIKey, error) {
	var key APIKey
	body := map[string]any{"name": name}
	if expiresInDays > 0 {
		body["expires_in_days"] = expiresInDays
	}
	if err := s.client.postJSON(ctx, "/api-keys", body, &key); err != nil {
		return APIKey{}, err
	}
	return key, nil
}

func (s *APIKeyService) List(ctx context.Context) ([]APIKey, error) {
	var keys []APIKey
	if err := s.client.getJSON(ctx, "/api-keys", nil, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *APIKeyService) Delete(ctx context.Context, keyID string) error {
	path := fmt.Sprintf("/api-keys/%s", url.PathEscape(keyID))
	return s.client.deleteJSON(ctx, path, nil)
}

// Rotate revokes the key material and returns the replacement secret once.
func (s *APIKeyService) Rotate(ctx context.Context, keyID string) (APIKey, error) {
	var key APIKey
	path := fmt.Sprintf("/api-keys/%s/rotate", url.PathEscape(keyID))
	if err := s.client.postJSON(ctx, path, nil, &key); err != nil {
		return APIKey{}, err
	}
	return key, nil
}

func (s *APIKeyService) Usage(ctx context.Context, keyID string) (map[string]any, error) {
	var usage map[string]any
	path := fmt.Sprintf("/api-keys/%s/usage", url.PathEscape(keyID))
	if err := s.client.getJSON(ctx, path, nil, &usage); err != nil {
		return nil, err
	}
	return usage, nil
}
