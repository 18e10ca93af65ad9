package fraudclient

import (
	"context"
	"net/http"

	"github.com/frauddash/go-fraudclient/core"
	"github.com/frauddash/go-fraudclient/ratelimit"
)

// HealthService binds the health and operational endpoints.
type HealthService struct {
	client *Client
}

func (s *HealthService) Check(ctx context.Context) (Health, error) {
	var health Health
	if err := s.client.getJSON(ctx, "/health", nil, &health); err != nil {
		return Health{}, err
	}
	return health, nil
}

func (s *HealthService) Detailed(ctx context.Context) (map[string]any, error) {
	var detailed map[string]any
	if err := s.client.getJSON(ctx, "/health/detailed", nil, &detailed); err != nil {
		return nil, err
	}
	return detailed, nil
}

func (s *HealthService) Live(ctx context.Context) (map[string]any, error) {
	var live map[string]any
	if err := s.client.getJSON(ctx, "/health/live", nil, &live); err != nil {
		return nil, err
	}
	return live, nil
}

func (s *HealthService) Ready(ctx context.Context) (map[string]any, error) {
	var ready map[string]any
	if err := s.client.getJSON(ctx, "/health/ready", nil, &ready); err != nil {
		return nil, err
	}
	return ready, nil
}

// RateLimitInfo asks the backend to describe the caller's current rate
// budget; the fresher per-response snapshot is available from
// Client.LastRateLimit.
func (s *HealthService) RateLimitInfo(ctx context.Context) (ratelimit.Snapshot, error) {
	res, err := s.client.doRaw(ctx, core.TransportRequest{Method: http.MethodGet, Path: "/rate-limit"})
	if err != nil {
		return ratelimit.Snapshot{}, err
	}
	return ratelimit.FromHeaders(res.Headers), nil
}

// Metrics fetches the Prometheus exposition text.
func (s *HealthService) Metrics(ctx context.Context) (string, error) {
	res, err := s.client.doRaw(ctx, core.TransportRequest{Method: http.MethodGet, Path: "/metrics"})
	if err != nil {
		return "", err
	}
	return string(res.Body), nil
}
