package fraudclient

import (
	"context"
	"fmt"
	"net/url"
)

// ExplainerService binds the /explain routes producing human-readable
// fraud explanations.
type ExplainerService struct {
	client *Client
}

func (s *ExplainerService) Explain(ctx context.Context, tx Transaction) (map[string]any, error) {
	var explanation map[string]any
	if err := s.client.postJSON(ctx, "/explain", tx, &explanation); err != nil {
		return nil, err
	}
	return explanation, nil
}

// Quick returns the cached-on-server short explanation for a past
// prediction.
func (s *ExplainerService) Quick(ctx context.Context, predictionID string) (map[string]any, error) {
	path := fmt.Sprintf("/explain/quick/%s", url.PathEscape(predictionID))
	var explanation map[string]any
	if err := s.client.getJSON(ctx, path, nil, &explanation); err != nil {
		return nil, err
	}
	return explanation, nil
}

func (s *ExplainerService) Features(ctx context.Context) (map[string]any, error) {
	var features map[string]any
	if err := s.client.getJSON(ctx, "/explain/features", nil, &features); err != nil {
		return nil, err
	}
	return features, nil
}
