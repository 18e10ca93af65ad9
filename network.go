package fraudclient

import (
	"context"
	"fmt"
	"net/url"
)

// FraudNetworkService binds the /fraud-network routes feeding the graph
// view of linked fraudulent transactions.
type FraudNetworkService struct {
	client *Client
}

func (s *FraudNetworkService) Graph(ctx context.Context, minRisk int, limit int) (NetworkGraph, error) {
	var graph NetworkGraph
	params := query(
		"min_risk", intParam(minRisk),
		"limit", intParam(limit),
	)
	if err := s.client.getJSON(ctx, "/fraud-network/graph", params, &graph); err != nil {
		return NetworkGraph{}, err
	}
	return graph, nil
}

func (s *FraudNetworkService) Node(ctx context.Context, predictionID string) (map[string]any, error) {
	path := fmt.Sprintf("/fraud-network/node/%s", url.PathEscape(predictionID))
	var node map[string]any
	if err := s.client.getJSON(ctx, path, nil, &node); err != nil {
		return nil, err
	}
	return node, nil
}

func (s *FraudNetworkService) Clusters(ctx context.Context) (map[string]any, error) {
	var clusters map[string]any
	if err := s.client.getJSON(ctx, "/fraud-network/clusters", nil, &clusters); err != nil {
		return nil, err
	}
	return clusters, nil
}

func (s *FraudNetworkService) Timeline(ctx context.Context, days int) (map[string]any, error) {
	var timeline map[string]any
	if err := s.client.getJSON(ctx, "/fraud-network/timeline", query("days", intParam(days)), &timeline); err != nil {
		return nil, err
	}
	return timeline, nil
}
