package fraudclient

import "context"

// ForecastService binds the /forecast routes (risk projection).
type ForecastService struct {
	client *Client
}

func (s *ForecastService) Forecast(ctx context.Context, days int) (map[string]any, error) {
	var forecast map[string]any
	if err := s.client.getJSON(ctx, "/forecast", query("days", intParam(days)), &forecast); err != nil {
		return nil, err
	}
	return forecast, nil
}

func (s *ForecastService) Patterns(ctx context.Context) (map[string]any, error) {
	var patterns map[string]any
	if err := s.client.getJSON(ctx, "/forecast/patterns", nil, &patterns); err != nil {
		return nil, err
	}
	return patterns, nil
}

func (s *ForecastService) Alerts(ctx context.Context) (map[string]any, error) {
	var alerts map[string]any
	if err := s.client.getJSON(ctx, "/forecast/alerts", nil, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (s *ForecastService) Heatmap(ctx context.Context) (map[string]any, error) {
	var heatmap map[string]any
	if err := s.client.getJSON(ctx, "/forecast/heatmap", nil, &heatmap); err != nil {
		return nil, err
	}
	return heatmap, nil
}
