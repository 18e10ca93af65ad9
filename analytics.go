package fraudclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

const (
	modelInfoCacheKey     = "analytics::model-info"
	modelFeaturesCacheKey = "analytics::model-features"

	// Model metadata only changes on retrain, so both cached endpoints
	// hold their entries for five minutes.
	modelCacheTTL = 5 * time.Minute
)

// AnalyticsService binds the /analytics routes. ModelInfo and
// FeatureImportance are the only two operations that consult the TTL cache;
// everything else always goes to the wire.
type AnalyticsService struct {
	client *Client
}

func (s *AnalyticsService) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	if err := s.client.getJSON(ctx, "/analytics/stats", nil, &stats); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// ModelInfo returns the model metadata, served from cache within the TTL
// window to avoid redundant round-trips for data that changes only when the
// model is retrained.
func (s *AnalyticsService) ModelInfo(ctx context.Context) (ModelInfo, error) {
	if cached, ok := s.client.cache.Get(modelInfoCacheKey); ok {
		if info, ok := cached.(ModelInfo); ok {
			return info, nil
		}
	}
	var info ModelInfo
	if err := s.client.getJSON(ctx, "/analytics/model", nil, &info); err != nil {
		return ModelInfo{}, err
	}
	s.client.cache.Set(modelInfoCacheKey, info, modelCacheTTL)
	return info, nil
}

// FeatureImportance returns per-feature importance scores, cached the same
// way as ModelInfo.
func (s *AnalyticsService) FeatureImportance(ctx context.Context) (map[string]float64, error) {
	if cached, ok := s.client.cache.Get(modelFeaturesCacheKey); ok {
		if features, ok := cached.(map[string]float64); ok {
			return features, nil
		}
	}
	var features map[string]float64
	if err := s.client.getJSON(ctx, "/analytics/features", nil, &features); err != nil {
		return nil, err
	}
	s.client.cache.Set(modelFeaturesCacheKey, features, modelCacheTTL)
	return features, nil
}

// InvalidateModelCache flushes every cached model entry; callers invoke it
// after triggering a retrain.
func (s *AnalyticsService) InvalidateModelCache() {
	s.client.cache.Clear("analytics::model")
}

func (s *AnalyticsService) TimeSeries(ctx context.Context, days int, interval string) (TimeSeries, error) {
	var series TimeSeries
	params := query(
		"days", intParam(days),
		"interval", interval,
	)
	if err := s.client.getJSON(ctx, "/analytics/time-series", params, &series); err != nil {
		return TimeSeries{}, err
	}
	return series, nil
}

// PredictionFilter narrows FilterPredictions; zero values are dropped from
// the query string.
type PredictionFilter struct {
	MinAmount float64
	MaxAmount float64
	OnlyFraud bool
	MinRisk   int
	Limit     int
	Offset    int
}

func (s *AnalyticsService) FilterPredictions(ctx context.Context, filter PredictionFilter) (map[string]any, error) {
	params := query(
		"min_amount", floatParam(filter.MinAmount),
		"max_amount", floatParam(filter.MaxAmount),
		"min_risk", intParam(filter.MinRisk),
		"limit", intParam(filter.Limit),
		"offset", intParam(filter.Offset),
	)
	if filter.OnlyFraud {
		params["is_fraud"] = "true"
	}
	var result map[string]any
	if err := s.client.getJSON(ctx, "/analytics/predictions/filter", params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *AnalyticsService) Summary(ctx context.Context, days int) (map[string]any, error) {
	var summary map[string]any
	if err := s.client.getJSON(ctx, "/analytics/summary", query("days", intParam(days)), &summary); err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *AnalyticsService) SHAPValues(ctx context.Context, predictionID string) (map[string]float64, error) {
	path := fmt.Sprintf("/analytics/shap/%s", url.PathEscape(predictionID))
	var values map[string]float64
	if err := s.client.getJSON(ctx, path, nil, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *AnalyticsService) ComparePeriods(ctx context.Context, periodDays int) (map[string]any, error) {
	var comparison map[string]any
	params := query("period_days", intParam(periodDays))
	if err := s.client.getJSON(ctx, "/analytics/compare-periods", params, &comparison); err != nil {
		return nil, err
	}
	return comparison, nil
}

func (s *AnalyticsService) Heatmap(ctx context.Context, days int) (map[string]any, error) {
	var heatmap map[string]any
	if err := s.client.getJSON(ctx, "/analytics/heatmap", query("days", intParam(days)), &heatmap); err != nil {
		return nil, err
	}
	return heatmap, nil
}

func floatParam(value float64) string {
	if value <= 0 {
		return ""
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
