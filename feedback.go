package fraudclient

import "context"

// FeedbackService binds the analyst feedback and retraining routes. The
// backend nests its /api/feedback prefix inside the versioned root, so the
// effective paths carry both segments.
type FeedbackService struct {
	client *Client
}

// FeedbackInput marks a past prediction as correct or not; the retraining
// pipeline consumes these labels.
type FeedbackInput struct {
	PredictionID string `json:"prediction_id"`
	IsCorrect    bool   `json:"is_correct"`
	ActualFraud  bool   `json:"actual_fraud"`
	Comment      string `json:"comment,omitempty"`
}

func (s *FeedbackService) Submit(ctx context.Context, input FeedbackInput) (map[string]any, error) {
	var result map[string]any
	if err := s.client.postJSON(ctx, "/api/feedback/submit", input, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *FeedbackService) Stats(ctx context.Context) (map[string]any, error) {
	var stats map[string]any
	if err := s.client.getJSON(ctx, "/api/feedback/stats", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Retrain kicks off a training job and invalidates the cached model
// entries, since their content is stale the moment a retrain lands.
func (s *FeedbackService) Retrain(ctx context.Context) (map[string]any, error) {
	var job map[string]any
	if err := s.client.postJSON(ctx, "/api/feedback/retrain", nil, &job); err != nil {
		return nil, err
	}
	s.client.cache.Clear("analytics::model")
	return job, nil
}

func (s *FeedbackService) TrainingHistory(ctx context.Context) ([]map[string]any, error) {
	var history []map[string]any
	if err := s.client.getJSON(ctx, "/api/feedback/training-history", nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}
