package fraudclient

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/frauddash/go-fraudclient/core"
)

// GeoVelocityService binds the impossible-travel detector: it flags card
// activity whose locations could not be reached in the elapsed time.
type GeoVelocityService struct {
	client *Client
}

// GeoTransaction is one located card event.
type GeoTransaction struct {
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
	Amount    float64   `json:"amount,omitempty"`
	Merchant  string    `json:"merchant,omitempty"`
}

// VelocityCheckInput asks whether a new transaction is physically plausible
// given the user's recent history. PreviousTransactions overrides the
// server-side history when set.
type VelocityCheckInput struct {
	UserID               string           `json:"user_id"`
	NewTransaction       GeoTransaction   `json:"new_transaction"`
	PreviousTransactions []GeoTransaction `json:"previous_transactions,omitempty"`
}

// VelocityAlert describes one impossible or improbable travel leg.
type VelocityAlert struct {
	AlertID             string         `json:"alert_id"`
	UserID              string         `json:"user_id"`
	Severity            string         `json:"severity"`
	FromTransaction     map[string]any `json:"from_transaction"`
	ToTransaction       map[string]any `json:"to_transaction"`
	DistanceKM          float64        `json:"distance_km"`
	TimeDiffHours       float64        `json:"time_diff_hours"`
	RequiredSpeedKMH    float64        `json:"required_speed_kmh"`
	MaxPossibleSpeedKMH float64        `json:"max_possible_speed_kmh"`
	TravelTypeRequired  string         `json:"travel_type_required"`
	IsImpossible        bool           `json:"is_impossible"`
	ProbabilityFraud    float64        `json:"probability_fraud"`
	Explanation         string         `json:"explanation"`
	Recommendation      string         `json:"recommendation"`
}

// VelocityCheckResult is the verdict for a single transaction.
type VelocityCheckResult struct {
	IsSuspicious         bool           `json:"is_suspicious"`
	Alert                *VelocityAlert `json:"alert"`
	RiskLevel            string         `json:"risk_level"`
	CanProceed           bool           `json:"can_proceed"`
	RequiresVerification bool           `json:"requires_verification"`
	Message              string         `json:"message"`
}

// VelocityAnalysis summarizes a user's travel pattern over a window.
type VelocityAnalysis struct {
	UserID                string           `json:"user_id"`
	AnalysisPeriodDays    int              `json:"analysis_period_days"`
	TotalTransactions     int              `json:"total_transactions"`
	UniqueLocations       int              `json:"unique_locations"`
	Alerts                []VelocityAlert  `json:"alerts"`
	RiskScore             float64          `json:"risk_score"`
	TravelPattern         string           `json:"travel_pattern"`
	MostFrequentLocations []map[string]any `json:"most_frequent_locations"`
	SuspiciousPatterns    []string         `json:"suspicious_patterns"`
}

func (s *GeoVelocityService) Check(ctx context.Context, input VelocityCheckInput) (VelocityCheckResult, error) {
	var result VelocityCheckResult
	if err := s.client.postJSON(ctx, "/geo-velocity/check", input, &result); err != nil {
		return VelocityCheckResult{}, err
	}
	return result, nil
}

// Analyze reviews a user's location trail over the past days (server
// default 30 when days is non-positive).
func (s *GeoVelocityService) Analyze(ctx context.Context, userID string, days int) (VelocityAnalysis, error) {
	var analysis VelocityAnalysis
	path := "/geo-velocity/analyze/" + url.PathEscape(userID)
	if err := s.client.getJSON(ctx, path, query("days", intParam(days)), &analysis); err != nil {
		return VelocityAnalysis{}, err
	}
	return analysis, nil
}

// MapData returns the plot-ready location trail for the dashboard map.
func (s *GeoVelocityService) MapData(ctx context.Context, userID string, days int) (map[string]any, error) {
	var data map[string]any
	path := "/geo-velocity/map-data/" + url.PathEscape(userID)
	if err := s.client.getJSON(ctx, path, query("days", intParam(days)), &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *GeoVelocityService) Cities(ctx context.Context) (map[string]any, error) {
	var cities map[string]any
	if err := s.client.getJSON(ctx, "/geo-velocity/cities", nil, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

func (s *GeoVelocityService) SpeedLimits(ctx context.Context) (map[string]any, error) {
	var limits map[string]any
	if err := s.client.getJSON(ctx, "/geo-velocity/speed-limits", nil, &limits); err != nil {
		return nil, err
	}
	return limits, nil
}

func (s *GeoVelocityService) ClearHistory(ctx context.Context, userID string) (map[string]any, error) {
	var result map[string]any
	path := "/geo-velocity/history/" + url.PathEscape(userID)
	if err := s.client.deleteJSON(ctx, path, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SimulateFraud seeds the demo user with an impossible-travel pair so the
// detector has something to flag.
func (s *GeoVelocityService) SimulateFraud(ctx context.Context, userID string) (map[string]any, error) {
	var result map[string]any
	req := core.TransportRequest{
		Method: http.MethodPost,
		Path:   "/geo-velocity/simulate-fraud",
		Query:  query("user_id", userID),
	}
	if err := s.client.do(ctx, req, &result); err != nil {
		return nil, err
	}
	return result, nil
}
