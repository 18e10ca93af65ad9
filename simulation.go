package fraudclient

import (
	"context"
	"net/url"
	"time"
)

// SimulationService drives the fraud simulation lab: scripted fraud
// scenarios an analyst works through and gets scored on.
type SimulationService struct {
	client *Client
}

// Scenario describes one predefined fraud pattern exercise.
type Scenario struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Category             string   `json:"category"`
	Difficulty           string   `json:"difficulty"`
	Description          string   `json:"description"`
	LearningObjectives   []string `json:"learning_objectives"`
	TypicalIndicators    []string `json:"typical_indicators"`
	RealWorldExamples    []string `json:"real_world_examples"`
	DetectionTips        []string `json:"detection_tips"`
	EstimatedTimeMinutes int      `json:"estimated_time_minutes"`
}

// SimulationConfig parameterizes a run; zero values fall back to the
// server-side defaults.
type SimulationConfig struct {
	ScenarioID        string  `json:"scenario_id"`
	NumTransactions   int     `json:"num_transactions,omitempty"`
	FraudRate         float64 `json:"fraud_rate,omitempty"`
	TimeSpanHours     int     `json:"time_span_hours,omitempty"`
	IncludeEdgeCases  bool    `json:"include_edge_cases"`
	RandomizePatterns bool    `json:"randomize_patterns"`
}

// SimulationRun is the server's view of an active or finished run.
type SimulationRun struct {
	SimulationID string           `json:"simulation_id"`
	Scenario     Scenario         `json:"scenario"`
	Status       string           `json:"status"`
	Transactions []map[string]any `json:"transactions"`
	StartTime    time.Time        `json:"start_time"`
	EndTime      *time.Time       `json:"end_time"`
	Stats        map[string]any   `json:"stats"`
	AnalystScore *float64         `json:"analyst_score"`
	Feedback     string           `json:"feedback"`
}

// AnalystDecision labels one simulated transaction as fraud or legitimate.
type AnalystDecision struct {
	TransactionID string  `json:"transaction_id"`
	Decision      string  `json:"decision"`
	Confidence    float64 `json:"confidence"`
	Reasoning     string  `json:"reasoning,omitempty"`
}

// AnalystSubmission carries the full set of decisions for a run.
type AnalystSubmission struct {
	SimulationID     string            `json:"simulation_id"`
	Decisions        []AnalystDecision `json:"decisions"`
	TimeTakenSeconds int               `json:"time_taken_seconds"`
}

// AnalystEvaluation is the scored outcome of a submission.
type AnalystEvaluation struct {
	SimulationID      string         `json:"simulation_id"`
	TotalTransactions int            `json:"total_transactions"`
	CorrectDecisions  int            `json:"correct_decisions"`
	Accuracy          float64        `json:"accuracy"`
	Precision         float64        `json:"precision"`
	Recall            float64        `json:"recall"`
	F1Score           float64        `json:"f1_score"`
	FalsePositives    int            `json:"false_positives"`
	FalseNegatives    int            `json:"false_negatives"`
	Details           map[string]any `json:"details,omitempty"`
}

// CustomScenarioInput builds a one-off scenario from user-chosen fraud
// patterns.
type CustomScenarioInput struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	FraudPatterns   []string `json:"fraud_patterns"`
	NumTransactions int      `json:"num_transactions,omitempty"`
	FraudRate       float64  `json:"fraud_rate,omitempty"`
}

// Scenarios lists the available scenarios, optionally filtered by category
// and difficulty.
func (s *SimulationService) Scenarios(ctx context.Context, category, difficulty string) ([]Scenario, error) {
	var scenarios []Scenario
	params := query("category", category, "difficulty", difficulty)
	if err := s.client.getJSON(ctx, "/simulation/scenarios", params, &scenarios); err != nil {
		return nil, err
	}
	return scenarios, nil
}

func (s *SimulationService) Scenario(ctx context.Context, scenarioID string) (Scenario, error) {
	var scenario Scenario
	path := "/simulation/scenarios/" + url.PathEscape(scenarioID)
	if err := s.client.getJSON(ctx, path, nil, &scenario); err != nil {
		return Scenario{}, err
	}
	return scenario, nil
}

func (s *SimulationService) Start(ctx context.Context, cfg SimulationConfig) (SimulationRun, error) {
	var run SimulationRun
	if err := s.client.postJSON(ctx, "/simulation/start", cfg, &run); err != nil {
		return SimulationRun{}, err
	}
	return run, nil
}

func (s *SimulationService) Active(ctx context.Context, simulationID string) (SimulationRun, error) {
	var run SimulationRun
	path := "/simulation/active/" + url.PathEscape(simulationID)
	if err := s.client.getJSON(ctx, path, nil, &run); err != nil {
		return SimulationRun{}, err
	}
	return run, nil
}

func (s *SimulationService) Submit(ctx context.Context, submission AnalystSubmission) (AnalystEvaluation, error) {
	var evaluation AnalystEvaluation
	if err := s.client.postJSON(ctx, "/simulation/submit", submission, &evaluation); err != nil {
		return AnalystEvaluation{}, err
	}
	return evaluation, nil
}

// Leaderboard returns the top analyst scores, optionally scoped to one
// scenario. A non-positive limit leaves the server default in place.
func (s *SimulationService) Leaderboard(ctx context.Context, scenarioID string, limit int) (map[string]any, error) {
	params := query("scenario_id", scenarioID, "limit", intParam(limit))
	var board map[string]any
	if err := s.client.getJSON(ctx, "/simulation/leaderboard", params, &board); err != nil {
		return nil, err
	}
	return board, nil
}

func (s *SimulationService) CustomScenario(ctx context.Context, input CustomScenarioInput) (SimulationRun, error) {
	var run SimulationRun
	if err := s.client.postJSON(ctx, "/simulation/custom-scenario", input, &run); err != nil {
		return SimulationRun{}, err
	}
	return run, nil
}

func (s *SimulationService) Hints(ctx context.Context, simulationID, transactionID string) (map[string]any, error) {
	var hint map[string]any
	path := "/simulation/hints/" + url.PathEscape(simulationID) + "/" + url.PathEscape(transactionID)
	if err := s.client.getJSON(ctx, path, nil, &hint); err != nil {
		return nil, err
	}
	return hint, nil
}

func (s *SimulationService) Cancel(ctx context.Context, simulationID string) (map[string]any, error) {
	var result map[string]any
	path := "/simulation/cancel/" + url.PathEscape(simulationID)
	if err := s.client.deleteJSON(ctx, path, &result); err != nil {
		return nil, err
	}
	return result, nil
}
