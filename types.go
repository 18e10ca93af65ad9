package fraudclient

import "time"

// Transaction is one card transaction in the anonymized PCA feature space
// the model was trained on: elapsed time, V1-V28, and the amount.
type Transaction struct {
	Time   float64 `json:"time"`
	V1     float64 `json:"v1"`
	V2     float64 `json:"v2"`
	V3     float64 `json:"v3"`
	V4     float64 `json:"v4"`
	V5     float64 `json:"v5"`
	V6     float64 `json:"v6"`
	V7     float64 `json:"v7"`
	V8     float64 `json:"v8"`
	V9     float64 `json:"v9"`
	V10    float64 `json:"v10"`
	V11    float64 `json:"v11"`
	V12    float64 `json:"v12"`
	V13    float64 `json:"v13"`
	V14    float64 `json:"v14"`
	V15    float64 `json:"v15"`
	V16    float64 `json:"v16"`
	V17    float64 `json:"v17"`
	V18    float64 `json:"v18"`
	V19    float64 `json:"v19"`
	V20    float64 `json:"v20"`
	V21    float64 `json:"v21"`
	V22    float64 `json:"v22"`
	V23    float64 `json:"v23"`
	V24    float64 `json:"v24"`
	V25    float64 `json:"v25"`
	V26    float64 `json:"v26"`
	V27    float64 `json:"v27"`
	V28    float64 `json:"v28"`
	Amount float64 `json:"amount"`
}

type Prediction struct {
	IsFraud          bool               `json:"is_fraud"`
	FraudProbability float64            `json:"fraud_probability"`
	Confidence       string             `json:"confidence"`
	RiskScore        int                `json:"risk_score"`
	PredictionTimeMS float64            `json:"prediction_time_ms"`
	SHAPValues       map[string]float64 `json:"shap_values,omitempty"`
}

type BatchResult struct {
	Index            int     `json:"index"`
	IsFraud          bool    `json:"is_fraud"`
	FraudProbability float64 `json:"fraud_probability"`
	RiskScore        int     `json:"risk_score"`
}

type BatchPrediction struct {
	TotalTransactions int           `json:"total_transactions"`
	FraudCount        int           `json:"fraud_count"`
	LegitimateCount   int           `json:"legitimate_count"`
	FraudRate         float64       `json:"fraud_rate"`
	Results           []BatchResult `json:"results"`
	ProcessingTimeMS  float64       `json:"processing_time_ms"`
	BatchID           string        `json:"batch_id,omitempty"`
}

// BatchUpload is the outcome of a CSV upload: the annotated CSV the backend
// streams back plus the batch metadata it publishes through headers.
type BatchUpload struct {
	BatchID         string
	TotalRows       int
	FraudCount      int
	LegitimateCount int
	CSV             []byte
}

type ModelInfo struct {
	ModelName       string     `json:"model_name"`
	ModelVersion    string     `json:"model_version"`
	FeaturesCount   int        `json:"features_count"`
	TrainingSamples int        `json:"training_samples"`
	FraudSamples    int        `json:"fraud_samples"`
	Accuracy        float64    `json:"accuracy"`
	Precision       float64    `json:"precision"`
	Recall          float64    `json:"recall"`
	F1Score         float64    `json:"f1_score"`
	ROCAUC          float64    `json:"roc_auc"`
	LastTrained     *time.Time `json:"last_trained,omitempty"`
}

type Stats struct {
	TotalPredictions      int     `json:"total_predictions"`
	FraudDetected         int     `json:"fraud_detected"`
	LegitimateDetected    int     `json:"legitimate_detected"`
	FraudRate             float64 `json:"fraud_rate"`
	AverageResponseTimeMS float64 `json:"average_response_time_ms"`
	UptimeSeconds         float64 `json:"uptime_seconds"`
}

type Health struct {
	Status      string    `json:"status"`
	ModelLoaded bool      `json:"model_loaded"`
	Version     string    `json:"version"`
	Timestamp   time.Time `json:"timestamp"`
}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name,omitempty"`
	IsActive     bool      `json:"is_active"`
	Role         string    `json:"role"`
	Is2FAEnabled bool      `json:"is_2fa_enabled"`
	CreatedAt    time.Time `json:"created_at"`
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TOTPCode string `json:"totp_code,omitempty"`
}

type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

type TwoFactorSetup struct {
	Secret    string `json:"secret"`
	QRCodeURL string `json:"qr_code_url"`
	Message   string `json:"message"`
}

type PasswordStrength struct {
	IsValid bool     `json:"is_valid"`
	Score   int      `json:"score"`
	Issues  []string `json:"issues"`
}

type Session struct {
	SessionID string    `json:"session_id"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
	LastSeen  time.Time `json:"last_seen"`
	Current   bool      `json:"current"`
}

type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	OwnerID     string    `json:"owner_id"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type TeamInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Alert struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ThresholdHigh float64   `json:"threshold_high"`
	Enabled       bool      `json:"enabled"`
	CreatedAt     time.Time `json:"created_at"`
}

type AlertInput struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	ThresholdHigh float64 `json:"threshold_high"`
	Enabled       bool    `json:"enabled"`
}

type Webhook struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Events    []string  `json:"events"`
	Secret    string    `json:"secret,omitempty"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

type WebhookInput struct {
	URL     string   `json:"url"`
	Events  []string `json:"events"`
	Secret  string   `json:"secret,omitempty"`
	Enabled bool     `json:"enabled"`
}

type AuditLog struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type,omitempty"`
	ResourceID   string    `json:"resource_id,omitempty"`
	IPAddress    string    `json:"ip_address,omitempty"`
	UserAgent    string    `json:"user_agent,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type APIKey struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Prefix    string    `json:"prefix"`
	Key       string    `json:"key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

type TimeSeriesPoint struct {
	Timestamp        time.Time `json:"timestamp"`
	TotalPredictions int       `json:"total_predictions"`
	FraudCount       int       `json:"fraud_count"`
	FraudRate        float64   `json:"fraud_rate"`
	AverageAmount    float64   `json:"average_amount"`
}

type TimeSeries struct {
	Interval   string            `json:"interval"`
	DataPoints []TimeSeriesPoint `json:"data_points"`
}

// NetworkGraph is the node/edge shape the fraud-network view renders. The
// backend's payload is dashboard-driven and loosely typed, so nodes and
// edges stay generic maps.
type NetworkGraph struct {
	Nodes []map[string]any `json:"nodes"`
	Edges []map[string]any `json:"edges"`
	Stats map[string]any   `json:"stats,omitempty"`
}
