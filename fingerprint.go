package fraudclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/frauddash/go-fraudclient/core"
)

// DeviceFingerprintService binds the device fingerprint analyzer, which
// scores browser-collected signals for automation, emulation, and cloning.
type DeviceFingerprintService struct {
	client *Client
}

// DeviceFingerprint mirrors the signal set a browser collector gathers.
type DeviceFingerprint struct {
	UserAgent           string   `json:"user_agent"`
	ScreenResolution    string   `json:"screen_resolution"`
	ColorDepth          int      `json:"color_depth"`
	TimezoneOffset      int      `json:"timezone_offset"`
	Language            string   `json:"language"`
	Platform            string   `json:"platform"`
	HardwareConcurrency int      `json:"hardware_concurrency,omitempty"`
	DeviceMemory        float64  `json:"device_memory,omitempty"`
	CanvasHash          string   `json:"canvas_hash,omitempty"`
	WebGLHash           string   `json:"webgl_hash,omitempty"`
	AudioHash           string   `json:"audio_hash,omitempty"`
	FontsHash           string   `json:"fonts_hash,omitempty"`
	Plugins             []string `json:"plugins,omitempty"`
	TouchSupport        bool     `json:"touch_support"`
	DoNotTrack          *bool    `json:"do_not_track,omitempty"`
	CookiesEnabled      bool     `json:"cookies_enabled"`
	LocalStorage        bool     `json:"local_storage"`
	SessionStorage      bool     `json:"session_storage"`
	IndexedDB           bool     `json:"indexed_db"`
	AdBlocker           bool     `json:"ad_blocker"`
	IPAddress           string   `json:"ip_address,omitempty"`
}

// FingerprintAnalysisInput ties a fingerprint to a user and optionally the
// transaction that produced it.
type FingerprintAnalysisInput struct {
	UserID        string            `json:"user_id"`
	Fingerprint   DeviceFingerprint `json:"fingerprint"`
	TransactionID string            `json:"transaction_id,omitempty"`
}

func (s *DeviceFingerprintService) Analyze(ctx context.Context, input FingerprintAnalysisInput) (map[string]any, error) {
	var analysis map[string]any
	if err := s.client.postJSON(ctx, "/device-fingerprint/analyze", input, &analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// History lists the devices seen for a user in the past days (server
// default 30 when days is non-positive).
func (s *DeviceFingerprintService) History(ctx context.Context, userID string, days int) (map[string]any, error) {
	var history map[string]any
	path := "/device-fingerprint/history/" + url.PathEscape(userID)
	if err := s.client.getJSON(ctx, path, query("days", intParam(days)), &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *DeviceFingerprintService) KnownThreats(ctx context.Context) (map[string]any, error) {
	var threats map[string]any
	if err := s.client.getJSON(ctx, "/device-fingerprint/known-threats", nil, &threats); err != nil {
		return nil, err
	}
	return threats, nil
}

// SimulateThreat returns a synthetic fingerprint exhibiting the named
// threat, for demos. Known types include automation, emulator, vpn,
// tampering, and cloning.
func (s *DeviceFingerprintService) SimulateThreat(ctx context.Context, threatType string) (map[string]any, error) {
	var result map[string]any
	req := core.TransportRequest{
		Method: http.MethodPost,
		Path:   "/device-fingerprint/simulate-threat",
		Query:  query("threat_type", threatType),
	}
	if err := s.client.do(ctx, req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *DeviceFingerprintService) Stats(ctx context.Context) (map[string]any, error) {
	var stats map[string]any
	if err := s.client.getJSON(ctx, "/device-fingerprint/stats", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
