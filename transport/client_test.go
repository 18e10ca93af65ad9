package transport

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/frauddash/go-fraudclient/core"
	"github.com/frauddash/go-fraudclient/credential"
	"github.com/frauddash/go-fraudclient/devkit"
)

func TestClient_InjectsBearerWhenCredentialPresent(t *testing.T) {
	ctx := context.Background()
	store := credential.NewMemoryStore()
	if err := store.Set(ctx, "tok-123"); err != nil {
		t.Fatalf("seed credential: %v", err)
	}
	httpClient := devkit.NewFakeHTTPClient(devkit.HTTPScript{Status: 200, Body: `{}`})
	client := New(Config{BaseURL: "https://fraud.example.com/api/v1", HTTPClient: httpClient, Credentials: store})

	if _, err := client.Do(ctx, core.TransportRequest{Method: "GET", Path: "/auth/me"}); err != nil {
		t.Fatalf("do: %v", err)
	}

	sent := httpClient.Requests()
	if len(sent) != 1 {
		t.Fatalf("expected one request, got %d", len(sent))
	}
	if got := sent[0].Header.Get("Authorization"); got != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", got)
	}
}

func TestClient_SendsUnauthenticatedWithoutCredential(t *testing.T) {
	httpClient := devkit.NewFakeHTTPClient(devkit.HTTPScript{Status: 200, Body: `{}`})
	client := New(Config{BaseURL: "https://fraud.example.com/api/v1", HTTPClient: httpClient, Credentials: credential.NewMemoryStore()})

	if _, err := client.Do(context.Background(), core.TransportRequest{Method: "GET", Path: "/health"}); err != nil {
		t.Fatalf("do: %v", err)
	}
	if got := httpClient.Requests()[0].Header.Get("Authorization"); got != "" {
		t.Fatalf("expected no authorization header, got %q", got)
	}
}

func TestClient_ReadsCredentialAtSendTimeNotConstructionTime(t *testing.T) {
	ctx := context.Background()
	store := credential.NewMemoryStore()
	if err := store.Set(ctx, "old-token"); err != nil {
		t.Fatalf("seed credential: %v", err)
	}
	httpClient := devkit.NewFakeHTTPClient(devkit.HTTPScript{Status: 200, Body: `{}`})
	client := New(Config{BaseURL: "https://fraud.example.com/api/v1", HTTPClient: httpClient, Credentials: store})

	if _, err := client.Do(ctx, core.TransportRequest{Method: "GET", Path: "/auth/me"}); err != nil {
		t.Fatalf("first do: %v", err)
	}
	if err := store.Set(ctx, "rotated-token"); err != nil {
		t.Fatalf("rotate credential: %v", err)
	}
	if _, err := client.Do(ctx, core.TransportRequest{Method: "GET", Path: "/auth/me"}); err != nil {
		t.Fatalf("second do: %v", err)
	}

	sent := httpClient.Requests()
	if got := sent[0].Header.Get("Authorization"); got != "Bearer old-token" {
		t.Fatalf("expected first call to carry old token, got %q", got)
	}
	if got := sent[1].Header.Get("Authorization"); got != "Bearer rotated-token" {
		t.Fatalf("expected second call to carry rotated token, got %q", got)
	}
}

func TestClient_DefaultContentTypeAndPerCallOverride(t *testing.T) {
	httpClient := devkit.NewFakeHTTPClient(devkit.HTTPScript{Status: 200, Body: `{}`})
	client := New(Config{BaseURL: "https://fraud.example.com/api/v1", HTTPClient: httpClient})

	ctx := context.Background()
	if _, err := client.Do(ctx, core.TransportRequest{Method: "POST", Path: "/predict", Body: []byte(`{}`)}); err != nil {
		t.Fatalf("json call: %v", err)
	}
	if _, err := client.Do(ctx, core.TransportRequest{
		Method:      "POST",
		Path:        "/predict/upload-csv",
		ContentType: "multipart/form-data; boundary=xyz",
	}); err != nil {
		t.Fatalf("multipart call: %v", err)
	}

	sent := httpClient.Requests()
	if got := sent[0].Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected json default content type, got %q", got)
	}
	if got := sent[1].Header.Get("Content-Type"); !strings.HasPrefix(got, "multipart/form-data") {
		t.Fatalf("expected multipart override, got %q", got)
	}
}

func TestClient_ResolvesPathAgainstBaseAndSkipsEmptyQueryValues(t *testing.T) {
	httpClient := devkit.NewFakeHTTPClient(devkit.HTTPScript{Status: 200, Body: `{}`})
	client := New(Config{BaseURL: "https://fraud.example.com/api/v1/", HTTPClient: httpClient})

	_, err := client.Do(context.Background(), core.TransportRequest{
		Method: "GET",
		Path:   "analytics/time-series",
		Query:  map[string]string{"days": "7", "severity": "", "": "ignored"},
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	url := httpClient.Requests()[0].URL
	if url != "https://fraud.example.com/api/v1/analytics/time-series?days=7" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestClient_SetsRequestIDAndUserAgent(t *testing.T) {
	httpClient := devkit.NewFakeHTTPClient(devkit.HTTPScript{Status: 200, Body: `{}`})
	client := New(Config{
		BaseURL:    "https://fraud.example.com/api/v1",
		HTTPClient: httpClient,
		UserAgent:  "go-fraudclient/test",
		RequestID:  func() string { return "req-1" },
	})

	if _, err := client.Do(context.Background(), core.TransportRequest{Method: "GET", Path: "/health"}); err != nil {
		t.Fatalf("do: %v", err)
	}
	header := httpClient.Requests()[0].Header
	if header.Get("X-Request-ID") != "req-1" {
		t.Fatalf("expected request id header, got %q", header.Get("X-Request-ID"))
	}
	if header.Get("User-Agent") != "go-fraudclient/test" {
		t.Fatalf("expected user agent header, got %q", header.Get("User-Agent"))
	}
}

func TestClient_TransportFailureMapsToNetworkError(t *testing.T) {
	httpClient := devkit.NewFakeHTTPClient(devkit.HTTPScript{Err: errors.New("connection refused")})
	client := New(Config{BaseURL: "https://fraud.example.com/api/v1", HTTPClient: httpClient})

	_, err := client.Do(context.Background(), core.TransportRequest{Method: "GET", Path: "/health"})
	if err == nil {
		t.Fatalf("expected network error")
	}
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		t.Fatalf("expected go-errors type, got %T", err)
	}
	if richErr.TextCode != core.ClientErrorNetwork {
		t.Fatalf("expected network text code, got %q", richErr.TextCode)
	}
}

func TestClient_ErrorStatusStillReturnsResponse(t *testing.T) {
	httpClient := devkit.NewFakeHTTPClient(devkit.HTTPScript{Status: http.StatusUnprocessableEntity, Body: `{"detail":"invalid amount"}`})
	client := New(Config{BaseURL: "https://fraud.example.com/api/v1", HTTPClient: httpClient})

	res, err := client.Do(context.Background(), core.TransportRequest{Method: "POST", Path: "/predict"})
	if err != nil {
		t.Fatalf("transport must not error on http status, got %v", err)
	}
	if res.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected status passthrough, got %d", res.StatusCode)
	}
	if core.Detail(res.Body) != "invalid amount" {
		t.Fatalf("expected detail to survive, got %q", core.Detail(res.Body))
	}
}

func TestClient_CapturesRateLimitSnapshot(t *testing.T) {
	httpClient := devkit.NewFakeHTTPClient(devkit.HTTPScript{
		Status: 200,
		Body:   `{}`,
		Headers: map[string]string{
			"X-RateLimit-Limit":     "60",
			"X-RateLimit-Remaining": "42",
			"X-RateLimit-Reset":     "1700000045",
		},
	})
	client := New(Config{BaseURL: "https://fraud.example.com/api/v1", HTTPClient: httpClient})

	if snapshot := client.LastRateLimit(); snapshot.Limit != 100 || snapshot.Remaining != 100 {
		t.Fatalf("expected defaults before first call, got %+v", snapshot)
	}
	if _, err := client.Do(context.Background(), core.TransportRequest{Method: "GET", Path: "/health"}); err != nil {
		t.Fatalf("do: %v", err)
	}
	snapshot := client.LastRateLimit()
	if snapshot.Limit != 60 || snapshot.Remaining != 42 || snapshot.Reset != 1700000045 {
		t.Fatalf("unexpected snapshot %+v", snapshot)
	}
}
