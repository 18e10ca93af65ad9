package core

import (
	"fmt"
	"net/http"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestDetail_ExtractsBackendMessage(t *testing.T) {
	if got := Detail([]byte(`{"detail":"Token has expired"}`)); got != "Token has expired" {
		t.Fatalf("expected detail extracted, got %q", got)
	}
	if got := Detail([]byte(`{"error":"other shape"}`)); got != "" {
		t.Fatalf("expected empty detail for other payloads, got %q", got)
	}
	if got := Detail([]byte("not json")); got != "" {
		t.Fatalf("expected empty detail for non-json bodies, got %q", got)
	}
	if got := Detail(nil); got != "" {
		t.Fatalf("expected empty detail for empty bodies, got %q", got)
	}
}

func TestResponseError_ClassifiesByStatus(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		category goerrors.Category
		textCode string
	}{
		{"unauthorized", http.StatusUnauthorized, goerrors.CategoryAuth, ClientErrorUnauthorized},
		{"rate limited", http.StatusTooManyRequests, goerrors.CategoryRateLimit, ClientErrorRateLimited},
		{"unprocessable", http.StatusUnprocessableEntity, goerrors.CategoryValidation, ClientErrorRejected},
		{"not found", http.StatusNotFound, goerrors.CategoryValidation, ClientErrorRejected},
		{"server failure", http.StatusInternalServerError, goerrors.CategoryExternal, ClientErrorServerFailure},
		{"bad gateway", http.StatusBadGateway, goerrors.CategoryExternal, ClientErrorServerFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ResponseError(tc.status, []byte(`{"detail":"backend said no"}`), map[string]any{"path": "/x"})
			var rich *goerrors.Error
			if !goerrors.As(err, &rich) {
				t.Fatalf("expected go-errors envelope, got %T", err)
			}
			if rich.Category != tc.category {
				t.Fatalf("expected category %q, got %q", tc.category, rich.Category)
			}
			if rich.TextCode != tc.textCode {
				t.Fatalf("expected text code %q, got %q", tc.textCode, rich.TextCode)
			}
			if rich.Code != tc.status {
				t.Fatalf("expected code %d, got %d", tc.status, rich.Code)
			}
			if rich.Message != "backend said no" {
				t.Fatalf("expected backend detail as message, got %q", rich.Message)
			}
		})
	}
}

func TestResponseError_FallsBackWithoutDetail(t *testing.T) {
	err := ResponseError(http.StatusServiceUnavailable, []byte("gateway timeout page"), nil)
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.Message == "" {
		t.Fatalf("expected a fallback message for non-json bodies")
	}
}

func TestNetworkError_WrapsSource(t *testing.T) {
	source := fmt.Errorf("dial tcp: connection refused")
	err := NetworkError(source, map[string]any{"url": "https://fraud.example.com"})

	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.Category != goerrors.CategoryExternal {
		t.Fatalf("expected external category, got %q", rich.Category)
	}
	if rich.TextCode != ClientErrorNetwork {
		t.Fatalf("expected %q text code, got %q", ClientErrorNetwork, rich.TextCode)
	}
}

func TestIsUnauthorized(t *testing.T) {
	if !IsUnauthorized(ResponseError(http.StatusUnauthorized, nil, nil)) {
		t.Fatalf("expected 401 response error recognized")
	}
	if IsUnauthorized(ResponseError(http.StatusForbidden, nil, nil)) {
		t.Fatalf("expected 403 not treated as unauthorized")
	}
	if IsUnauthorized(fmt.Errorf("plain error")) {
		t.Fatalf("expected plain errors not treated as unauthorized")
	}
	if IsUnauthorized(nil) {
		t.Fatalf("expected nil not treated as unauthorized")
	}
}
