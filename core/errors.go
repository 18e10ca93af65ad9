package core

import (
	"encoding/json"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ClientErrorBadInput      = "CLIENT_BAD_INPUT"
	ClientErrorNetwork       = "CLIENT_NETWORK_FAILURE"
	ClientErrorUnauthorized  = "CLIENT_UNAUTHORIZED"
	ClientErrorRejected      = "CLIENT_REQUEST_REJECTED"
	ClientErrorRateLimited   = "CLIENT_RATE_LIMITED"
	ClientErrorServerFailure = "CLIENT_SERVER_FAILURE"
	ClientErrorInternal      = "CLIENT_INTERNAL_ERROR"
)

type errorEnvelope struct {
	Detail string `json:"detail"`
}

// Detail extracts the server-supplied detail message from an error payload.
// The backend always shapes failures as {"detail": "..."}.
func Detail(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return strings.TrimSpace(envelope.Detail)
}

// ResponseError converts a non-2xx transport response into the structured
// error every operation propagates: 401 is an auth failure, other 4xx are
// rejected requests, 5xx are server failures. The detail message, when the
// body carries one, becomes the error message unmodified.
func ResponseError(status int, body []byte, metadata map[string]any) *goerrors.Error {
	detail := Detail(body)
	message := detail
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = "request failed"
	}

	category, textCode := classifyStatus(status)
	err := goerrors.New(message, category).
		WithCode(status).
		WithTextCode(textCode)

	fields := cloneMetadata(metadata)
	fields["status_code"] = status
	if detail != "" {
		fields["detail"] = detail
	}
	return err.WithMetadata(fields)
}

// NetworkError wraps a transport failure where no response was received.
func NetworkError(source error, metadata map[string]any) *goerrors.Error {
	err := goerrors.Wrap(source, goerrors.CategoryExternal, "fraudclient: request transport failed").
		WithCode(http.StatusBadGateway).
		WithTextCode(ClientErrorNetwork)
	if len(metadata) > 0 {
		err.WithMetadata(cloneMetadata(metadata))
	}
	return err
}

func BadInputError(message string, metadata map[string]any) *goerrors.Error {
	err := goerrors.New(message, goerrors.CategoryBadInput).
		WithCode(http.StatusBadRequest).
		WithTextCode(ClientErrorBadInput)
	if len(metadata) > 0 {
		err.WithMetadata(cloneMetadata(metadata))
	}
	return err
}

func InternalError(message string, metadata map[string]any) *goerrors.Error {
	err := goerrors.New(message, goerrors.CategoryInternal).
		WithCode(http.StatusInternalServerError).
		WithTextCode(ClientErrorInternal)
	if len(metadata) > 0 {
		err.WithMetadata(cloneMetadata(metadata))
	}
	return err
}

// IsUnauthorized reports whether err carries an HTTP 401, ie the failure
// that forces a global logout.
func IsUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return false
	}
	return richErr.Code == http.StatusUnauthorized
}

func classifyStatus(status int) (goerrors.Category, string) {
	switch {
	case status == http.StatusUnauthorized:
		return goerrors.CategoryAuth, ClientErrorUnauthorized
	case status == http.StatusTooManyRequests:
		return goerrors.CategoryRateLimit, ClientErrorRateLimited
	case status >= 400 && status < 500:
		return goerrors.CategoryValidation, ClientErrorRejected
	case status >= 500:
		return goerrors.CategoryExternal, ClientErrorServerFailure
	default:
		return goerrors.CategoryInternal, ClientErrorInternal
	}
}

func cloneMetadata(input map[string]any) map[string]any {
	output := make(map[string]any, len(input)+2)
	for key, value := range input {
		output[key] = value
	}
	return output
}
