// Package ratelimit extracts the per-response rate-limit telemetry the
// backend publishes through X-RateLimit headers.
package ratelimit

import (
	"strconv"
	"strings"
)

const (
	HeaderLimit     = "X-RateLimit-Limit"
	HeaderRemaining = "X-RateLimit-Remaining"
	HeaderReset     = "X-RateLimit-Reset"

	DefaultLimit     = 100
	DefaultRemaining = 100
	DefaultReset     = 0
)

// Snapshot is a read-only summary derived from a single response; it is
// never persisted.
type Snapshot struct {
	Limit     int
	Remaining int
	Reset     int
}

func DefaultSnapshot() Snapshot {
	return Snapshot{Limit: DefaultLimit, Remaining: DefaultRemaining, Reset: DefaultReset}
}

// FromHeaders parses the three rate-limit headers, case-insensitively. Any
// header that is missing or non-numeric falls back to its documented
// default. Pure: no side effects, deterministic for a given header map.
func FromHeaders(headers map[string]string) Snapshot {
	return Snapshot{
		Limit:     headerInt(headers, HeaderLimit, DefaultLimit),
		Remaining: headerInt(headers, HeaderRemaining, DefaultRemaining),
		Reset:     headerInt(headers, HeaderReset, DefaultReset),
	}
}

func headerInt(headers map[string]string, key string, fallback int) int {
	value := headerValue(headers, key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func headerValue(headers map[string]string, key string) string {
	if len(headers) == 0 {
		return ""
	}
	for existing, value := range headers {
		if strings.EqualFold(strings.TrimSpace(existing), key) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
