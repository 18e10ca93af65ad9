package ratelimit

import "testing"

func TestFromHeaders_EmptyHeadersUseDefaults(t *testing.T) {
	snapshot := FromHeaders(map[string]string{})
	if snapshot.Limit != 100 || snapshot.Remaining != 100 || snapshot.Reset != 0 {
		t.Fatalf("expected default snapshot {100 100 0}, got %+v", snapshot)
	}
}

func TestFromHeaders_ParsesLowercaseHeaderNames(t *testing.T) {
	snapshot := FromHeaders(map[string]string{
		"x-ratelimit-limit":     "5",
		"x-ratelimit-remaining": "2",
		"x-ratelimit-reset":     "123",
	})
	if snapshot.Limit != 5 {
		t.Fatalf("expected limit 5, got %d", snapshot.Limit)
	}
	if snapshot.Remaining != 2 {
		t.Fatalf("expected remaining 2, got %d", snapshot.Remaining)
	}
	if snapshot.Reset != 123 {
		t.Fatalf("expected reset 123, got %d", snapshot.Reset)
	}
}

func TestFromHeaders_CanonicalNamesAndWhitespace(t *testing.T) {
	snapshot := FromHeaders(map[string]string{
		"X-RateLimit-Limit":     " 60 ",
		"X-RateLimit-Remaining": "59",
		"X-RateLimit-Reset":     "1700000045",
	})
	if snapshot.Limit != 60 || snapshot.Remaining != 59 || snapshot.Reset != 1700000045 {
		t.Fatalf("unexpected snapshot %+v", snapshot)
	}
}

func TestFromHeaders_NonNumericFieldFallsBackPerField(t *testing.T) {
	snapshot := FromHeaders(map[string]string{
		"X-RateLimit-Limit":     "not-a-number",
		"X-RateLimit-Remaining": "7",
	})
	if snapshot.Limit != DefaultLimit {
		t.Fatalf("expected default limit for unparsable header, got %d", snapshot.Limit)
	}
	if snapshot.Remaining != 7 {
		t.Fatalf("expected remaining 7, got %d", snapshot.Remaining)
	}
	if snapshot.Reset != DefaultReset {
		t.Fatalf("expected default reset, got %d", snapshot.Reset)
	}
}
