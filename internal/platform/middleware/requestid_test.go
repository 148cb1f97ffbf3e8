package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// serveRequestID runs RequestID with the given incoming header value and
// returns the ID seen by the downstream handler and the recorder.
func serveRequestID(t *testing.T, incoming string) (string, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(chimiddleware.RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()

	var captured string
	RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		captured = chimiddleware.GetReqID(r.Context())
	})).ServeHTTP(rec, req)
	return captured, rec
}

func assertUUIDv4(t *testing.T, id string) {
	t.Helper()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("request ID %q is not a valid UUID: %v", id, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("expected UUIDv4, got version %d", parsed.Version())
	}
}

func TestRequestIDGeneratesUUIDv4(t *testing.T) {
	captured, rec := serveRequestID(t, "")

	assertUUIDv4(t, captured)
	if header := rec.Header().Get(chimiddleware.RequestIDHeader); header != captured {
		t.Fatalf("expected response header %q, got %q", captured, header)
	}
}

func TestRequestIDPreservesIncomingHeader(t *testing.T) {
	captured, rec := serveRequestID(t, "frontend-7f3a")

	if captured != "frontend-7f3a" {
		t.Fatalf("expected request ID frontend-7f3a, got %q", captured)
	}
	if header := rec.Header().Get(chimiddleware.RequestIDHeader); header != "frontend-7f3a" {
		t.Fatalf("expected header frontend-7f3a, got %q", header)
	}
}

func TestRequestIDReplacesUnsafeHeaders(t *testing.T) {
	for name, id := range map[string]string{
		"newline":   "valid\ninjected-line",
		"carriage":  "valid\rinjected",
		"null byte": "valid\x00null",
		"tab":       "valid\ttab",
		"del":       "valid\x7Fdel",
		"high byte": "valid\x80high",
		"too long":  strings.Repeat("a", maxRequestIDLength+1),
	} {
		t.Run(name, func(t *testing.T) {
			captured, rec := serveRequestID(t, id)
			if captured == id {
				t.Fatalf("expected unsafe ID to be replaced")
			}
			assertUUIDv4(t, captured)
			if header := rec.Header().Get(chimiddleware.RequestIDHeader); header != captured {
				t.Fatalf("expected response header %q, got %q", captured, header)
			}
		})
	}
}

func TestRequestIDUniquePerRequest(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		id, _ := serveRequestID(t, "")
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate request ID %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestIsValidRequestID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"", false},
		{"a", true},
		{"550e8400-e29b-41d4-a716-446655440000", true},
		{"00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", true},
		{strings.Repeat("x", maxRequestIDLength), true},
		{strings.Repeat("x", maxRequestIDLength+1), false},
		{" ", true},
		{"~", true},
		{"special!@#$%^&*()", true},
		{"hello\x1fworld", false},
		{"hello\x7fworld", false},
		{"héllo", false},
	}

	for _, tc := range tests {
		if got := isValidRequestID(tc.id); got != tc.valid {
			t.Errorf("isValidRequestID(%q) = %v, want %v", tc.id, got, tc.valid)
		}
	}
}
