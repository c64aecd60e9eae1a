package upstream

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Is(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{"not found matches", NotFound("geocode", nil), ErrNotFound, true},
		{"unavailable matches", Unavailable("forecast", cause), ErrUnavailable, true},
		{"malformed matches", Malformed("forecast", cause), ErrMalformedPayload, true},
		{"kinds differ", NotFound("geocode", nil), ErrUnavailable, false},
		{"wrapped error matches", fmt.Errorf("lookup: %w", Unavailable("forecast", cause)), ErrUnavailable, true},
		{"cause is reachable", Unavailable("forecast", cause), cause, true},
		{"plain error", cause, ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.expected {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.expected)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"nil", nil, KindUnknown},
		{"plain", errors.New("boom"), KindUnknown},
		{"not found", NotFound("search", nil), KindNotFound},
		{"wrapped unavailable", fmt.Errorf("outer: %w", Unavailable("page", nil)), KindUnavailable},
		{"malformed", Malformed("query", errors.New("missing channel")), KindMalformedPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.expected {
				t.Errorf("KindOf(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(Unavailable("forecast", nil)) {
		t.Error("expected transport failure to be retryable")
	}
	if Retryable(NotFound("geocode", nil)) {
		t.Error("expected not found to be terminal")
	}
	if Retryable(Malformed("forecast", nil)) {
		t.Error("expected malformed payload to be terminal")
	}
}

func TestError_Error(t *testing.T) {
	err := Unavailable("forecast", errors.New("timeout"))
	if got, want := err.Error(), "forecast: upstream unavailable: timeout"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = NotFound("geocode", nil)
	if got, want := err.Error(), "geocode: not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
