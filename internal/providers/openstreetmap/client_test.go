package openstreetmap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assistant-webhook/internal/upstream"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-agent", 2*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_Search(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/search")
		}
		if got := r.URL.Query().Get("q"); got != "São Paulo" {
			t.Errorf("q = %q, want %q", got, "São Paulo")
		}
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("limit = %q, want %q", got, "1")
		}
		if got := r.Header.Get("User-Agent"); got != "test-agent" {
			t.Errorf("User-Agent = %q, want %q", got, "test-agent")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"place_id":1,"lat":"-23.5505","lon":"-46.6333","display_name":"São Paulo, Brasil"}]`)
	})

	resp, err := client.Search(context.Background(), "São Paulo")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("len(resp) = %d, want 1", len(resp))
	}
	if resp[0].Lat != "-23.5505" || resp[0].Lon != "-46.6333" {
		t.Errorf("coordinates = %s,%s, want -23.5505,-46.6333", resp[0].Lat, resp[0].Lon)
	}
	if resp[0].DisplayName != "São Paulo, Brasil" {
		t.Errorf("DisplayName = %q, want %q", resp[0].DisplayName, "São Paulo, Brasil")
	}
}

func TestClient_Search_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, "boom", upstream.ErrUnavailable},
		{"rate limited", http.StatusTooManyRequests, "slow down", upstream.ErrUnavailable},
		{"invalid json", http.StatusOK, "{not json", upstream.ErrMalformedPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := client.Search(context.Background(), "nowhere")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Search() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClient_Search_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(url, "", time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := client.Search(context.Background(), "anywhere")
	if !errors.Is(err, upstream.ErrUnavailable) {
		t.Errorf("Search() error = %v, want %v", err, upstream.ErrUnavailable)
	}
}
