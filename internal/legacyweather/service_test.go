package legacyweather

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	"assistant-webhook/internal/providers/yahoo"
	"assistant-webhook/internal/upstream"
)

// mockQueryProvider implements QueryProvider for testing
type mockQueryProvider struct {
	resp  *yahoo.QueryAPIResponse
	err   error
	calls int
	city  string
}

func (m *mockQueryProvider) Query(ctx context.Context, city string) (*yahoo.QueryAPIResponse, error) {
	m.calls++
	m.city = city
	return m.resp, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func loadQueryFixture(t *testing.T) *yahoo.QueryAPIResponse {
	t.Helper()

	data, err := os.ReadFile("testdata/yql_forecast_response.json")
	if err != nil {
		t.Fatalf("Failed to read testdata file: %v", err)
	}

	var apiResponse yahoo.QueryAPIResponse
	if err := json.Unmarshal(data, &apiResponse); err != nil {
		t.Fatalf("Failed to unmarshal API response: %v", err)
	}
	return &apiResponse
}

func TestForecast(t *testing.T) {
	provider := &mockQueryProvider{resp: loadQueryFixture(t)}
	svc := NewLegacyWeatherServiceWithProvider(provider, testLogger())

	speech, err := svc.Forecast(context.Background(), " Lisboa ")
	if err != nil {
		t.Fatalf("Forecast returned error: %v", err)
	}

	want := "Hoje em Lisbon: Sunny, a temperatura é de 72 F"
	if speech != want {
		t.Errorf("Forecast() = %q, want %q", speech, want)
	}
	if provider.city != "Lisboa" {
		t.Errorf("provider queried for %q, want %q", provider.city, "Lisboa")
	}
}

func TestForecast_MissingCity(t *testing.T) {
	for _, city := range []string{"", "   "} {
		provider := &mockQueryProvider{resp: loadQueryFixture(t)}
		svc := NewLegacyWeatherServiceWithProvider(provider, testLogger())

		_, err := svc.Forecast(context.Background(), city)
		if !errors.Is(err, ErrMissingCity) {
			t.Errorf("Forecast(%q) error = %v, want %v", city, err, ErrMissingCity)
		}
		if provider.calls != 0 {
			t.Errorf("Forecast(%q) called provider %d times, want 0", city, provider.calls)
		}
	}
}

func TestForecast_ProviderFailure(t *testing.T) {
	provider := &mockQueryProvider{err: upstream.Unavailable("legacy weather", errors.New("timeout"))}
	svc := NewLegacyWeatherServiceWithProvider(provider, testLogger())

	_, err := svc.Forecast(context.Background(), "Lisboa")
	if !errors.Is(err, upstream.ErrUnavailable) {
		t.Errorf("error = %v, want %v", err, upstream.ErrUnavailable)
	}
}

func TestForecast_IncompletePayload(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*yahoo.QueryAPIResponse)
	}{
		{"no query", func(r *yahoo.QueryAPIResponse) { r.Query = nil }},
		{"no results", func(r *yahoo.QueryAPIResponse) { r.Query.Results = nil }},
		{"no channel", func(r *yahoo.QueryAPIResponse) { r.Query.Results.Channel = nil }},
		{"no item", func(r *yahoo.QueryAPIResponse) { r.Query.Results.Channel.Item = nil }},
		{"no location", func(r *yahoo.QueryAPIResponse) { r.Query.Results.Channel.Location = nil }},
		{"no units", func(r *yahoo.QueryAPIResponse) { r.Query.Results.Channel.Units = nil }},
		{"no condition", func(r *yahoo.QueryAPIResponse) { r.Query.Results.Channel.Item.Condition = nil }},
		{"blank city", func(r *yahoo.QueryAPIResponse) { r.Query.Results.Channel.Location.City = "" }},
		{"blank text", func(r *yahoo.QueryAPIResponse) { r.Query.Results.Channel.Item.Condition.Text = "" }},
		{"blank temp", func(r *yahoo.QueryAPIResponse) { r.Query.Results.Channel.Item.Condition.Temp = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := loadQueryFixture(t)
			tt.mutate(resp)

			svc := NewLegacyWeatherServiceWithProvider(&mockQueryProvider{resp: resp}, testLogger())

			speech, err := svc.Forecast(context.Background(), "Lisboa")
			if speech != "" {
				t.Errorf("expected no speech, got %q", speech)
			}
			if !errors.Is(err, ErrIncompletePayload) {
				t.Errorf("error = %v, want %v", err, ErrIncompletePayload)
			}
			if !errors.Is(err, upstream.ErrMalformedPayload) {
				t.Errorf("error = %v, want kind %v", err, upstream.ErrMalformedPayload)
			}
		})
	}
}

func TestToSpeech_NilResponse(t *testing.T) {
	if _, err := toSpeech(nil); !errors.Is(err, ErrIncompletePayload) {
		t.Errorf("toSpeech(nil) error = %v, want %v", err, ErrIncompletePayload)
	}
}
