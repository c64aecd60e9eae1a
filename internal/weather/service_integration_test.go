//go:build integration

package weather

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"assistant-webhook/internal/config"
)

func TestSearch_Integration(t *testing.T) {
	apiKey := os.Getenv("PIRATE_WEATHER_API_KEY")
	if apiKey == "" {
		t.Skip("PIRATE_WEATHER_API_KEY not set")
	}

	cfg := &config.Config{}
	cfg.Providers.Timeout = 15 * time.Second
	cfg.Providers.Geocode.BaseURL = "https://nominatim.openstreetmap.org"
	cfg.Providers.Geocode.UserAgent = "assistant-webhook-integration-test"
	cfg.Providers.Forecast.BaseURL = "https://api.pirateweather.net"
	cfg.Providers.Forecast.APIKey = apiKey
	cfg.Providers.Forecast.Units = "si"

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc, err := NewWeatherService(cfg, logger)
	if err != nil {
		t.Fatalf("Failed to create weather service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	snapshot, err := svc.Search(ctx, "São Paulo, Brasil")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if snapshot.Temperature == nil || snapshot.Wind == nil || snapshot.Pressure == nil {
		t.Fatalf("incomplete snapshot: %+v", snapshot)
	}
	if snapshot.ObservedAt.Location().String() != "America/Sao_Paulo" {
		t.Errorf("ObservedAt location = %v, want America/Sao_Paulo", snapshot.ObservedAt.Location())
	}
	if snapshot.Units.Pressure != "kPa" {
		t.Errorf("Units.Pressure = %q, want kPa", snapshot.Units.Pressure)
	}

	t.Logf("Formatted:\n%s", Format(snapshot))
}
