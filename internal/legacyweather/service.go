package legacyweather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"assistant-webhook/internal/config"
	"assistant-webhook/internal/providers/yahoo"
)

// ErrMissingCity is returned when the request carries no city to look up.
// No upstream call is made.
var ErrMissingCity = errors.New("missing city")

// QueryProvider runs the legacy forecast query for a city.
type QueryProvider interface {
	Query(ctx context.Context, city string) (*yahoo.QueryAPIResponse, error)
}

// Service answers the yahooWeatherForecast intent.
type Service interface {
	Forecast(ctx context.Context, city string) (string, error)
}

type legacyWeatherService struct {
	queryProvider QueryProvider
	logger        *slog.Logger
}

// NewLegacyWeatherService creates a new legacy weather service with a real YQL client.
func NewLegacyWeatherService(cfg *config.Config, logger *slog.Logger) Service {
	client := yahoo.NewClient(cfg.Providers.Legacy.BaseURL, cfg.Providers.Timeout, logger)
	return NewLegacyWeatherServiceWithProvider(client, logger)
}

// NewLegacyWeatherServiceWithProvider creates a new legacy weather service with a custom provider.
// This is useful for testing with mock providers.
func NewLegacyWeatherServiceWithProvider(queryProvider QueryProvider, logger *slog.Logger) Service {
	return &legacyWeatherService{
		queryProvider: queryProvider,
		logger:        logger.With("component", "legacy-weather-service"),
	}
}

// Forecast fetches today's condition for the city and renders it as a single
// sentence. Any missing branch of the payload fails the whole answer.
func (s *legacyWeatherService) Forecast(ctx context.Context, city string) (string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return "", ErrMissingCity
	}

	s.logger.Debug("getting legacy forecast", "city", city)

	resp, err := s.queryProvider.Query(ctx, city)
	if err != nil {
		return "", fmt.Errorf("failed to query legacy forecast: %w", err)
	}

	speech, err := toSpeech(resp)
	if err != nil {
		s.logger.Warn("legacy forecast payload rejected", "city", city, "error", err)
		return "", err
	}

	s.logger.Debug("legacy forecast rendered", "city", city, "speech", speech)

	return speech, nil
}
