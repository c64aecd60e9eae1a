package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"assistant-webhook/internal/config"
	"assistant-webhook/internal/location"
	"assistant-webhook/internal/providers/openstreetmap"
	"assistant-webhook/internal/providers/pirateweather"
	"assistant-webhook/internal/timezone"
	"assistant-webhook/internal/types"
	"assistant-webhook/internal/upstream"
)

type ForecastProvider interface {
	// GetForecast fetches the current conditions for the given latitude and longitude
	GetForecast(ctx context.Context, latitude, longitude float64, apiKey string) (*pirateweather.ForecastAPIResponse, error)
}

// Service runs the geocode + forecast pipeline for the weather.search intent
type Service interface {
	Search(ctx context.Context, address string) (*Snapshot, error)
}

type weatherService struct {
	locationService  location.Service
	forecastProvider ForecastProvider
	timezoneService  timezone.Service
	cfg              *config.Config
	logger           *slog.Logger
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	providers := cfg.Providers
	geocoder := openstreetmap.NewClient(providers.Geocode.BaseURL, providers.Geocode.UserAgent, providers.Timeout, logger)
	forecaster := pirateweather.NewClient(providers.Forecast.BaseURL, providers.Forecast.Units, providers.Timeout, logger)

	return NewWeatherServiceWithProviders(
		location.NewLocationService(geocoder, logger),
		forecaster,
		tzSvc,
		cfg,
		logger,
	), nil
}

// NewWeatherServiceWithProviders creates a weather service with custom collaborators.
// timezoneService may be nil, in which case the provider's timezone is used.
func NewWeatherServiceWithProviders(
	locationService location.Service,
	forecastProvider ForecastProvider,
	timezoneService timezone.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &weatherService{
		locationService:  locationService,
		forecastProvider: forecastProvider,
		timezoneService:  timezoneService,
		cfg:              cfg,
		logger:           logger.With("component", "weather-service"),
	}
}

// Search resolves the address, then fetches and normalizes its current
// forecast. The two calls are sequential: the forecast needs the coordinates.
func (s *weatherService) Search(ctx context.Context, address string) (*Snapshot, error) {
	geo, err := s.locationService.Resolve(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve address: %w", err)
	}

	s.logger.Debug("resolved address",
		"address", address,
		"formatted_address", geo.FormattedAddress,
		"latitude", geo.Coordinates.Latitude,
		"longitude", geo.Coordinates.Longitude,
	)

	// API key is read per call so a reloaded config takes effect
	apiResp, err := s.forecastProvider.GetForecast(
		ctx,
		geo.Coordinates.Latitude,
		geo.Coordinates.Longitude,
		s.cfg.Providers.Forecast.APIKey,
	)
	if errors.Is(err, upstream.ErrMalformedPayload) {
		s.logger.Warn("forecast payload rejected", "address", geo.FormattedAddress, "error", err)
		return nil, asParseError(err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	snapshot, err := NormalizeForecast(*geo, apiResp, s.observationZone(geo.Coordinates, apiResp))
	if err != nil {
		s.logger.Warn("forecast payload rejected", "address", geo.FormattedAddress, "error", err)
		return nil, err
	}

	return snapshot, nil
}

// observationZone picks the zone used to express ObservedAt: the zone of the
// coordinates, then the provider's reported zone, then UTC.
func (s *weatherService) observationZone(coords types.Coords, apiResp *pirateweather.ForecastAPIResponse) *time.Location {
	if s.timezoneService != nil {
		loc, err := s.timezoneService.GetLocation(coords.Latitude, coords.Longitude)
		if err == nil {
			return loc
		}
		s.logger.Debug("failed to determine timezone",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
	}

	if apiResp != nil && apiResp.Timezone != "" {
		if loc, err := time.LoadLocation(apiResp.Timezone); err == nil {
			return loc
		}
	}

	return time.UTC
}
