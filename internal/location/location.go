package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"assistant-webhook/internal/providers/openstreetmap"
	"assistant-webhook/internal/types"
	"assistant-webhook/internal/upstream"
)

const op = "geocode"

// ErrAddressNotFound is returned when the geocoder has no match for the text.
// It is tagged upstream.KindNotFound.
var ErrAddressNotFound = errors.New("address not found")

// Service resolves free-text addresses to coordinates
type Service interface {
	// Resolve returns the best match for the address text
	Resolve(ctx context.Context, address string) (*types.GeoLocation, error)
}

// GeocodeProvider defines the interface for forward geocoding providers
type GeocodeProvider interface {
	Search(ctx context.Context, query string) ([]openstreetmap.SearchAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	geocodeProvider GeocodeProvider
	logger          *slog.Logger
}

// NewLocationService creates a new location service backed by Nominatim
func NewLocationService(client *openstreetmap.Client, logger *slog.Logger) Service {
	return NewLocationServiceWithProvider(client, logger)
}

// NewLocationServiceWithProvider creates a new location service with a custom provider
// This is useful for testing with mock providers
func NewLocationServiceWithProvider(geocodeProvider GeocodeProvider, logger *slog.Logger) Service {
	return &locationService{
		geocodeProvider: geocodeProvider,
		logger:          logger.With("component", "location-service"),
	}
}

func (s *locationService) Resolve(ctx context.Context, address string) (*types.GeoLocation, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, addressNotFound(nil)
	}

	results, err := s.geocodeProvider.Search(ctx, address)
	if errors.Is(err, upstream.ErrMalformedPayload) {
		s.logger.Debug("unreadable geocode response", "address", address, "error", err)
		return nil, addressNotFound(err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search address: %w", err)
	}

	if len(results) == 0 {
		s.logger.Debug("no geocode match", "address", address)
		return nil, addressNotFound(nil)
	}

	geo, err := s.translateLocation(results[0])
	if err != nil {
		s.logger.Debug("unusable geocode match", "address", address, "error", err)
		return nil, addressNotFound(err)
	}
	return geo, nil
}

// addressNotFound tags a failed lookup as ErrAddressNotFound. An unreadable
// response counts as no match; its cause stays in the chain.
func addressNotFound(cause error) error {
	err := ErrAddressNotFound
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrAddressNotFound, cause)
	}
	return &upstream.Error{Kind: upstream.KindNotFound, Op: op, Err: err}
}

// translateLocation converts a Nominatim search hit to the domain GeoLocation type
func (s *locationService) translateLocation(resp openstreetmap.SearchAPIResponse) (*types.GeoLocation, error) {
	lat, err := strconv.ParseFloat(resp.Lat, 64)
	if err != nil {
		return nil, upstream.Malformed(op, fmt.Errorf("invalid latitude %q: %w", resp.Lat, err))
	}
	lon, err := strconv.ParseFloat(resp.Lon, 64)
	if err != nil {
		return nil, upstream.Malformed(op, fmt.Errorf("invalid longitude %q: %w", resp.Lon, err))
	}

	coords := types.NewCoords(lat, lon)
	if !coords.Valid() {
		return nil, upstream.Malformed(op, fmt.Errorf("coordinates out of range: %f,%f", lat, lon))
	}

	// Prefer the full display name as the formatted address
	address := resp.DisplayName
	if address == "" {
		address = resp.Name
	}

	return &types.GeoLocation{
		Coordinates:      coords,
		FormattedAddress: address,
	}, nil
}
