package weather

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"assistant-webhook/internal/providers/pirateweather"
	"assistant-webhook/internal/types"
	"assistant-webhook/internal/upstream"
)

// ErrForecastParse is returned when a forecast payload cannot be turned into
// a Snapshot. It is tagged upstream.KindMalformedPayload.
var ErrForecastParse = errors.New("unusable forecast payload")

const millibarsPerKPa = 10

// NormalizeForecast builds a Snapshot from a provider payload. All current
// readings must be present; the payload is validated once up front.
func NormalizeForecast(geo types.GeoLocation, resp *pirateweather.ForecastAPIResponse, zone *time.Location) (*Snapshot, error) {
	if err := validateForecast(resp); err != nil {
		return nil, err
	}
	if zone == nil {
		zone = time.UTC
	}

	current := resp.Currently
	units := types.ImperialUnits()
	if resp.Flags != nil && resp.Flags.Units != "" {
		units = types.ResolveUnits(resp.Flags.Units)
	}

	temperature := *current.Temperature
	feelsLike := *current.ApparentTemperature
	humidity := int(*current.Humidity * 100)
	// Calm readings come without a bearing
	wind := types.Wind{Speed: *current.WindSpeed}
	if current.WindBearing != nil {
		wind = types.NewWind(*current.WindSpeed, *current.WindBearing)
	}

	// Providers report millibars regardless of flags.units
	pressure := *current.Pressure
	if units.IsMetricPressure() {
		pressure = pressure / millibarsPerKPa
	}

	snapshot := &Snapshot{
		Address:     geo.FormattedAddress,
		ObservedAt:  time.Unix(*current.Time, 0).In(zone),
		Summary:     *current.Summary,
		Temperature: &temperature,
		FeelsLike:   &feelsLike,
		Humidity:    &humidity,
		Wind:        &wind,
		Pressure:    &pressure,
		Units:       units,
	}

	if resp.Hourly != nil {
		snapshot.HourlySummary = resp.Hourly.Summary
	}
	if resp.Daily != nil {
		snapshot.DailySummary = resp.Daily.Summary
	}

	return snapshot, nil
}

func validateForecast(resp *pirateweather.ForecastAPIResponse) error {
	if resp == nil {
		return parseError("empty response")
	}
	current := resp.Currently
	if current == nil {
		return parseError("missing currently")
	}

	var missing []string
	if current.Time == nil {
		missing = append(missing, "time")
	}
	if current.Summary == nil {
		missing = append(missing, "summary")
	}
	if current.Temperature == nil {
		missing = append(missing, "temperature")
	}
	if current.ApparentTemperature == nil {
		missing = append(missing, "apparentTemperature")
	}
	if current.Humidity == nil {
		missing = append(missing, "humidity")
	}
	if current.WindSpeed == nil {
		missing = append(missing, "windSpeed")
	}
	if current.Pressure == nil {
		missing = append(missing, "pressure")
	}
	if len(missing) > 0 {
		return parseError("missing currently." + strings.Join(missing, ", currently."))
	}

	if h := *current.Humidity; h < 0 || h > 1 {
		return parseError(fmt.Sprintf("humidity %v outside [0, 1]", h))
	}

	return nil
}

func parseError(detail string) error {
	return upstream.Malformed("forecast", fmt.Errorf("%w: %s", ErrForecastParse, detail))
}

// asParseError re-tags an undecodable provider body as ErrForecastParse so it
// is handled like a decodable but incomplete one.
func asParseError(err error) error {
	return upstream.Malformed("forecast", fmt.Errorf("%w: %w", ErrForecastParse, err))
}
