package pirateweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"assistant-webhook/internal/upstream"
)

// API Docs: https://docs.pirateweather.net/en/latest/API/
// Sample request: https://api.pirateweather.net/forecast/<key>/-23.5505,-46.6333?units=auto&exclude=minutely,alerts
const (
	baseForecastURL = "https://api.pirateweather.net"
	defaultUnits    = "auto"
)

var ErrMissingAPIKey = errors.New("forecast api key is not configured")

type Client struct {
	httpClient *http.Client
	baseURL    string
	units      string
	logger     *slog.Logger
}

// NewClient creates a forecast client. Empty base URL and units select the
// public endpoint and "auto" (units picked from the location).
func NewClient(base, units string, timeout time.Duration, logger *slog.Logger) *Client {
	if strings.TrimSpace(base) == "" {
		base = baseForecastURL
	}
	if strings.TrimSpace(units) == "" {
		units = defaultUnits
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(base, "/"),
		units:      units,
		logger:     logger.With("component", "pirateweather-client"),
	}
}

// GetForecast fetches the current conditions for the given latitude and longitude
func (c *Client) GetForecast(ctx context.Context, latitude, longitude float64, apiKey string) (*ForecastAPIResponse, error) {
	const op = "forecast"

	if strings.TrimSpace(apiKey) == "" {
		return nil, upstream.Unavailable(op, ErrMissingAPIKey)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u = u.JoinPath("forecast", apiKey, fmt.Sprintf("%f,%f", latitude, longitude))
	q := u.Query()
	q.Set("units", c.units)
	q.Set("exclude", "minutely,alerts")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	// The key is part of the path; keep it out of the logs
	c.logger.Debug("fetching forecast",
		"latitude", latitude,
		"longitude", longitude,
		"units", c.units,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch forecast", "error", redact(err, apiKey))
		return nil, upstream.Unavailable(op, fmt.Errorf("failed to fetch: %w", redact(err, apiKey)))
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		c.logger.Error("forecast API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, upstream.Unavailable(op, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body)))
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode forecast response", "error", err)
		return nil, upstream.Malformed(op, fmt.Errorf("failed to decode response: %w", err))
	}

	c.logger.Debug("successfully fetched forecast", "timezone", apiResp.Timezone)

	return &apiResp, nil
}

func redact(err error, secret string) error {
	if secret == "" || !strings.Contains(err.Error(), secret) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), secret, "REDACTED"))
}
