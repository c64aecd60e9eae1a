package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"assistant-webhook/internal/upstream"
)

// API Docs: https://developer.yahoo.com/yql/guide/var_substitution.html
// Sample request: https://query.yahooapis.com/v1/public/yql?q=select+*+from+weather.forecast+where+woeid+in+(select+woeid+from+geo.places(1)+where+text%3D%40city)&city=Lisboa&format=json
const (
	baseURL = "https://query.yahooapis.com/v1/public/yql"

	// The city is bound through @city and never spliced into the statement.
	forecastStatement = "select * from weather.forecast where woeid in (select woeid from geo.places(1) where text=@city)"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(base string, timeout time.Duration, logger *slog.Logger) *Client {
	if strings.TrimSpace(base) == "" {
		base = baseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    base,
		logger:     logger.With("component", "yahoo-client"),
	}
}

// Query runs the weather forecast statement for a city
func (c *Client) Query(ctx context.Context, city string) (*QueryAPIResponse, error) {
	const op = "legacy weather"

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", forecastStatement)
	q.Set("city", city)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	c.logger.Debug("querying legacy weather", "city", city)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch legacy weather", "city", city, "error", err)
		return nil, upstream.Unavailable(op, fmt.Errorf("failed to fetch: %w", err))
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		c.logger.Error("legacy weather API returned error",
			"status_code", resp.StatusCode,
			"city", city,
			"response_body", string(body),
		)
		return nil, upstream.Unavailable(op, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body)))
	}

	var apiResp QueryAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode legacy weather response", "city", city, "error", err)
		return nil, upstream.Malformed(op, fmt.Errorf("failed to decode response: %w", err))
	}

	return &apiResp, nil
}
