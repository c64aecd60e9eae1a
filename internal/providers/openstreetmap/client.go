package openstreetmap

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

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=S%C3%A3o+Paulo&format=jsonv2&limit=1
const (
	baseURL = "https://nominatim.openstreetmap.org"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

// NewClient creates a Nominatim client. An empty base URL selects the public instance.
func NewClient(base, userAgent string, timeout time.Duration, logger *slog.Logger) *Client {
	if strings.TrimSpace(base) == "" {
		base = baseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(base, "/"),
		userAgent:  userAgent,
		logger:     logger.With("component", "openstreetmap-client"),
	}
}

// Search resolves free text to at most one place. No match is an empty slice, not an error.
func (c *Client) Search(ctx context.Context, query string) ([]SearchAPIResponse, error) {
	const op = "geocode"

	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/search"
	q := u.Query()
	q.Set("q", query)
	q.Set("format", "jsonv2")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	// Nominatim's usage policy rejects requests without an identifying agent
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug("searching address", "query", query)

	// Make the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch address search", "error", err)
		return nil, upstream.Unavailable(op, fmt.Errorf("failed to fetch: %w", err))
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		c.logger.Error("address search returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, upstream.Unavailable(op, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body)))
	}

	// Parse the JSON response
	var apiResp []SearchAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode address search response", "error", err)
		return nil, upstream.Malformed(op, fmt.Errorf("failed to decode response: %w", err))
	}

	c.logger.Debug("address search complete", "query", query, "results", len(apiResp))

	return apiResp, nil
}
