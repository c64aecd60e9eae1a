package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"assistant-webhook/internal/upstream"
)

// API Docs: https://www.mediawiki.org/wiki/API:Search and https://www.mediawiki.org/wiki/Extension:TextExtracts
// Sample request: https://en.wikipedia.org/w/api.php?action=query&list=search&srsearch=golang&srlimit=2&format=json&formatversion=2
const (
	baseURL = "https://en.wikipedia.org/w/api.php"
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
		logger:     logger.With("component", "wikipedia-client"),
	}
}

// Search returns up to limit article titles, best match first
func (c *Client) Search(ctx context.Context, query string, limit int) ([]string, error) {
	const op = "knowledge search"

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(limit))
	params.Set("srprop", "")

	var apiResp SearchAPIResponse
	if err := c.get(ctx, op, params, &apiResp); err != nil {
		return nil, err
	}
	if apiResp.Error != nil {
		return nil, upstream.Malformed(op, fmt.Errorf("api error %s: %s", apiResp.Error.Code, apiResp.Error.Info))
	}

	titles := make([]string, 0, len(apiResp.Query.Search))
	for _, hit := range apiResp.Query.Search {
		if hit.Title != "" {
			titles = append(titles, hit.Title)
		}
	}

	c.logger.Debug("knowledge search complete", "query", query, "results", len(titles))

	return titles, nil
}

// Page looks up the canonical URL and the first sentence of an article.
// A missing article yields upstream.ErrNotFound.
func (c *Client) Page(ctx context.Context, title string) (*Page, error) {
	const op = "knowledge page"

	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "info|extracts")
	params.Set("inprop", "url")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("exsentences", "1")
	params.Set("redirects", "1")
	params.Set("titles", title)

	var apiResp PageAPIResponse
	if err := c.get(ctx, op, params, &apiResp); err != nil {
		return nil, err
	}
	if apiResp.Error != nil {
		return nil, upstream.Malformed(op, fmt.Errorf("api error %s: %s", apiResp.Error.Code, apiResp.Error.Info))
	}

	if len(apiResp.Query.Pages) == 0 {
		return nil, upstream.NotFound(op, fmt.Errorf("no page for title %q", title))
	}
	info := apiResp.Query.Pages[0]
	if info.Missing || info.Invalid {
		return nil, upstream.NotFound(op, fmt.Errorf("page %q does not exist", title))
	}

	return &Page{
		Title:   info.Title,
		URL:     info.FullURL,
		Summary: strings.TrimSpace(info.Extract),
	}, nil
}

func (c *Client) get(ctx context.Context, op string, params url.Values, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}

	params.Set("format", "json")
	params.Set("formatversion", "2")
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch", "op", op, "error", err)
		return upstream.Unavailable(op, fmt.Errorf("failed to fetch: %w", err))
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		c.logger.Error("wikipedia API returned error",
			"op", op,
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return upstream.Unavailable(op, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode response", "op", op, "error", err)
		return upstream.Malformed(op, fmt.Errorf("failed to decode response: %w", err))
	}

	return nil
}
