package wisdom

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"assistant-webhook/internal/config"
	"assistant-webhook/internal/providers/wikipedia"
	"assistant-webhook/internal/upstream"
)

// ErrMissingQuery is returned when the request carries no query text.
// No upstream call is made.
var ErrMissingQuery = errors.New("missing query")

// ErrNoSearchHits is returned when the search found no article at all.
// It is tagged upstream.KindNotFound.
var ErrNoSearchHits = errors.New("no search hits")

const (
	defaultSearchResults = 2

	// maxPageLookups bounds the hits resolved: the best match and one retry.
	maxPageLookups = 2
)

// KnowledgeProvider searches articles and resolves them to a URL and summary.
type KnowledgeProvider interface {
	Search(ctx context.Context, query string, limit int) ([]string, error)
	Page(ctx context.Context, title string) (*wikipedia.Page, error)
}

// Service answers the wisdom intents.
type Service interface {
	Answer(ctx context.Context, query string) (*Answer, error)
}

type wisdomService struct {
	knowledgeProvider KnowledgeProvider
	searchResults     int
	logger            *slog.Logger
}

// NewWisdomService creates a new wisdom service backed by the MediaWiki API.
func NewWisdomService(cfg *config.Config, logger *slog.Logger) Service {
	client := wikipedia.NewClient(cfg.Providers.Knowledge.BaseURL, cfg.Providers.Timeout, logger)
	return NewWisdomServiceWithProvider(client, cfg.Providers.Knowledge.SearchResults, logger)
}

// NewWisdomServiceWithProvider creates a new wisdom service with a custom provider.
// searchResults is the search limit; values below 1 use the default of 2.
// At most two hits are resolved regardless.
func NewWisdomServiceWithProvider(knowledgeProvider KnowledgeProvider, searchResults int, logger *slog.Logger) Service {
	if searchResults < 1 {
		searchResults = defaultSearchResults
	}
	return &wisdomService{
		knowledgeProvider: knowledgeProvider,
		searchResults:     searchResults,
		logger:            logger.With("component", "wisdom-service"),
	}
}

// Answer searches for the query and resolves the first hit, retrying once
// with the second when the first page is missing or has no URL. Transport
// and payload failures stop the lookup.
func (s *wisdomService) Answer(ctx context.Context, query string) (*Answer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrMissingQuery
	}

	titles, err := s.knowledgeProvider.Search(ctx, query, s.searchResults)
	if err != nil {
		return nil, fmt.Errorf("failed to search knowledge base: %w", err)
	}
	if len(titles) == 0 {
		return nil, upstream.NotFound("knowledge search", fmt.Errorf("%w for %q", ErrNoSearchHits, query))
	}

	if len(titles) > maxPageLookups {
		titles = titles[:maxPageLookups]
	}

	answer := &Answer{Query: query}
	for _, title := range titles {
		page, err := s.knowledgeProvider.Page(ctx, title)
		if errors.Is(err, upstream.ErrNotFound) {
			s.logger.Debug("search hit has no page", "title", title)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get page %q: %w", title, err)
		}
		if page.URL == "" {
			s.logger.Debug("search hit has no canonical url", "title", title)
			continue
		}

		answer.Title = page.Title
		answer.URL = page.URL
		answer.Summary = page.Summary
		break
	}

	s.logger.Debug("knowledge lookup complete",
		"query", query,
		"title", answer.Title,
		"found", answer.Found(),
	)

	return answer, nil
}
