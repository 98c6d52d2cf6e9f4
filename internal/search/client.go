// Package search provides the web lookup used by the price research stage.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"expense-analysis-backend/internal/config"
)

var ErrSearchUnavailable = errors.New("search backend is unavailable")

// Result is a single search hit.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// ClientInterface is the contract for the search backend.
type ClientInterface interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
	SearchProductPrice(ctx context.Context, description string, maxResults int) ([]Result, error)
}

type duckDuckGoClient struct {
	baseURL    string
	maxResults int
	httpClient *http.Client
	logger     *slog.Logger
}

// NewDuckDuckGoClient creates a search client against the DuckDuckGo
// Instant Answer API.
func NewDuckDuckGoClient(cfg config.SearchConfig, logger *slog.Logger) ClientInterface {
	return &duckDuckGoClient{
		baseURL:    cfg.BaseURL,
		maxResults: cfg.MaxResults,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

type instantAnswerResponse struct {
	AbstractText  string      `json:"AbstractText"`
	AbstractURL   string      `json:"AbstractURL"`
	Heading       string      `json:"Heading"`
	RelatedTopics []ddgTopic  `json:"RelatedTopics"`
	Results       []ddgResult `json:"Results"`
}

type ddgTopic struct {
	Text     string     `json:"Text"`
	FirstURL string     `json:"FirstURL"`
	Topics   []ddgTopic `json:"Topics"`
}

type ddgResult struct {
	Text     string `json:"Text"`
	FirstURL string `json:"FirstURL"`
}

// Search runs a query and returns up to maxResults hits. An answer with no
// hits is a valid empty result, not an error.
func (c *duckDuckGoClient) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if maxResults <= 0 || maxResults > c.maxResults {
		maxResults = c.maxResults
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("search request failed", "query", query, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("search request rejected", "query", query, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrSearchUnavailable, resp.StatusCode)
	}

	var answer instantAnswerResponse
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := collectResults(answer, maxResults)
	c.logger.Debug("search completed", "query", query, "results", len(results))
	return results, nil
}

// SearchProductPrice looks up current market pricing for an expense
// description. The price qualifier keeps results relevant for the
// Turkish market the amounts come from.
func (c *duckDuckGoClient) SearchProductPrice(ctx context.Context, description string, maxResults int) ([]Result, error) {
	query := strings.TrimSpace(description) + " fiyat"
	return c.Search(ctx, query, maxResults)
}

func collectResults(answer instantAnswerResponse, maxResults int) []Result {
	results := make([]Result, 0, maxResults)

	if answer.AbstractText != "" {
		results = append(results, Result{
			Title:   answer.Heading,
			Link:    answer.AbstractURL,
			Snippet: answer.AbstractText,
		})
	}

	for _, r := range answer.Results {
		if len(results) >= maxResults {
			return results
		}
		if r.Text == "" {
			continue
		}
		results = append(results, Result{Title: topicTitle(r.Text), Link: r.FirstURL, Snippet: r.Text})
	}

	results = appendTopics(results, answer.RelatedTopics, maxResults)
	return results
}

// appendTopics flattens the nested topic groups DuckDuckGo returns for
// disambiguated queries.
func appendTopics(results []Result, topics []ddgTopic, maxResults int) []Result {
	for _, t := range topics {
		if len(results) >= maxResults {
			return results
		}
		if len(t.Topics) > 0 {
			results = appendTopics(results, t.Topics, maxResults)
			continue
		}
		if t.Text == "" {
			continue
		}
		results = append(results, Result{Title: topicTitle(t.Text), Link: t.FirstURL, Snippet: t.Text})
	}
	return results
}

// topicTitle takes the leading clause of a topic text as its title.
func topicTitle(text string) string {
	if idx := strings.Index(text, " - "); idx > 0 {
		return text[:idx]
	}
	return text
}
