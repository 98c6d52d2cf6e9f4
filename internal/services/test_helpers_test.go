package services

import (
	"context"
	"time"

	"expense-analysis-backend/internal/llm"
	"expense-analysis-backend/internal/search"
)

// noopMetrics discards all recordings. The Prometheus recorder registers
// on the default registry, so unit tests use this instead.
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}

// stubGenerator scripts the language model per test case.
type stubGenerator struct {
	generateFn func(req llm.GenerateRequest) (string, error)
	healthy    bool
	requests   []llm.GenerateRequest
}

func (g *stubGenerator) Generate(ctx context.Context, req llm.GenerateRequest) (string, error) {
	g.requests = append(g.requests, req)
	if g.generateFn == nil {
		return "", llm.ErrBackendUnavailable
	}
	return g.generateFn(req)
}

func (g *stubGenerator) CheckHealth(ctx context.Context) bool {
	return g.healthy
}

// stubSearchClient scripts the search backend per test case.
type stubSearchClient struct {
	searchFn func(query string) ([]search.Result, error)
	queries  []string
}

func (c *stubSearchClient) Search(ctx context.Context, query string, maxResults int) ([]search.Result, error) {
	c.queries = append(c.queries, query)
	if c.searchFn == nil {
		return nil, nil
	}
	return c.searchFn(query)
}

func (c *stubSearchClient) SearchProductPrice(ctx context.Context, description string, maxResults int) ([]search.Result, error) {
	return c.Search(ctx, description+" fiyat", maxResults)
}
