package services

import (
	"context"
	"log/slog"

	"expense-analysis-backend/internal/config"
	"expense-analysis-backend/internal/models"
	"expense-analysis-backend/internal/search"
)

const researchResultLimit = 3

type researchService struct {
	client    search.ClientInterface
	threshold float64
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

// NewResearchService creates the price research stage. Expenses qualify
// when their amount is at or above the threshold or carries the
// unknown-price sentinel.
func NewResearchService(client search.ClientInterface, cfg config.PipelineConfig, metrics MetricsRecorderInterface, logger *slog.Logger) ResearchServiceInterface {
	return &researchService{
		client:    client,
		threshold: cfg.SearchThreshold,
		metrics:   metrics,
		logger:    logger,
	}
}

// Enrich attaches market price context to qualifying expenses. A failed
// lookup leaves the expense untouched.
func (s *researchService) Enrich(ctx context.Context, expenses []*models.Expense) int {
	researched := 0

	for _, expense := range expenses {
		if !expense.NeedsResearch(s.threshold) {
			continue
		}

		results, err := s.client.SearchProductPrice(ctx, expense.Description, researchResultLimit)
		if err != nil {
			s.logger.Warn("price research failed",
				"description", expense.Description,
				"error", err,
			)
			s.metrics.IncrementCounter("search.request", map[string]string{"status": "failed"})
			continue
		}
		s.metrics.IncrementCounter("search.request", map[string]string{"status": "success"})

		if expense.Metadata == nil {
			expense.Metadata = models.JSONMap{}
		}
		expense.Metadata[models.MetadataKeySearched] = true
		expense.Metadata[models.MetadataKeySearchResults] = resultsToMetadata(results)
		researched++

		s.logger.Debug("price research completed",
			"description", expense.Description,
			"results", len(results),
		)
	}

	return researched
}

// resultsToMetadata flattens results into plain maps so they survive the
// JSON round trip through storage.
func resultsToMetadata(results []search.Result) []interface{} {
	out := make([]interface{}, 0, len(results))
	for _, r := range results {
		out = append(out, map[string]interface{}{
			"title":   r.Title,
			"link":    r.Link,
			"snippet": r.Snippet,
		})
	}
	return out
}
