package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"expense-analysis-backend/internal/dto"
	"expense-analysis-backend/internal/models"
)

// ClassifierServiceInterface turns raw expense texts into categorized
// expenses. Classification never fails; unparseable texts come back with
// the zero-amount sentinel and unmatched descriptions land in OTHER.
type ClassifierServiceInterface interface {
	Classify(ctx context.Context, texts []string) []*models.Expense
}

// ResearchServiceInterface enriches qualifying expenses with market price
// context. Returns how many expenses were researched; lookup failures are
// logged and skipped, never propagated.
type ResearchServiceInterface interface {
	Enrich(ctx context.Context, expenses []*models.Expense) int
}

// AnalystServiceInterface computes budget metrics from a batch of
// categorized expenses.
type AnalystServiceInterface interface {
	Analyze(ctx context.Context, expenses []*models.Expense, days int, income *float64) (*models.Analysis, error)
}

// StrategistServiceInterface generates advice from an analysis. The
// summary and suggestions come from the language model with deterministic
// fallbacks; the action plan and goals are always computed locally.
type StrategistServiceInterface interface {
	Recommend(ctx context.Context, analysis *models.Analysis) (*models.Recommendation, error)
}

// StageTiming reports the wall time one pipeline stage took.
type StageTiming struct {
	Stage    string
	Duration time.Duration
}

// PipelineResult is the outcome of one full pipeline run.
type PipelineResult struct {
	Expenses        []*models.Expense
	Analysis        *models.Analysis
	Recommendation  *models.Recommendation
	ResearchedCount int
	StageTimings    []StageTiming
	TotalDuration   time.Duration
}

// OrchestratorInterface runs the pipeline end to end and serves the
// persisted history.
type OrchestratorInterface interface {
	Run(ctx context.Context, req *dto.AnalyzeRequest) (*PipelineResult, error)
	GetAnalysis(id uuid.UUID) (*models.Analysis, *models.Recommendation, error)
	LatestAnalysis() (*models.Analysis, *models.Recommendation, error)
	ListAnalyses(offset, limit int) ([]models.Analysis, int64, error)
	DeleteAnalysis(id uuid.UUID) error
	ListExpenses(category models.Category, offset, limit int) ([]models.Expense, int64, error)
	ExpenseTotals() (map[string]float64, error)
}

// MetricsRecorderInterface abstracts metrics recording
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
