package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"expense-analysis-backend/internal/config"
	"expense-analysis-backend/internal/dto"
	"expense-analysis-backend/internal/models"
	"expense-analysis-backend/internal/repositories"
)

var ErrNoExpensesParsed = errors.New("no expenses could be parsed from input")

// Pipeline stage names used in timings and metrics.
const (
	StageClassification = "classification"
	StageResearch       = "research"
	StageAnalysis       = "analysis"
	StageRecommendation = "recommendation"
	StagePersistence    = "persistence"
)

type orchestratorService struct {
	classifier         ClassifierServiceInterface
	researcher         ResearchServiceInterface
	analyst            AnalystServiceInterface
	strategist         StrategistServiceInterface
	expenseRepo        repositories.ExpenseRepositoryInterface
	analysisRepo       repositories.AnalysisRepositoryInterface
	recommendationRepo repositories.RecommendationRepositoryInterface
	metrics            MetricsRecorderInterface
	searchEnabled      bool
	logger             *slog.Logger
}

// NewOrchestratorService wires the pipeline stages together.
func NewOrchestratorService(
	classifier ClassifierServiceInterface,
	researcher ResearchServiceInterface,
	analyst AnalystServiceInterface,
	strategist StrategistServiceInterface,
	expenseRepo repositories.ExpenseRepositoryInterface,
	analysisRepo repositories.AnalysisRepositoryInterface,
	recommendationRepo repositories.RecommendationRepositoryInterface,
	metrics MetricsRecorderInterface,
	cfg config.PipelineConfig,
	logger *slog.Logger,
) OrchestratorInterface {
	return &orchestratorService{
		classifier:         classifier,
		researcher:         researcher,
		analyst:            analyst,
		strategist:         strategist,
		expenseRepo:        expenseRepo,
		analysisRepo:       analysisRepo,
		recommendationRepo: recommendationRepo,
		metrics:            metrics,
		searchEnabled:      cfg.EnableSearch,
		logger:             logger,
	}
}

// Run executes the stages in order. Classification, research, and
// recommendation degrade internally; only an empty parse, a failed
// analysis, or a failed persist abort the run.
func (s *orchestratorService) Run(ctx context.Context, req *dto.AnalyzeRequest) (*PipelineResult, error) {
	started := time.Now()
	result := &PipelineResult{}

	expenses := s.timedStage(result, StageClassification, func() []*models.Expense {
		return s.classifier.Classify(ctx, req.Expenses)
	})
	if len(expenses) == 0 {
		s.metrics.IncrementCounter("pipeline.failed", map[string]string{"reason": "no_expenses"})
		return nil, ErrNoExpensesParsed
	}
	result.Expenses = expenses

	if s.searchEnabled && req.SearchRequested() {
		stageStart := time.Now()
		result.ResearchedCount = s.researcher.Enrich(ctx, expenses)
		s.recordStage(result, StageResearch, time.Since(stageStart))
	}

	stageStart := time.Now()
	analysis, err := s.analyst.Analyze(ctx, expenses, req.Days, req.Income)
	s.recordStage(result, StageAnalysis, time.Since(stageStart))
	if err != nil {
		s.metrics.IncrementCounter("pipeline.failed", map[string]string{"reason": "analysis"})
		return nil, fmt.Errorf("analysis stage failed: %w", err)
	}
	result.Analysis = analysis

	stageStart = time.Now()
	recommendation, err := s.strategist.Recommend(ctx, analysis)
	s.recordStage(result, StageRecommendation, time.Since(stageStart))
	if err != nil {
		s.metrics.IncrementCounter("pipeline.failed", map[string]string{"reason": "recommendation"})
		return nil, fmt.Errorf("recommendation stage failed: %w", err)
	}
	result.Recommendation = recommendation

	stageStart = time.Now()
	err = s.persist(result)
	s.recordStage(result, StagePersistence, time.Since(stageStart))
	if err != nil {
		s.metrics.IncrementCounter("pipeline.failed", map[string]string{"reason": "persistence"})
		return nil, err
	}

	result.TotalDuration = time.Since(started)
	s.metrics.IncrementCounter("pipeline.completed", map[string]string{
		"budget_status": string(analysis.BudgetStatus),
	})
	s.metrics.RecordGauge("pipeline.expenses", float64(len(expenses)), nil)

	s.logger.Info("pipeline completed",
		"analysis_id", analysis.ID.String(),
		"expenses", len(expenses),
		"researched", result.ResearchedCount,
		"budget_status", string(analysis.BudgetStatus),
		"duration_ms", result.TotalDuration.Milliseconds(),
	)

	return result, nil
}

func (s *orchestratorService) persist(result *PipelineResult) error {
	if err := s.analysisRepo.Create(result.Analysis); err != nil {
		return fmt.Errorf("failed to persist analysis: %w", err)
	}

	result.Recommendation.AnalysisID = result.Analysis.ID
	if err := s.recommendationRepo.Create(result.Recommendation); err != nil {
		return fmt.Errorf("failed to persist recommendation: %w", err)
	}

	if err := s.expenseRepo.CreateBatch(result.Expenses); err != nil {
		return fmt.Errorf("failed to persist expenses: %w", err)
	}

	return nil
}

// GetAnalysis returns one archived analysis with its recommendation. A
// missing recommendation is not an error; old rows may predate the
// strategist stage.
func (s *orchestratorService) GetAnalysis(id uuid.UUID) (*models.Analysis, *models.Recommendation, error) {
	analysis, err := s.analysisRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	recommendation, err := s.recommendationRepo.GetByAnalysisID(id)
	if err != nil {
		if !errors.Is(err, repositories.ErrRecommendationNotFound) {
			return nil, nil, err
		}
		recommendation = nil
	}

	return analysis, recommendation, nil
}

// LatestAnalysis returns the most recent analysis with its
// recommendation, tolerating a missing recommendation the same way
// GetAnalysis does.
func (s *orchestratorService) LatestAnalysis() (*models.Analysis, *models.Recommendation, error) {
	analysis, err := s.analysisRepo.GetLatest()
	if err != nil {
		return nil, nil, err
	}
	return s.GetAnalysis(analysis.ID)
}

func (s *orchestratorService) ListAnalyses(offset, limit int) ([]models.Analysis, int64, error) {
	return s.analysisRepo.ListAll(offset, limit)
}

// DeleteAnalysis removes an archived analysis.
func (s *orchestratorService) DeleteAnalysis(id uuid.UUID) error {
	return s.analysisRepo.Delete(id)
}

// ExpenseTotals sums the all-time stored spend per category.
func (s *orchestratorService) ExpenseTotals() (map[string]float64, error) {
	return s.expenseRepo.GetTotalsByCategory()
}

// ListExpenses pages through stored expenses, optionally narrowed to a
// single category. An empty category means no filter.
func (s *orchestratorService) ListExpenses(category models.Category, offset, limit int) ([]models.Expense, int64, error) {
	if category != "" {
		return s.expenseRepo.GetByCategory(category, offset, limit)
	}
	return s.expenseRepo.GetAll(offset, limit)
}

func (s *orchestratorService) timedStage(result *PipelineResult, stage string, fn func() []*models.Expense) []*models.Expense {
	started := time.Now()
	out := fn()
	s.recordStage(result, stage, time.Since(started))
	return out
}

func (s *orchestratorService) recordStage(result *PipelineResult, stage string, duration time.Duration) {
	result.StageTimings = append(result.StageTimings, StageTiming{Stage: stage, Duration: duration})
	s.metrics.RecordProcessingTime("pipeline.stage."+stage, duration)
}
