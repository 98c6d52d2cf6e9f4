package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"expense-analysis-backend/internal/config"
	"expense-analysis-backend/internal/database"
	"expense-analysis-backend/internal/dto"
	"expense-analysis-backend/internal/models"
	"expense-analysis-backend/internal/repositories"
	"expense-analysis-backend/internal/repositories/repository_mocks"
	"expense-analysis-backend/internal/search"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	classifier         *stubClassifier
	researcher         *stubResearcher
	analyst            *stubAnalyst
	strategist         *stubStrategist
	expenseRepo        *repository_mocks.MockExpenseRepositoryInterface
	analysisRepo       *repository_mocks.MockAnalysisRepositoryInterface
	recommendationRepo *repository_mocks.MockRecommendationRepositoryInterface
}

// Stage stubs keep the unit tests focused on orchestration order and
// error handling.
type stubClassifier struct{ expenses []*models.Expense }

func (c *stubClassifier) Classify(ctx context.Context, texts []string) []*models.Expense {
	return c.expenses
}

type stubResearcher struct {
	called bool
	count  int
}

func (r *stubResearcher) Enrich(ctx context.Context, expenses []*models.Expense) int {
	r.called = true
	return r.count
}

type stubAnalyst struct {
	analysis *models.Analysis
	err      error
}

func (a *stubAnalyst) Analyze(ctx context.Context, expenses []*models.Expense, days int, income *float64) (*models.Analysis, error) {
	return a.analysis, a.err
}

type stubStrategist struct {
	recommendation *models.Recommendation
	err            error
}

func (s *stubStrategist) Recommend(ctx context.Context, analysis *models.Analysis) (*models.Recommendation, error) {
	return s.recommendation, s.err
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.classifier = &stubClassifier{expenses: []*models.Expense{
		models.NewExpense("kahve", 50, models.CategoryFood),
	}}
	s.researcher = &stubResearcher{count: 1}
	s.analyst = &stubAnalyst{analysis: &models.Analysis{
		TotalExpenses: 50,
		BudgetStatus:  models.BudgetStatusUnknown,
	}}
	s.strategist = &stubStrategist{recommendation: &models.Recommendation{
		Summary: "Budget analysis completed.",
	}}
	s.expenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.analysisRepo = repository_mocks.NewMockAnalysisRepositoryInterface(s.ctrl)
	s.recommendationRepo = repository_mocks.NewMockRecommendationRepositoryInterface(s.ctrl)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(searchEnabled bool) OrchestratorInterface {
	return NewOrchestratorService(
		s.classifier,
		s.researcher,
		s.analyst,
		s.strategist,
		s.expenseRepo,
		s.analysisRepo,
		s.recommendationRepo,
		noopMetrics{},
		config.PipelineConfig{EnableSearch: searchEnabled},
		slog.Default(),
	)
}

func (s *OrchestratorTestSuite) expectPersistence() {
	s.analysisRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.recommendationRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.expenseRepo.EXPECT().CreateBatch(gomock.Any()).Return(nil)
}

func (s *OrchestratorTestSuite) TestRunHappyPath() {
	s.expectPersistence()

	result, err := s.newOrchestrator(true).Run(context.Background(), &dto.AnalyzeRequest{
		Expenses: []string{"kahve 50 TL"},
		Days:     7,
	})

	s.Require().NoError(err)
	s.Len(result.Expenses, 1)
	s.Equal(1, result.ResearchedCount)
	s.True(s.researcher.called)
	s.NotNil(result.Analysis)
	s.NotNil(result.Recommendation)
	s.Equal(result.Analysis.ID, result.Recommendation.AnalysisID)

	stages := make([]string, 0, len(result.StageTimings))
	for _, t := range result.StageTimings {
		stages = append(stages, t.Stage)
	}
	s.Equal([]string{
		StageClassification,
		StageResearch,
		StageAnalysis,
		StageRecommendation,
		StagePersistence,
	}, stages)
}

func (s *OrchestratorTestSuite) TestRunSearchDisabled() {
	s.expectPersistence()

	result, err := s.newOrchestrator(false).Run(context.Background(), &dto.AnalyzeRequest{
		Expenses: []string{"kahve 50 TL"},
	})

	s.Require().NoError(err)
	s.False(s.researcher.called)
	s.Zero(result.ResearchedCount)
	for _, t := range result.StageTimings {
		s.NotEqual(StageResearch, t.Stage)
	}
}

func (s *OrchestratorTestSuite) TestRunSearchDeclinedByRequest() {
	s.expectPersistence()
	declined := false

	result, err := s.newOrchestrator(true).Run(context.Background(), &dto.AnalyzeRequest{
		Expenses:     []string{"kahve 50 TL"},
		EnableSearch: &declined,
	})

	s.Require().NoError(err)
	s.False(s.researcher.called)
	s.Zero(result.ResearchedCount)
}

func (s *OrchestratorTestSuite) TestRunNoExpensesParsed() {
	s.classifier.expenses = nil

	_, err := s.newOrchestrator(true).Run(context.Background(), &dto.AnalyzeRequest{
		Expenses: []string{"   "},
	})

	s.ErrorIs(err, ErrNoExpensesParsed)
}

func (s *OrchestratorTestSuite) TestRunAnalysisFailure() {
	s.analyst.analysis = nil
	s.analyst.err = ErrNoExpenses

	_, err := s.newOrchestrator(true).Run(context.Background(), &dto.AnalyzeRequest{
		Expenses: []string{"kahve 50 TL"},
	})

	s.ErrorIs(err, ErrNoExpenses)
}

func (s *OrchestratorTestSuite) TestRunPersistenceFailure() {
	s.analysisRepo.EXPECT().Create(gomock.Any()).Return(errors.New("disk full"))

	_, err := s.newOrchestrator(true).Run(context.Background(), &dto.AnalyzeRequest{
		Expenses: []string{"kahve 50 TL"},
	})

	s.Error(err)
	s.Contains(err.Error(), "failed to persist analysis")
}

func (s *OrchestratorTestSuite) TestLatestAnalysis() {
	analysis := &models.Analysis{BudgetStatus: models.BudgetStatusHealthy}
	s.analysisRepo.EXPECT().GetLatest().Return(analysis, nil)
	s.analysisRepo.EXPECT().GetByID(analysis.ID).Return(analysis, nil)
	s.recommendationRepo.EXPECT().GetByAnalysisID(analysis.ID).Return(nil, repositories.ErrRecommendationNotFound)

	found, rec, err := s.newOrchestrator(true).LatestAnalysis()

	s.Require().NoError(err)
	s.Equal(analysis, found)
	s.Nil(rec)
}

func (s *OrchestratorTestSuite) TestDeleteAnalysis() {
	id := uuid.New()
	s.analysisRepo.EXPECT().Delete(id).Return(nil)

	s.NoError(s.newOrchestrator(true).DeleteAnalysis(id))
}

func (s *OrchestratorTestSuite) TestExpenseTotals() {
	s.expenseRepo.EXPECT().
		GetTotalsByCategory().
		Return(map[string]float64{"FOOD": 350}, nil)

	totals, err := s.newOrchestrator(true).ExpenseTotals()
	s.Require().NoError(err)
	s.InDelta(350.0, totals["FOOD"], 0.001)
}

func (s *OrchestratorTestSuite) TestListExpensesByCategory() {
	s.expenseRepo.EXPECT().
		GetByCategory(models.CategoryFood, 0, 10).
		Return([]models.Expense{}, int64(0), nil)

	_, _, err := s.newOrchestrator(true).ListExpenses(models.CategoryFood, 0, 10)
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestGetAnalysisWithoutRecommendation() {
	analysis := &models.Analysis{BudgetStatus: models.BudgetStatusUnknown}
	s.analysisRepo.EXPECT().GetByID(gomock.Any()).Return(analysis, nil)
	s.recommendationRepo.EXPECT().GetByAnalysisID(gomock.Any()).Return(nil, repositories.ErrRecommendationNotFound)

	found, rec, err := s.newOrchestrator(true).GetAnalysis(analysis.ID)

	s.Require().NoError(err)
	s.Equal(analysis, found)
	s.Nil(rec)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

// PipelineIntegrationTestSuite runs the real stages end to end against an
// in-memory database. The language model is offline so classification
// falls back to regex and keywords and the strategist uses canned text.
type PipelineIntegrationTestSuite struct {
	suite.Suite
	db           *database.DB
	orchestrator OrchestratorInterface
}

func (s *PipelineIntegrationTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	logger := slog.Default()

	pipelineCfg := config.PipelineConfig{
		EnableSearch:    true,
		SearchThreshold: 100,
		EnableSandbox:   true,
		SandboxTimeout:  5 * time.Second,
	}

	generator := &stubGenerator{}
	searchClient := &stubSearchClient{
		searchFn: func(query string) ([]search.Result, error) {
			return []search.Result{{Title: "price overview", Link: "https://example.com", Snippet: "prices"}}, nil
		},
	}

	s.orchestrator = NewOrchestratorService(
		NewClassifierService(generator, noopMetrics{}, logger),
		NewResearchService(searchClient, pipelineCfg, noopMetrics{}, logger),
		NewAnalystService(pipelineCfg, noopMetrics{}, logger),
		NewStrategistService(generator, logger),
		repositories.NewExpenseRepository(s.db.DB),
		repositories.NewAnalysisRepository(s.db.DB),
		repositories.NewRecommendationRepository(s.db.DB),
		noopMetrics{},
		pipelineCfg,
		logger,
	)
}

func (s *PipelineIntegrationTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *PipelineIntegrationTestSuite) TestFullPipeline() {
	income := 15000.0
	result, err := s.orchestrator.Run(context.Background(), &dto.AnalyzeRequest{
		Expenses: []string{"kahve 50 TL", "uber 120 TL", "laptop 8000 TL"},
		Income:   &income,
		Days:     7,
	})
	s.Require().NoError(err)

	s.Require().Len(result.Expenses, 3)
	s.Equal(models.CategoryFood, result.Expenses[0].Category)
	s.Equal(models.CategoryTransport, result.Expenses[1].Category)
	s.Equal(models.CategoryShopping, result.Expenses[2].Category)

	s.InDelta(8170.0, result.Analysis.TotalExpenses, 0.001)
	s.Equal(models.BudgetStatusOverBudget, result.Analysis.BudgetStatus)

	// uber crosses the threshold together with the laptop.
	s.Equal(2, result.ResearchedCount)

	urgent := false
	for _, a := range result.Recommendation.Actions {
		if a.Priority == models.PriorityHigh || a.Priority == models.PriorityUrgent {
			urgent = true
		}
	}
	s.True(urgent)
	s.Len(result.Recommendation.Goals, 2)

	// Everything landed in storage.
	analysis, rec, err := s.orchestrator.GetAnalysis(result.Analysis.ID)
	s.Require().NoError(err)
	s.Equal(result.Analysis.ID, analysis.ID)
	s.Require().NotNil(rec)
	s.Equal(result.Recommendation.ID, rec.ID)

	expenses, total, err := s.orchestrator.ListExpenses("", 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Len(expenses, 3)

	foodOnly, foodTotal, err := s.orchestrator.ListExpenses(models.CategoryFood, 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(1), foodTotal)
	s.Len(foodOnly, 1)
	s.Equal("kahve", foodOnly[0].Description)

	analyses, count, err := s.orchestrator.ListAnalyses(0, 10)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
	s.Len(analyses, 1)
}

func (s *PipelineIntegrationTestSuite) TestRunWithUnparseableOnly() {
	result, err := s.orchestrator.Run(context.Background(), &dto.AnalyzeRequest{
		Expenses: []string{"tamamen anlaşılmaz bir metin"},
		Days:     7,
	})

	// The text becomes a zero-amount sentinel expense, gets researched,
	// and the analysis still completes with empty totals.
	s.Require().NoError(err)
	s.Require().Len(result.Expenses, 1)
	s.Zero(result.Expenses[0].Amount)
	s.Equal(1, result.ResearchedCount)
	s.Zero(result.Analysis.TotalExpenses)
}

func TestPipelineIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineIntegrationTestSuite))
}
