package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"

	"expense-analysis-backend/internal/config"
	"expense-analysis-backend/internal/models"
)

type AnalystServiceTestSuite struct {
	suite.Suite
	service AnalystServiceInterface
}

func (s *AnalystServiceTestSuite) SetupTest() {
	s.service = NewAnalystService(config.PipelineConfig{
		EnableSandbox:  true,
		SandboxTimeout: 5 * time.Second,
	}, noopMetrics{}, slog.Default())
}

func (s *AnalystServiceTestSuite) fixtureExpenses() []*models.Expense {
	return []*models.Expense{
		models.NewExpense("kahve", 50, models.CategoryFood),
		models.NewExpense("uber", 120, models.CategoryTransport),
		models.NewExpense("laptop", 8000, models.CategoryShopping),
		models.NewExpense("market", 300, models.CategoryFood),
	}
}

func (s *AnalystServiceTestSuite) TestEmptyInput() {
	_, err := s.service.Analyze(context.Background(), nil, 7, nil)
	s.ErrorIs(err, ErrNoExpenses)
}

func (s *AnalystServiceTestSuite) TestMetricsWithIncome() {
	income := 15000.0
	analysis, err := s.service.Analyze(context.Background(), s.fixtureExpenses(), 7, &income)
	s.Require().NoError(err)

	s.InDelta(8470.0, analysis.TotalExpenses, 0.001)
	s.InDelta(1210.0, analysis.DailyRate, 0.001)
	s.InDelta(36300.0, analysis.MonthlyProjection, 0.001)
	s.Equal(7, analysis.DaysAnalyzed)

	breakdown := analysis.BreakdownAmounts()
	s.InDelta(350.0, breakdown["FOOD"], 0.001)
	s.InDelta(120.0, breakdown["TRANSPORT"], 0.001)
	s.InDelta(8000.0, breakdown["SHOPPING"], 0.001)

	s.Equal(models.BudgetStatusOverBudget, analysis.BudgetStatus)
	s.Require().NotNil(analysis.UsagePercentage)
	s.InDelta(242.0, *analysis.UsagePercentage, 0.001)
	s.Require().NotNil(analysis.RemainingBudget)
	s.Zero(*analysis.RemainingBudget)
}

func (s *AnalystServiceTestSuite) TestNoIncomeMeansUnknownStatus() {
	analysis, err := s.service.Analyze(context.Background(), s.fixtureExpenses(), 7, nil)
	s.Require().NoError(err)

	s.Equal(models.BudgetStatusUnknown, analysis.BudgetStatus)
	s.Nil(analysis.Income)
	s.Nil(analysis.RemainingBudget)
	s.Nil(analysis.UsagePercentage)
}

func (s *AnalystServiceTestSuite) TestBudgetStatusBoundaries() {
	// One expense of 100 over 30 days projects to exactly 100 monthly.
	expenses := []*models.Expense{
		models.NewExpense("tek harcama", 100, models.CategoryOther),
	}

	tests := []struct {
		name     string
		income   float64
		expected models.BudgetStatus
	}{
		{"usage below 80 percent", 200, models.BudgetStatusHealthy},
		{"usage exactly 100 percent", 100, models.BudgetStatusWarning},
		{"usage above 100 percent", 80, models.BudgetStatusOverBudget},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			income := tt.income
			analysis, err := s.service.Analyze(context.Background(), expenses, 30, &income)
			s.Require().NoError(err)
			s.Equal(tt.expected, analysis.BudgetStatus)
		})
	}
}

func (s *AnalystServiceTestSuite) TestInvalidDaysUsesDefault() {
	analysis, err := s.service.Analyze(context.Background(), s.fixtureExpenses(), 0, nil)
	s.Require().NoError(err)
	s.Equal(30, analysis.DaysAnalyzed)
	s.InDelta(8470.0/30, analysis.DailyRate, 0.01)
}

func (s *AnalystServiceTestSuite) TestTrendsListDominantCategories() {
	income := 15000.0
	analysis, err := s.service.Analyze(context.Background(), s.fixtureExpenses(), 7, &income)
	s.Require().NoError(err)

	// Only SHOPPING holds at least 30% of the total.
	s.Require().Len(analysis.Trends, 1)
	s.Contains(analysis.Trends[0], "SHOPPING")
	s.Contains(analysis.Trends[0], "8000.0 TL")
	s.Contains(analysis.Trends[0], "🛍️")
}

func (s *AnalystServiceTestSuite) TestTrendsSortedByAmount() {
	expenses := []*models.Expense{
		models.NewExpense("kira", 6000, models.CategoryHousing),
		models.NewExpense("market", 4000, models.CategoryFood),
	}

	analysis, err := s.service.Analyze(context.Background(), expenses, 30, nil)
	s.Require().NoError(err)

	s.Require().Len(analysis.Trends, 2)
	s.Contains(analysis.Trends[0], "HOUSING")
	s.Contains(analysis.Trends[1], "FOOD")
}

func (s *AnalystServiceTestSuite) TestSandboxAndFallbackAgree() {
	categories := []models.Category{
		models.CategoryFood, models.CategoryTransport, models.CategoryShopping,
		models.CategoryHealth, models.CategoryOther,
	}
	expenses := make([]*models.Expense, 0, 40)
	for i := 0; i < 40; i++ {
		expenses = append(expenses, models.NewExpense(
			gofakeit.ProductName(),
			gofakeit.Price(1, 10000),
			categories[i%len(categories)],
		))
	}

	fallbackService := NewAnalystService(config.PipelineConfig{
		EnableSandbox:  false,
		SandboxTimeout: 5 * time.Second,
	}, noopMetrics{}, slog.Default())

	sandboxed, err := s.service.Analyze(context.Background(), expenses, 7, nil)
	s.Require().NoError(err)
	plain, err := fallbackService.Analyze(context.Background(), expenses, 7, nil)
	s.Require().NoError(err)

	s.InDelta(plain.TotalExpenses, sandboxed.TotalExpenses, 0.001)
	sandboxedBreakdown := sandboxed.BreakdownAmounts()
	for category, amount := range plain.BreakdownAmounts() {
		s.InDelta(amount, sandboxedBreakdown[category], 0.001, "category %s", category)
	}
}

func (s *AnalystServiceTestSuite) TestAggregationScript() {
	expenses := []*models.Expense{
		models.NewExpense("kahve", 50, models.CategoryFood),
		models.NewExpense(`tricky "quoted" name`, 120.5, models.CategoryOther),
	}

	script := buildAggregationScript(expenses)
	s.Equal(`groupsum([["FOOD", 50], ["OTHER", 120.5]])`, script)
}

func TestAnalystServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalystServiceTestSuite))
}
