package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"expense-analysis-backend/internal/config"
	"expense-analysis-backend/internal/models"
	"expense-analysis-backend/internal/sandbox"
)

var ErrNoExpenses = errors.New("no expenses to analyze")

const (
	projectionDays  = 30
	trendSharePct   = 30.0
	defaultDaysSpan = 30
)

type analystService struct {
	evaluator      *sandbox.Evaluator
	sandboxEnabled bool
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
}

// NewAnalystService creates the aggregation and budget analysis stage.
// Category totals run through the sandboxed evaluator when enabled, with
// an in-process fallback producing identical numbers.
func NewAnalystService(cfg config.PipelineConfig, metrics MetricsRecorderInterface, logger *slog.Logger) AnalystServiceInterface {
	return &analystService{
		evaluator:      sandbox.New(cfg.SandboxTimeout),
		sandboxEnabled: cfg.EnableSandbox,
		metrics:        metrics,
		logger:         logger,
	}
}

// Analyze computes totals, projections, and budget status. Days below 1
// are treated as the default period. Budget fields stay nil without
// income data.
func (s *analystService) Analyze(ctx context.Context, expenses []*models.Expense, days int, income *float64) (*models.Analysis, error) {
	if len(expenses) == 0 {
		return nil, ErrNoExpenses
	}

	if days < 1 {
		days = defaultDaysSpan
	}

	breakdown := s.aggregate(ctx, expenses)

	total := 0.0
	for _, amount := range breakdown {
		total += amount
	}
	total = roundMoney(total)

	dailyRate := roundMoney(total / float64(days))
	monthlyProjection := roundMoney(dailyRate * projectionDays)

	analysis := &models.Analysis{
		TotalExpenses:     total,
		DailyRate:         dailyRate,
		MonthlyProjection: monthlyProjection,
		DaysAnalyzed:      days,
		CategoryBreakdown: breakdownToJSONMap(breakdown),
		BudgetStatus:      models.BudgetStatusUnknown,
		Trends:            s.trends(breakdown, total),
	}

	if income != nil && *income > 0 {
		usage := roundMoney(monthlyProjection / *income * 100)
		remaining := roundMoney(*income - monthlyProjection)
		if remaining < 0 {
			remaining = 0
		}

		analysis.Income = income
		analysis.UsagePercentage = &usage
		analysis.RemainingBudget = &remaining
		analysis.BudgetStatus = models.BudgetStatusFromPercentage(usage)
	}

	s.logger.Info("analysis computed",
		"total", total,
		"days", days,
		"budget_status", string(analysis.BudgetStatus),
	)

	return analysis, nil
}

// aggregate sums amounts per category. The sandboxed path evaluates a
// generated aggregation script; any sandbox failure falls back to the
// plain loop.
func (s *analystService) aggregate(ctx context.Context, expenses []*models.Expense) map[string]float64 {
	if s.sandboxEnabled {
		if totals, err := s.aggregateSandboxed(ctx, expenses); err == nil {
			return totals
		} else {
			s.logger.Warn("sandboxed aggregation failed, using fallback", "error", err)
			s.metrics.IncrementCounter("sandbox.fallback", nil)
		}
	}

	return aggregateInProcess(expenses)
}

func (s *analystService) aggregateSandboxed(ctx context.Context, expenses []*models.Expense) (map[string]float64, error) {
	result, err := s.evaluator.Eval(ctx, buildAggregationScript(expenses))
	if err != nil {
		return nil, err
	}

	totals, ok := result.(map[string]float64)
	if !ok {
		return nil, fmt.Errorf("unexpected aggregation result type %T", result)
	}

	for category, amount := range totals {
		totals[category] = roundMoney(amount)
	}
	return totals, nil
}

// buildAggregationScript renders the expenses as a groupsum call. Category
// names are quoted with strconv so a hostile description can never break
// out of the literal.
func buildAggregationScript(expenses []*models.Expense) string {
	var b strings.Builder
	b.WriteString("groupsum([")
	for i, e := range expenses {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("[")
		b.WriteString(strconv.Quote(string(e.Category)))
		b.WriteString(", ")
		b.WriteString(strconv.FormatFloat(e.Amount, 'f', -1, 64))
		b.WriteString("]")
	}
	b.WriteString("])")
	return b.String()
}

func aggregateInProcess(expenses []*models.Expense) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range expenses {
		totals[string(e.Category)] += e.Amount
	}
	for category, amount := range totals {
		totals[category] = roundMoney(amount)
	}
	return totals
}

// trends lists categories holding at least 30% of total spend, largest
// first.
func (s *analystService) trends(breakdown map[string]float64, total float64) models.StringSlice {
	if total <= 0 {
		return models.StringSlice{}
	}

	type entry struct {
		category string
		amount   float64
		share    float64
	}
	entries := make([]entry, 0, len(breakdown))
	for category, amount := range breakdown {
		share := amount / total * 100
		if share >= trendSharePct {
			entries = append(entries, entry{category, amount, share})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].amount != entries[j].amount {
			return entries[i].amount > entries[j].amount
		}
		return entries[i].category < entries[j].category
	})

	trends := make(models.StringSlice, 0, len(entries))
	for _, e := range entries {
		trends = append(trends, fmt.Sprintf("%s %s: %.1f TL (%.1f%%)",
			models.Category(e.category).Emoji(), e.category, e.amount, e.share))
	}
	return trends
}

func breakdownToJSONMap(breakdown map[string]float64) models.JSONMap {
	out := make(models.JSONMap, len(breakdown))
	for category, amount := range breakdown {
		out[category] = amount
	}
	return out
}
