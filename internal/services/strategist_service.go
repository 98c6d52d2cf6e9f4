package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"expense-analysis-backend/internal/llm"
	"expense-analysis-backend/internal/models"
)

const (
	dominantSharePct  = 40.0
	reductionRate     = 0.1
	dailyTargetRate   = 0.90
	monthlyTargetRate = 0.85
	fallbackSummary   = "Budget analysis completed."
	minSummaryLength  = 20
)

var fallbackSuggestions = []string{
	"Track your expenses regularly.",
	"Create a budget plan.",
}

type strategistService struct {
	generator llm.GeneratorInterface
	logger    *slog.Logger
}

// NewStrategistService creates the recommendation stage.
func NewStrategistService(generator llm.GeneratorInterface, logger *slog.Logger) StrategistServiceInterface {
	return &strategistService{
		generator: generator,
		logger:    logger,
	}
}

// Recommend builds the advice for an analysis. The narrative parts come
// from the language model and degrade to canned text when it is down; the
// action plan and goals are always computed from the numbers.
func (s *strategistService) Recommend(ctx context.Context, analysis *models.Analysis) (*models.Recommendation, error) {
	summary, suggestions := s.narrative(ctx, analysis)

	return &models.Recommendation{
		Summary:     summary,
		Suggestions: suggestions,
		Actions:     buildActionPlan(analysis),
		Goals:       buildGoals(analysis),
		AnalysisID:  analysis.ID,
	}, nil
}

func (s *strategistService) narrative(ctx context.Context, analysis *models.Analysis) (string, models.StringSlice) {
	prompt := llm.StrategistPrompt(
		analysis.TotalExpenses,
		analysis.DailyRate,
		analysis.MonthlyProjection,
		analysis.DaysAnalyzed,
		llm.FormatBudgetInfo(string(analysis.BudgetStatus), analysis.BudgetStatus.Emoji(),
			analysis.Income, analysis.RemainingBudget, analysis.UsagePercentage),
		llm.FormatCategories(analysis.BreakdownAmounts()),
		llm.FormatTrends(analysis.Trends),
	)

	response, err := s.generator.Generate(ctx, llm.GenerateRequest{
		Prompt:      prompt,
		System:      llm.StrategistSystemPrompt,
		TaskType:    llm.TaskRecommend,
		Temperature: 0.8,
		MaxTokens:   1024,
	})
	if err != nil {
		s.logger.Warn("recommendation generation failed, using fallback", "error", err)
		return fallbackSummary, append(models.StringSlice{}, fallbackSuggestions...)
	}

	summary, suggestions := parseNarrative(response)
	if summary == "" {
		summary = fallbackSummary
	}
	if len(suggestions) == 0 {
		suggestions = append(models.StringSlice{}, fallbackSuggestions...)
	}
	return summary, suggestions
}

// parseNarrative extracts a summary and suggestion list from free-form
// model output. The summary is the first substantial non-header line;
// suggestions are the numbered or bulleted lines.
func parseNarrative(response string) (string, models.StringSlice) {
	var summary string
	suggestions := models.StringSlice{}

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isHeaderLine(line) {
			continue
		}

		if item, ok := listItem(line); ok {
			suggestions = append(suggestions, item)
			continue
		}

		if summary == "" {
			candidate := strings.Trim(line, "*_ ")
			if len(candidate) > minSummaryLength {
				summary = candidate
			}
		}
	}

	return summary, suggestions
}

// isHeaderLine reports markdown headers and the section labels the
// model tends to wrap around the summary and suggestion blocks.
func isHeaderLine(line string) bool {
	if strings.HasPrefix(line, "#") {
		return true
	}
	lower := strings.ToLower(line)
	return strings.Contains(lower, "status") || strings.Contains(lower, "recommendation")
}

// listItem strips the list marker from a numbered or bulleted line.
func listItem(line string) (string, bool) {
	if line == "" {
		return "", false
	}

	switch {
	case line[0] >= '0' && line[0] <= '9':
		rest := strings.TrimLeft(line, "0123456789")
		if rest == "" || (rest[0] != '.' && rest[0] != ')') {
			return "", false
		}
		return strings.Trim(rest[1:], "* "), true
	case line[0] == '-' || line[0] == '*':
		item := strings.Trim(strings.TrimLeft(line, "-*"), "* ")
		if item == "" {
			return "", false
		}
		return item, true
	}

	return "", false
}

type categoryShare struct {
	category string
	amount   float64
	share    float64
}

// buildActionPlan derives the prioritized steps from the budget status.
func buildActionPlan(analysis *models.Analysis) models.ActionItems {
	shares := sortedShares(analysis)
	days := analysis.DaysAnalyzed
	if days < 1 {
		days = 1
	}
	monthlyReduction := roundMoney(analysis.MonthlyProjection * reductionRate)

	var actions models.ActionItems

	switch analysis.BudgetStatus {
	case models.BudgetStatusHealthy:
		actions = append(actions,
			action("Maintain your current spending habits", models.PriorityLow, 0),
			action("Grow your savings with the monthly surplus", models.PriorityLow, monthlyReduction*2),
		)
	case models.BudgetStatusWarning:
		if len(shares) > 0 {
			actions = append(actions, action(
				fmt.Sprintf("Reduce %s expenses by 15%%", shares[0].category),
				models.PriorityMedium,
				monthlySavings(shares[0].amount, 0.15, days),
			))
		}
		actions = append(actions, action(
			"Review and cancel unused subscriptions",
			models.PriorityMedium,
			monthlyReduction,
		))
	default:
		// Over-budget plan. Statuses without income data get the same
		// aggressive cuts rather than a softer plan of their own.
		if len(shares) > 0 {
			actions = append(actions, action(
				fmt.Sprintf("Cut %s expenses by 30%%", shares[0].category),
				models.PriorityHigh,
				monthlySavings(shares[0].amount, 0.30, days),
			))
		}
		if len(shares) > 1 {
			actions = append(actions, action(
				fmt.Sprintf("Cut %s expenses by 20%%", shares[1].category),
				models.PriorityHigh,
				monthlySavings(shares[1].amount, 0.20, days),
			))
		}
		actions = append(actions, action(
			"Stop all non-essential purchases immediately",
			models.PriorityUrgent,
			monthlyReduction*2,
		))
	}

	// A single category dominating the spend gets its own savings plan
	// unless the plan already targets it.
	for _, share := range shares {
		if share.share <= dominantSharePct {
			break
		}
		if mentioned(actions, share.category) {
			continue
		}
		actions = append(actions, action(
			fmt.Sprintf("Create a savings plan for %s spending", share.category),
			models.PriorityMedium,
			monthlySavings(share.amount, 0.15, days),
		))
		break
	}

	return actions
}

// buildGoals sets the measurable targets relative to current rates.
func buildGoals(analysis *models.Analysis) models.Goals {
	return models.Goals{
		{
			Description:  "Reduce daily spending",
			CurrentValue: analysis.DailyRate,
			TargetValue:  roundMoney(analysis.DailyRate * dailyTargetRate),
			Timeframe:    "This month",
		},
		{
			Description:  "Lower monthly projection",
			CurrentValue: analysis.MonthlyProjection,
			TargetValue:  roundMoney(analysis.MonthlyProjection * monthlyTargetRate),
			Timeframe:    "This month",
		},
	}
}

func sortedShares(analysis *models.Analysis) []categoryShare {
	breakdown := analysis.BreakdownAmounts()
	if analysis.TotalExpenses <= 0 {
		return nil
	}

	shares := make([]categoryShare, 0, len(breakdown))
	for category, amount := range breakdown {
		shares = append(shares, categoryShare{
			category: category,
			amount:   amount,
			share:    amount / analysis.TotalExpenses * 100,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].amount != shares[j].amount {
			return shares[i].amount > shares[j].amount
		}
		return shares[i].category < shares[j].category
	})
	return shares
}

func action(description string, priority models.ActionPriority, savings float64) models.ActionItem {
	savings = roundMoney(savings)
	return models.ActionItem{
		Description:      description,
		Priority:         priority,
		Impact:           impactFor(priority),
		PotentialSavings: &savings,
	}
}

func impactFor(priority models.ActionPriority) string {
	switch priority {
	case models.PriorityLow:
		return "low"
	case models.PriorityMedium:
		return "medium"
	default:
		return "high"
	}
}

// monthlySavings projects a percentage cut of a period total onto a month.
func monthlySavings(amount, rate float64, days int) float64 {
	return roundMoney(amount * rate * 30 / float64(days))
}

func mentioned(actions models.ActionItems, category string) bool {
	for _, a := range actions {
		if strings.Contains(a.Description, category) {
			return true
		}
	}
	return false
}
