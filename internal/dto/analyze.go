package dto

import (
	"time"

	"github.com/google/uuid"

	"expense-analysis-backend/internal/models"
)

// AnalyzeRequest is the input for one pipeline run: raw expense texts plus
// optional budget context. EnableSearch defaults to true; the pipeline
// config can still disable research globally.
type AnalyzeRequest struct {
	Expenses     []string `json:"expense_texts" validate:"required,min=1,max=100,dive,required,expense_text"`
	Income       *float64 `json:"income,omitempty" validate:"omitempty,gt=0"`
	Days         int      `json:"days_analyzed,omitempty" validate:"omitempty,gte=1,lte=365"`
	EnableSearch *bool    `json:"enable_search,omitempty"`
}

// SearchRequested reports whether the caller wants price research.
func (r *AnalyzeRequest) SearchRequested() bool {
	return r.EnableSearch == nil || *r.EnableSearch
}

// ExpenseResponse is one parsed expense in API responses
type ExpenseResponse struct {
	ID          uuid.UUID              `json:"id"`
	Description string                 `json:"description"`
	Amount      float64                `json:"amount"`
	Category    string                 `json:"category"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// AnalysisResponse carries the computed budget metrics
type AnalysisResponse struct {
	ID                uuid.UUID          `json:"id"`
	TotalExpenses     float64            `json:"totalExpenses"`
	DailyRate         float64            `json:"dailyRate"`
	MonthlyProjection float64            `json:"monthlyProjection"`
	DaysAnalyzed      int                `json:"daysAnalyzed"`
	CategoryBreakdown map[string]float64 `json:"categoryBreakdown"`
	BudgetStatus      string             `json:"budgetStatus"`
	Income            *float64           `json:"income,omitempty"`
	RemainingBudget   *float64           `json:"remainingBudget,omitempty"`
	UsagePercentage   *float64           `json:"usagePercentage,omitempty"`
	Trends            []string           `json:"trends"`
	CreatedAt         time.Time          `json:"createdAt"`
}

// ActionItemResponse is one prioritized action plan entry
type ActionItemResponse struct {
	Description      string   `json:"description"`
	Priority         string   `json:"priority"`
	Impact           string   `json:"impact,omitempty"`
	PotentialSavings *float64 `json:"potentialSavings,omitempty"`
}

// GoalResponse is one measurable savings goal
type GoalResponse struct {
	Description  string  `json:"description"`
	CurrentValue float64 `json:"currentValue"`
	TargetValue  float64 `json:"targetValue"`
	Timeframe    string  `json:"timeframe"`
	Category     string  `json:"category,omitempty"`
}

// RecommendationResponse carries the generated advice
type RecommendationResponse struct {
	ID          uuid.UUID            `json:"id"`
	Summary     string               `json:"summary"`
	Suggestions []string             `json:"suggestions"`
	Actions     []ActionItemResponse `json:"actions"`
	Goals       []GoalResponse       `json:"goals"`
	AnalysisID  uuid.UUID            `json:"analysisId"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// StageTimingResponse reports how long one pipeline stage took
type StageTimingResponse struct {
	Stage      string `json:"stage"`
	DurationMS int64  `json:"durationMs"`
}

// AnalyzeResponse is the full result of one pipeline run
type AnalyzeResponse struct {
	AnalysisID      uuid.UUID              `json:"analysisId"`
	Expenses        []ExpenseResponse      `json:"expenses"`
	Analysis        AnalysisResponse       `json:"analysis"`
	Recommendation  RecommendationResponse `json:"recommendation"`
	StageTimings    []StageTimingResponse  `json:"stageTimings"`
	TotalDurationMS int64                  `json:"totalDurationMs"`
}

// AnalysisDetailResponse is one archived analysis with its recommendation
type AnalysisDetailResponse struct {
	Analysis       AnalysisResponse        `json:"analysis"`
	Recommendation *RecommendationResponse `json:"recommendation,omitempty"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

// ListAnalysesResponse is the paginated analysis history
type ListAnalysesResponse struct {
	Analyses   []AnalysisResponse `json:"analyses"`
	Pagination PaginationInfo     `json:"pagination"`
}

// ListExpensesResponse is the paginated stored expense list
type ListExpensesResponse struct {
	Expenses   []ExpenseResponse `json:"expenses"`
	Pagination PaginationInfo    `json:"pagination"`
}

// ExpenseTotalsResponse maps each category to its all-time spend
type ExpenseTotalsResponse struct {
	Totals map[string]float64 `json:"totals"`
}

// FromExpense converts a stored expense to its response shape
func FromExpense(e *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    string(e.Category),
		Metadata:    e.Metadata,
		CreatedAt:   e.CreatedAt,
	}
}

// FromExpenses converts a slice of expenses, never returning nil
func FromExpenses(expenses []*models.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, FromExpense(e))
	}
	return out
}

// FromAnalysis converts a stored analysis to its response shape
func FromAnalysis(a *models.Analysis) AnalysisResponse {
	return AnalysisResponse{
		ID:                a.ID,
		TotalExpenses:     a.TotalExpenses,
		DailyRate:         a.DailyRate,
		MonthlyProjection: a.MonthlyProjection,
		DaysAnalyzed:      a.DaysAnalyzed,
		CategoryBreakdown: a.BreakdownAmounts(),
		BudgetStatus:      string(a.BudgetStatus),
		Income:            a.Income,
		RemainingBudget:   a.RemainingBudget,
		UsagePercentage:   a.UsagePercentage,
		Trends:            a.Trends,
		CreatedAt:         a.CreatedAt,
	}
}

// FromRecommendation converts a stored recommendation to its response shape
func FromRecommendation(r *models.Recommendation) RecommendationResponse {
	actions := make([]ActionItemResponse, 0, len(r.Actions))
	for _, a := range r.Actions {
		actions = append(actions, ActionItemResponse{
			Description:      a.Description,
			Priority:         string(a.Priority),
			Impact:           a.Impact,
			PotentialSavings: a.PotentialSavings,
		})
	}

	goals := make([]GoalResponse, 0, len(r.Goals))
	for _, g := range r.Goals {
		goals = append(goals, GoalResponse{
			Description:  g.Description,
			CurrentValue: g.CurrentValue,
			TargetValue:  g.TargetValue,
			Timeframe:    g.Timeframe,
			Category:     g.Category,
		})
	}

	return RecommendationResponse{
		ID:          r.ID,
		Summary:     r.Summary,
		Suggestions: r.Suggestions,
		Actions:     actions,
		Goals:       goals,
		AnalysisID:  r.AnalysisID,
		CreatedAt:   r.CreatedAt,
	}
}
