package models

// BudgetStatus is the budget health classification.
type BudgetStatus string

const (
	BudgetStatusHealthy    BudgetStatus = "HEALTHY"     // usage < 80%
	BudgetStatusWarning    BudgetStatus = "WARNING"     // 80% <= usage <= 100%
	BudgetStatusOverBudget BudgetStatus = "OVER_BUDGET" // usage > 100%
	BudgetStatusUnknown    BudgetStatus = "UNKNOWN"     // no income data
)

// BudgetStatusFromPercentage classifies a spending-to-income percentage.
// Negative input is defensive; it should not occur with non-negative
// amounts and positive income, and maps to UNKNOWN.
func BudgetStatusFromPercentage(percentage float64) BudgetStatus {
	switch {
	case percentage < 0:
		return BudgetStatusUnknown
	case percentage < 80:
		return BudgetStatusHealthy
	case percentage <= 100:
		return BudgetStatusWarning
	default:
		return BudgetStatusOverBudget
	}
}

// Emoji returns the display emoji for the status.
func (s BudgetStatus) Emoji() string {
	switch s {
	case BudgetStatusHealthy:
		return "✅"
	case BudgetStatusWarning:
		return "⚠️"
	case BudgetStatusOverBudget:
		return "🔴"
	default:
		return "❓"
	}
}

func (s BudgetStatus) String() string {
	return string(s)
}
