package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Analysis holds the budget metrics computed from one batch of expenses.
// Created once per pipeline run and immutable afterwards.
type Analysis struct {
	ID                uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	TotalExpenses     float64      `gorm:"not null" json:"total_expenses"`
	DailyRate         float64      `gorm:"not null" json:"daily_rate"`
	MonthlyProjection float64      `gorm:"not null" json:"monthly_projection"`
	DaysAnalyzed      int          `gorm:"not null" json:"days_analyzed"`
	CategoryBreakdown JSONMap      `gorm:"type:text" json:"category_breakdown"`
	BudgetStatus      BudgetStatus `gorm:"type:varchar(20);not null" json:"budget_status"`
	Income            *float64     `json:"income,omitempty"`
	RemainingBudget   *float64     `json:"remaining_budget,omitempty"`
	UsagePercentage   *float64     `json:"usage_percentage,omitempty"`
	Trends            StringSlice  `gorm:"type:text" json:"trends"`
	CreatedAt         time.Time    `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for Analysis
func (a *Analysis) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.BudgetStatus == "" {
		a.BudgetStatus = BudgetStatusUnknown
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	return nil
}

// BreakdownAmounts returns the category breakdown as a typed map. The
// JSONMap values come back as float64 after a database round trip; this
// normalizes direct construction too.
func (a *Analysis) BreakdownAmounts() map[string]float64 {
	out := make(map[string]float64, len(a.CategoryBreakdown))
	for category, value := range a.CategoryBreakdown {
		switch v := value.(type) {
		case float64:
			out[category] = v
		case int:
			out[category] = float64(v)
		}
	}
	return out
}
