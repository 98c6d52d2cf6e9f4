package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Metadata keys attached by the price research stage.
const (
	MetadataKeySearchResults = "search_results"
	MetadataKeySearched      = "searched"
)

// Expense is a single parsed spending entry. An Amount of 0 is a sentinel
// meaning the price could not be parsed and should be investigated by
// price research.
type Expense struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    Category  `gorm:"type:varchar(20);not null;default:'OTHER';index" json:"category"`
	Metadata    JSONMap   `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt   time.Time `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Category == "" {
		e.Category = CategoryOther
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return nil
}

// NewExpense builds an expense with a fresh id and timestamp. Used by the
// classifier stage; persistence hooks keep the same defaults for rows
// created directly.
func NewExpense(description string, amount float64, category Category) *Expense {
	return &Expense{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Category:    category,
		Metadata:    JSONMap{},
		CreatedAt:   time.Now().UTC(),
	}
}

// NeedsResearch reports whether the expense qualifies for price research:
// the amount is at or above the threshold, or it carries the zero
// unknown-price sentinel.
func (e *Expense) NeedsResearch(threshold float64) bool {
	return e.Amount >= threshold || e.Amount == 0
}
