package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActionPriority is the urgency level of an action item.
type ActionPriority string

const (
	PriorityLow    ActionPriority = "LOW"
	PriorityMedium ActionPriority = "MEDIUM"
	PriorityHigh   ActionPriority = "HIGH"
	PriorityUrgent ActionPriority = "URGENT"
)

// ActionItem is a single prioritized step in the action plan.
type ActionItem struct {
	Description      string         `json:"description"`
	Priority         ActionPriority `json:"priority"`
	Impact           string         `json:"impact,omitempty"`
	PotentialSavings *float64       `json:"potential_savings,omitempty"`
}

// Goal is a measurable savings target.
type Goal struct {
	Description  string  `json:"description"`
	CurrentValue float64 `json:"current_value"`
	TargetValue  float64 `json:"target_value"`
	Timeframe    string  `json:"timeframe"`
	Category     string  `json:"category,omitempty"`
}

// ActionItems is a JSON-serialized []ActionItem database field.
type ActionItems []ActionItem

// Value implements driver.Valuer.
func (a ActionItems) Value() (driver.Value, error) {
	if len(a) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

// Scan implements sql.Scanner.
func (a *ActionItems) Scan(value interface{}) error {
	return scanJSON(value, a, "ActionItems")
}

// Goals is a JSON-serialized []Goal database field.
type Goals []Goal

// Value implements driver.Valuer.
func (g Goals) Value() (driver.Value, error) {
	if len(g) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

// Scan implements sql.Scanner.
func (g *Goals) Scan(value interface{}) error {
	return scanJSON(value, g, "Goals")
}

func scanJSON(value interface{}, dest interface{}, kind string) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into %s", value, kind)
	}

	if len(bytes) == 0 {
		return nil
	}

	return json.Unmarshal(bytes, dest)
}

// Recommendation is the advice produced for one analysis: a summary, free
// text suggestions, a prioritized action plan, and savings goals.
type Recommendation struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	Summary     string      `gorm:"type:text;not null" json:"summary"`
	Suggestions StringSlice `gorm:"type:text" json:"suggestions"`
	Actions     ActionItems `gorm:"type:text" json:"action_items"`
	Goals       Goals       `gorm:"type:text" json:"goals"`
	AnalysisID  uuid.UUID   `gorm:"type:uuid;not null;index" json:"analysis_id"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Recommendation
func (r *Recommendation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return nil
}
