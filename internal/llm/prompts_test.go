package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePromptQuotesInput(t *testing.T) {
	prompt := ParsePrompt(`kahve "latte" 50 TL`)

	assert.Contains(t, prompt, `"kahve \"latte\" 50 TL"`)
	assert.Contains(t, prompt, `{"description": "...", "amount": 123.45}`)
}

func TestCategorizePrompt(t *testing.T) {
	prompt := CategorizePrompt("uber ride")

	assert.Contains(t, prompt, "Description: uber ride")
	assert.Contains(t, prompt, "category name")
}

func TestStrategistPromptIncludesMetrics(t *testing.T) {
	prompt := StrategistPrompt(8470, 1210, 36300, 7, "💰 Income: Not provided", "  - FOOD: 50.0 TL", "  (Not enough data yet)")

	assert.Contains(t, prompt, "Total Spending: 8470 TL")
	assert.Contains(t, prompt, "Daily Average: 1210 TL")
	assert.Contains(t, prompt, "Monthly Projection: 36300 TL")
	assert.Contains(t, prompt, "Analysis Period: 7 days")
	assert.Contains(t, prompt, "FOOD: 50.0 TL")
}

func TestFormatBudgetInfo(t *testing.T) {
	income := 15000.0
	remaining := 0.0
	usage := 242.0

	t.Run("no income provided", func(t *testing.T) {
		assert.Equal(t, "💰 Income: Not provided", FormatBudgetInfo("UNKNOWN", "❓", nil, nil, nil))
	})

	t.Run("full budget info", func(t *testing.T) {
		got := FormatBudgetInfo("OVER_BUDGET", "🔴", &income, &remaining, &usage)
		assert.Contains(t, got, "🔴 Status: OVER_BUDGET")
		assert.Contains(t, got, "💰 Income: 15000 TL")
		assert.Contains(t, got, "💵 Remaining: 0 TL")
		assert.Contains(t, got, "📊 Usage: 242.0%")
	})
}

func TestFormatCategoriesSortedByAmountDescending(t *testing.T) {
	got := FormatCategories(map[string]float64{
		"FOOD":      50,
		"SHOPPING":  8000,
		"TRANSPORT": 120,
	})

	assert.Equal(t, "  - SHOPPING: 8000.0 TL\n  - TRANSPORT: 120.0 TL\n  - FOOD: 50.0 TL", got)
}

func TestFormatCategoriesEmpty(t *testing.T) {
	assert.Equal(t, "  (No data)", FormatCategories(nil))
}

func TestFormatTrends(t *testing.T) {
	assert.Equal(t, "  (Not enough data yet)", FormatTrends(nil))
	assert.Equal(t, "  - 🛍️ SHOPPING: 8000.0 TL (97.9%)", FormatTrends([]string{"🛍️ SHOPPING: 8000.0 TL (97.9%)"}))
}
