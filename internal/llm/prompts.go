package llm

import (
	"fmt"
	"sort"
	"strings"
)

// Prompt templates for the pipeline stages. Kept in one place so the agent
// services stay free of prompt text.

const (
	ClassifierSystemPrompt = `You are an expense classification expert.
Analyze the user's expense text and predict its category.

Categories:
- FOOD: Food, groceries, meals, restaurants
- TRANSPORT: Transportation, fuel, taxi
- UTILITIES: Bills (electricity, water, internet)
- ENTERTAINMENT: Entertainment, cinema
- HEALTH: Healthcare, medicine
- EDUCATION: Education, books
- SHOPPING: Shopping, clothing
- HOUSING: Rent, housing
- PERSONAL: Personal care
- OTHER: Other

Return only the category name.`

	classifierParseTemplate = `Analyze this expense text: %q
Format: [DESCRIPTION] [AMOUNT] [TL]

Return in JSON format:
{"description": "...", "amount": 123.45}`

	classifierCategorizeTemplate = `Which category does this expense belong to?
Description: %s
Provide only the category name (FOOD, TRANSPORT, etc.)`

	StrategistSystemPrompt = `You are an experienced financial advisor.
You help users make informed decisions in budget management.

Your role:
1. Evaluate spending analysis
2. Provide practical recommendations
3. Create action plans
4. Be motivational`

	strategistTemplate = `Financial Status:

📊 Basic Information:
- Total Spending: %.0f TL
- Daily Average: %.0f TL
- Monthly Projection: %.0f TL
- Analysis Period: %d days

%s

📁 Category Distribution:
%s

📈 Trends:
%s

---

Provide to the user:
1. **Status Summary**: 2-3 sentences
2. **Recommendations**: 3-4 practical suggestions
3. **Actions**: To-do items (prioritized)
4. **Goals**: Measurable objectives

Write in English with a friendly and motivating tone.`
)

// ParsePrompt builds the fallback prompt for extracting description and
// amount from a raw expense text.
func ParsePrompt(text string) string {
	return fmt.Sprintf(classifierParseTemplate, text)
}

// CategorizePrompt builds the fallback prompt for categorizing a
// description.
func CategorizePrompt(description string) string {
	return fmt.Sprintf(classifierCategorizeTemplate, description)
}

// StrategistPrompt builds the recommendation prompt from analysis metrics.
func StrategistPrompt(total, daily, monthly float64, days int, budgetInfo, categories, trends string) string {
	return fmt.Sprintf(strategistTemplate, total, daily, monthly, days, budgetInfo, categories, trends)
}

// FormatBudgetInfo renders the income section of the strategist prompt.
func FormatBudgetInfo(status string, statusEmoji string, income, remaining, usage *float64) string {
	if income == nil {
		return "💰 Income: Not provided"
	}

	lines := []string{
		fmt.Sprintf("%s Status: %s", statusEmoji, status),
		fmt.Sprintf("💰 Income: %.0f TL", *income),
	}
	if remaining != nil {
		lines = append(lines, fmt.Sprintf("💵 Remaining: %.0f TL", *remaining))
	}
	if usage != nil {
		lines = append(lines, fmt.Sprintf("📊 Usage: %.1f%%", *usage))
	}
	return strings.Join(lines, "\n")
}

// FormatCategories renders the category breakdown sorted by amount,
// highest first.
func FormatCategories(breakdown map[string]float64) string {
	if len(breakdown) == 0 {
		return "  (No data)"
	}

	type entry struct {
		category string
		amount   float64
	}
	entries := make([]entry, 0, len(breakdown))
	for category, amount := range breakdown {
		entries = append(entries, entry{category, amount})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].amount != entries[j].amount {
			return entries[i].amount > entries[j].amount
		}
		return entries[i].category < entries[j].category
	})

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("  - %s: %.1f TL", e.category, e.amount))
	}
	return strings.Join(lines, "\n")
}

// FormatTrends renders the trend list for the strategist prompt.
func FormatTrends(trends []string) string {
	if len(trends) == 0 {
		return "  (Not enough data yet)"
	}
	lines := make([]string, 0, len(trends))
	for _, t := range trends {
		lines = append(lines, "  - "+t)
	}
	return strings.Join(lines, "\n")
}
