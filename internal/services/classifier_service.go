package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"expense-analysis-backend/internal/llm"
	"expense-analysis-backend/internal/models"
)

// expensePattern matches "DESCRIPTION AMOUNT TL" with an optional decimal
// part using either separator. The currency marker may be TL or the lira
// sign.
var expensePattern = regexp.MustCompile(`(?i)^(.+?)\s+(\d+(?:[.,]\d+)?)\s*(TL|₺)\s*$`)

// Amount is a pointer so a response that omits the key is rejected
// instead of silently decoding to zero.
type parsedLLMExpense struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
}

type classifierService struct {
	generator llm.GeneratorInterface
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

// NewClassifierService creates the parsing and categorization stage.
func NewClassifierService(generator llm.GeneratorInterface, metrics MetricsRecorderInterface, logger *slog.Logger) ClassifierServiceInterface {
	return &classifierService{
		generator: generator,
		metrics:   metrics,
		logger:    logger,
	}
}

// Classify parses and categorizes each text. Blank texts are skipped; a
// text whose amount cannot be extracted becomes an expense with amount 0
// so the research stage can still investigate it.
func (s *classifierService) Classify(ctx context.Context, texts []string) []*models.Expense {
	expenses := make([]*models.Expense, 0, len(texts))

	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		description, amount := s.parse(ctx, text)
		category := s.categorize(ctx, description)

		s.logger.Debug("expense classified",
			"description", description,
			"amount", amount,
			"category", string(category),
		)

		expenses = append(expenses, models.NewExpense(description, amount, category))
	}

	return expenses
}

// parse extracts description and amount. Regex first, the language model
// second, and the zero-amount sentinel when both fail.
func (s *classifierService) parse(ctx context.Context, text string) (string, float64) {
	if matches := expensePattern.FindStringSubmatch(text); matches != nil {
		description := strings.TrimSpace(matches[1])
		if amount, ok := parseAmount(matches[2]); ok {
			return description, amount
		}
	}

	if description, amount, ok := s.parseWithLLM(ctx, text); ok {
		return description, amount
	}

	return text, 0
}

func (s *classifierService) parseWithLLM(ctx context.Context, text string) (string, float64, bool) {
	response, err := s.generator.Generate(ctx, llm.GenerateRequest{
		Prompt:      llm.ParsePrompt(text),
		System:      llm.ClassifierSystemPrompt,
		TaskType:    llm.TaskClassify,
		Temperature: 0.1,
		MaxTokens:   128,
	})
	if err != nil {
		s.logger.Warn("parse fallback failed", "text", text, "error", err)
		s.metrics.IncrementCounter("llm.request", map[string]string{"task": "classify", "status": "failed"})
		return "", 0, false
	}
	s.metrics.IncrementCounter("llm.request", map[string]string{"task": "classify", "status": "success"})

	raw := extractJSONObject(response)
	if raw == "" {
		return "", 0, false
	}

	var parsed parsedLLMExpense
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		s.logger.Warn("parse fallback returned invalid JSON", "text", text, "error", err)
		return "", 0, false
	}

	description := strings.TrimSpace(parsed.Description)
	if description == "" || parsed.Amount == nil || *parsed.Amount < 0 {
		return "", 0, false
	}

	return description, roundMoney(*parsed.Amount), true
}

// categorize matches keywords first and only consults the language model
// for descriptions the keyword table cannot place.
func (s *classifierService) categorize(ctx context.Context, description string) models.Category {
	if category := models.CategoryFromKeywords(description); category != models.CategoryOther {
		return category
	}

	response, err := s.generator.Generate(ctx, llm.GenerateRequest{
		Prompt:      llm.CategorizePrompt(description),
		System:      llm.ClassifierSystemPrompt,
		TaskType:    llm.TaskClassify,
		Temperature: 0.1,
		MaxTokens:   16,
	})
	if err != nil {
		s.logger.Warn("categorize fallback failed", "description", description, "error", err)
		s.metrics.IncrementCounter("llm.request", map[string]string{"task": "classify", "status": "failed"})
		return models.CategoryOther
	}
	s.metrics.IncrementCounter("llm.request", map[string]string{"task": "classify", "status": "success"})

	return models.ParseCategory(response)
}

// parseAmount normalizes the decimal separator and converts to a
// two-decimal amount.
func parseAmount(raw string) (float64, bool) {
	normalized := strings.ReplaceAll(raw, ",", ".")
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, false
	}
	return d.Round(2).InexactFloat64(), true
}

// roundMoney rounds to two decimals without accumulating float error.
func roundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// extractJSONObject pulls the first balanced JSON object out of a model
// response that may wrap it in prose or code fences.
func extractJSONObject(response string) string {
	start := strings.Index(response, "{")
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(response); i++ {
		c := response[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return response[start : i+1]
			}
		}
	}

	return ""
}
