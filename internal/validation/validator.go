package validation

import (
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// maxExpenseTextLength bounds a single raw expense line
const maxExpenseTextLength = 500

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("expense_text", validateExpenseText)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateExpenseText validates a raw expense line: non-blank after trimming
// whitespace and within the maximum length
func validateExpenseText(fl validator.FieldLevel) bool {
	text := fl.Field().String()
	if strings.TrimSpace(text) == "" {
		return false
	}
	return utf8.RuneCountInString(text) <= maxExpenseTextLength
}
