package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Analysis pipeline error codes (ANALYSIS_*)
const (
	AnalysisEmptyInput       ErrorCode = "ANALYSIS_001"
	AnalysisNoExpensesParsed ErrorCode = "ANALYSIS_002"
	AnalysisNotFound         ErrorCode = "ANALYSIS_003"
)

// Generation backend error codes (LLM_*)
const (
	LLMUnavailable    ErrorCode = "LLM_001"
	LLMRequestFailed  ErrorCode = "LLM_002"
	LLMCircuitBreaker ErrorCode = "LLM_003"
)

// Search error codes (SEARCH_*)
const (
	SearchUnavailable ErrorCode = "SEARCH_001"
)

// Storage error codes (STORAGE_*)
const (
	StorageSaveFailed ErrorCode = "STORAGE_001"
	StorageLoadFailed ErrorCode = "STORAGE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Analysis errors
	AnalysisEmptyInput:       "At least one expense text is required",
	AnalysisNoExpensesParsed: "No expenses could be classified from the input",
	AnalysisNotFound:         "Analysis not found",

	// Generation backend errors
	LLMUnavailable:    "Language model backend is unreachable",
	LLMRequestFailed:  "Language model request failed",
	LLMCircuitBreaker: "Language model backend is temporarily disabled",

	// Search errors
	SearchUnavailable: "Search service is unreachable",

	// Storage errors
	StorageSaveFailed: "Failed to persist analysis results",
	StorageLoadFailed: "Failed to load stored data",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
