package errors

import "fmt"

// Error codes
const (
	CodeAppError         = "APP_ERROR"
	CodeAPIError         = "API_ERROR"
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidBirthDate = "INVALID_BIRTH_DATE"
	CodeTerminologyLeak  = "TERMINOLOGY_LEAK"
	CodeCache            = "CACHE_ERROR"
	CodeService          = "SERVICE_ERROR"
)

type AppError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewAppError(message, code string, statusCode int, context map[string]any) *AppError {
	return &AppError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

type APIError struct {
	*AppError
}

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeAPIError,
			StatusCode: statusCode,
			Context:    context,
		},
	}
}

type ValidationError struct {
	*AppError
	Field string
	Value any
}

func NewValidationError(message, field string, value any) *ValidationError {
	return &ValidationError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

// InvalidBirthDateError is the only error the scoring core raises: the birth
// date is missing or unparseable.
type InvalidBirthDateError struct {
	*AppError
	Input string
}

func NewInvalidBirthDateError(input string, cause error) *InvalidBirthDateError {
	message := "invalid birth date"
	if input == "" {
		message = "birth date is required"
	}
	return &InvalidBirthDateError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeInvalidBirthDate,
			StatusCode: 400,
			Context: map[string]any{
				"input": input,
			},
			Cause: cause,
		},
		Input: input,
	}
}

// TerminologyLeakError reports generated text that contains a banned term.
type TerminologyLeakError struct {
	*AppError
	Term string
	Text string
}

func NewTerminologyLeakError(term, text string) *TerminologyLeakError {
	return &TerminologyLeakError{
		AppError: &AppError{
			Message:    fmt.Sprintf("generated text contains banned term %q", term),
			Code:       CodeTerminologyLeak,
			StatusCode: 500,
			Context: map[string]any{
				"term": term,
			},
		},
		Term: term,
		Text: text,
	}
}

type CacheError struct {
	*AppError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeCache,
			StatusCode: 500,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}

type ServiceError struct {
	*AppError
	Service   string
	Operation string
}

func NewServiceError(message, service, operation string, cause error) *ServiceError {
	return &ServiceError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeService,
			StatusCode: 500,
			Context: map[string]any{
				"service":   service,
				"operation": operation,
			},
			Cause: cause,
		},
		Service:   service,
		Operation: operation,
	}
}
