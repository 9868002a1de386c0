package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeIO            ErrorType = "IO"
	TypeSchema        ErrorType = "SCHEMA"
	TypeSyntax        ErrorType = "SYNTAX"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if value, ok := e.Context["value"].(string); ok && value != "" {
			msg += fmt.Sprintf(" - %s", value)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError of the same type and message,
// so wrapped copies still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// Detail returns the one-line description shown to the user after the
// error kind prefix.
func (e *AppError) Detail() string {
	if e.Context != nil {
		if value, ok := e.Context["value"].(string); ok {
			return fmt.Sprintf("%s: %s", e.Message, value)
		}
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Input file errors
var (
	ErrOpenInput = NewAppError(TypeIO, "Failed to open input file", nil).
			WithSuggestion("Check the path or pass the tickets file as the first argument")

	ErrReadInput = NewAppError(TypeIO, "Failed to read input file", nil)
)

// Document errors
var (
	ErrMissingTickets = NewAppError(TypeSchema, `No "tickets" element in json file`, nil).
				WithSuggestion(`The document must look like {"tickets": [...]}`)

	ErrInvalidJSON = NewAppError(TypeSyntax, "Malformed JSON", nil)

	ErrNotObject = NewAppError(TypeSyntax, "Not a JSON Object", nil)

	ErrTicketsNotArray = NewAppError(TypeSyntax, "Not a JSON Array", nil)
)

// Configuration errors
var (
	ErrInvalidPercentile = NewAppError(TypeConfiguration, "Percentile must be between 1 and 100", nil)

	ErrInvalidRoute = NewAppError(TypeConfiguration, "Origin and destination must be set", nil).
			WithSuggestion("Use --origin and --destination with IATA codes, e.g. VVO and TLV")

	ErrInvalidConfig = NewAppError(TypeConfiguration, "Configuration file is not valid", nil)
)
