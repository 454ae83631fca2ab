// Package errors provides error types with actionable suggestions for the
// wishmachine client. Errors carry a kind that callers test with errors.Is so
// that transport failures and API rejections can be told apart.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrNetwork indicates the request never produced an HTTP response.
	ErrNetwork = errors.New("network error")
	// ErrAPI indicates the backend answered with a non-2xx status or an unreadable body.
	ErrAPI = errors.New("api error")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates input was rejected before any request was made.
	ErrValidation = errors.New("validation error")
)

// WishError is the base error type for wishmachine errors.
// It wraps an underlying error and provides additional context.
type WishError struct {
	// Kind is the category of error (e.g., ErrNetwork, ErrAPI).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// StatusCode is the HTTP status for ErrAPI errors, zero otherwise.
	StatusCode int
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., URL, response body).
	Details map[string]string
}

// Error implements the error interface.
func (e *WishError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *WishError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error matches target. A 404 response matches
// ErrNotFound in addition to its own kind.
func (e *WishError) Is(target error) bool {
	if errors.Is(e.Kind, target) {
		return true
	}
	return target == ErrNotFound && e.StatusCode == 404
}

// Format returns a formatted error message with details and suggestions.
func (e *WishError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *WishError) WithDetails(key, value string) *WishError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *WishError) WithCause(cause error) *WishError {
	e.Cause = cause
	return e
}

// New creates a new WishError with the given kind and message.
func New(kind error, message string) *WishError {
	return &WishError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *WishError {
	return &WishError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *WishError {
	return &WishError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// FormatError renders err with Format when it is a WishError and with
// Error otherwise.
func FormatError(err error) string {
	var we *WishError
	if errors.As(err, &we) {
		return we.Format()
	}
	return "Error: " + err.Error() + "\n"
}
