// Package errors provides error types for wishmachine.
// This file contains configuration and input validation errors.
package errors

import (
	"fmt"
	"strings"
)

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *WishError {
	return &WishError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Durations need a unit, e.g. "3s" or "10s"
  3. Regenerate a clean file with: wishmachine config init --force`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *WishError {
	suggestion := fmt.Sprintf("Fix the %q field in config.yaml or its WISHMACHINE_ environment override", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &WishError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}

// ConfigExists creates an error when config init would overwrite a file.
func ConfigExists(configPath string) *WishError {
	return &WishError{
		Kind:       ErrConfig,
		Message:    fmt.Sprintf("configuration already exists: %s", configPath),
		Details:    map[string]string{"path": configPath},
		Suggestion: "Use --force to overwrite it.",
	}
}

// EmptyWish creates an error for whitespace-only wish text.
func EmptyWish() *WishError {
	return &WishError{
		Kind:       ErrValidation,
		Message:    "wish text is empty",
		Suggestion: `Write something to wish for, e.g. wishmachine send "a sunny weekend"`,
	}
}

// InvalidID creates an error for a wish id argument that is not a positive integer.
func InvalidID(arg string) *WishError {
	return &WishError{
		Kind:    ErrValidation,
		Message: fmt.Sprintf("invalid wish id %q", arg),
		Details: map[string]string{
			"id": arg,
		},
		Suggestion: "Wish ids are positive integers, shown as #id in wishmachine list.",
	}
}
