// Package errors provides error types for wishmachine.
// This file contains transport and API response errors.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// maxBodyDetail caps how much of a response body is kept in error details.
const maxBodyDetail = 512

// Transport creates an error for a request that never got an HTTP response
// (connection refused, DNS failure, timeout, cancelled context).
func Transport(operation, url string, cause error) *WishError {
	err := &WishError{
		Kind:    ErrNetwork,
		Message: fmt.Sprintf("%s: cannot reach wish server", operation),
		Cause:   cause,
		Suggestion: `Check that the wish server is running and reachable:

  1. Verify the base URL: wishmachine config show
  2. Probe the server:    wishmachine ping
  3. Override the URL:    wishmachine --api-url http://host:8000 ...
                          or WISHMACHINE_API_BASE_URL=http://host:8000`,
	}
	if url != "" {
		err.Details = map[string]string{"url": url}
	}
	return err
}

// Status creates an error for a non-2xx response.
func Status(operation, url string, statusCode int, body []byte) *WishError {
	err := &WishError{
		Kind:       ErrAPI,
		Message:    fmt.Sprintf("%s: server returned %d %s", operation, statusCode, http.StatusText(statusCode)),
		StatusCode: statusCode,
		Details: map[string]string{
			"status": fmt.Sprintf("%d", statusCode),
		},
	}
	if url != "" {
		err.Details["url"] = url
	}
	if b := strings.TrimSpace(string(body)); b != "" {
		if len(b) > maxBodyDetail {
			b = b[:maxBodyDetail] + "..."
		}
		err.Details["body"] = b
	}

	switch {
	case statusCode == http.StatusNotFound:
		err.Suggestion = "The wish does not exist. List current wishes with: wishmachine list"
	case statusCode >= 500:
		err.Suggestion = "The wish server failed to handle the request. Check the server logs and try again."
	case statusCode == http.StatusUnprocessableEntity || statusCode == http.StatusBadRequest:
		err.Suggestion = "The server rejected the request body. Make sure the wish text is not empty."
	}
	return err
}

// Decode creates an error for a 2xx response whose body could not be parsed.
func Decode(operation string, cause error) *WishError {
	return &WishError{
		Kind:       ErrAPI,
		Message:    fmt.Sprintf("%s: unexpected response body", operation),
		Cause:      cause,
		Suggestion: "The base URL may point at something other than the wish API.",
	}
}

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool {
	return err != nil && errors.Is(err, ErrNetwork)
}

// IsStatus reports whether err is an application-level (non-2xx) failure.
func IsStatus(err error) bool {
	return StatusCode(err) != 0
}

// StatusCode returns the HTTP status carried by err, or zero.
func StatusCode(err error) int {
	var we *WishError
	if errors.As(err, &we) && errors.Is(we.Kind, ErrAPI) {
		return we.StatusCode
	}
	return 0
}
