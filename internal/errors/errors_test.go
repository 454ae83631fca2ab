package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestWishError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *WishError
		expected string
	}{
		{
			name:     "simple message",
			err:      New(ErrConfig, "bad config"),
			expected: "bad config",
		},
		{
			name: "with cause",
			err: &WishError{
				Kind:    ErrNetwork,
				Message: "list wishes",
				Cause:   errors.New("connection refused"),
			},
			expected: "list wishes: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWishError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrNetwork, "wrapped error")

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Without cause, should return Kind
	errNoWrap := New(ErrConfig, "no cause")
	if !errors.Is(errors.Unwrap(errNoWrap), ErrConfig) {
		t.Error("Unwrap() should return Kind when no cause")
	}
}

func TestWishError_Is(t *testing.T) {
	err := Wrap(errors.New("dial tcp"), ErrNetwork, "create wish")

	if !errors.Is(err, ErrNetwork) {
		t.Error("errors.Is should match the kind even when a cause is set")
	}
	if errors.Is(err, ErrAPI) {
		t.Error("errors.Is should not match an unrelated kind")
	}
}

func TestWishError_Format(t *testing.T) {
	err := WithSuggestion(ErrConfig, "bad base url", "use http://host:port")
	err.WithDetails("url", "::nope").WithDetails("field", "api.base_url")

	out := err.Format()
	for _, want := range []string{"Error: bad base url", "Details:", "field: api.base_url", "url: ::nope", "Suggestion: use http://host:port"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "field:") > strings.Index(out, "url:") {
		t.Error("Format() should list details in key order")
	}
}

func TestFormatError(t *testing.T) {
	if got := FormatError(errors.New("plain")); got != "Error: plain\n" {
		t.Errorf("FormatError(plain) = %q", got)
	}
	we := WithSuggestion(ErrValidation, "empty", "type something")
	if got := FormatError(we); !strings.Contains(got, "type something") {
		t.Errorf("FormatError(WishError) should use Format, got %q", got)
	}
}
