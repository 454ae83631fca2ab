package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigParseError(t *testing.T) {
	parseErr := errors.New("unexpected end of file")
	err := ConfigParseError("/path/config.yaml", parseErr)

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigParseError should return ErrConfig")
	}
	if !errors.Is(err.Cause, parseErr) {
		t.Error("Should wrap the parse error")
	}
	if !strings.Contains(err.Suggestion, "YAML") {
		t.Error("Suggestion should mention YAML syntax")
	}
}

func TestConfigValidationError(t *testing.T) {
	err := ConfigValidationError("log.level", "unknown level", []string{"debug", "info"})

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigValidationError should return ErrConfig")
	}
	if err.Details["field"] != "log.level" {
		t.Error("Should include field in details")
	}
	if !strings.Contains(err.Suggestion, "debug, info") {
		t.Error("Suggestion should list valid options")
	}
}

func TestConfigExists(t *testing.T) {
	err := ConfigExists("/home/me/.wishmachine/config.yaml")
	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigExists should return ErrConfig")
	}
	if !strings.Contains(err.Suggestion, "--force") {
		t.Error("Suggestion should mention --force")
	}
}

func TestValidationErrors(t *testing.T) {
	if !errors.Is(EmptyWish(), ErrValidation) {
		t.Error("EmptyWish should return ErrValidation")
	}
	err := InvalidID("abc")
	if !errors.Is(err, ErrValidation) {
		t.Error("InvalidID should return ErrValidation")
	}
	if err.Details["id"] != "abc" {
		t.Error("InvalidID should record the argument")
	}
}
