// Package config provides configuration data structures for wishmachine.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/wexinc/wishmachine/internal/wish"
)

// Config is the complete client configuration. It is built once at startup
// and handed to the API client and the views.
type Config struct {
	API     APIConfig     `yaml:"api"     json:"api"     mapstructure:"api"`
	Submit  SubmitConfig  `yaml:"submit"  json:"submit"  mapstructure:"submit"`
	Display DisplayConfig `yaml:"display" json:"display" mapstructure:"display"`
	Log     LogConfig     `yaml:"log"     json:"log"     mapstructure:"log"`
}

// APIConfig configures how the wish API is reached.
type APIConfig struct {
	// BaseURL is the root address of the wish API (default: http://localhost:8000).
	BaseURL string `yaml:"base_url" json:"base_url" mapstructure:"base_url"`
	// Timeout bounds each request (default: 10s).
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
	// UserAgent is sent with every request.
	UserAgent string `yaml:"user_agent" json:"user_agent" mapstructure:"user_agent"`
}

// SubmitConfig configures the submission view.
type SubmitConfig struct {
	// Author is the name sent with every wish (default: Anonymous).
	Author string `yaml:"author" json:"author" mapstructure:"author"`
	// ResetDelay is how long after a submission the view returns to idle (default: 3s).
	ResetDelay time.Duration `yaml:"reset_delay" json:"reset_delay" mapstructure:"reset_delay"`
}

// DisplayConfig configures presentation.
type DisplayConfig struct {
	// Locale selects the date/time layout for wish timestamps (default: zh-CN).
	Locale string `yaml:"locale" json:"locale" mapstructure:"locale"`
}

// LogLevel names a minimum log level.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogConfig configures the diagnostic log.
type LogConfig struct {
	// Level is the minimum level written (default: info).
	Level LogLevel `yaml:"level" json:"level" mapstructure:"level"`
	// Dir is where log files go. Empty means $HOME/.wishmachine/logs.
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// JSON switches the log file to JSON lines.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
}

// Default values.
const (
	DefaultBaseURL    = "http://localhost:8000"
	DefaultTimeout    = 10 * time.Second
	DefaultUserAgent  = "wishmachine"
	DefaultResetDelay = 3 * time.Second
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   DefaultBaseURL,
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
		Submit: SubmitConfig{
			Author:     wish.DefaultAuthor,
			ResetDelay: DefaultResetDelay,
		},
		Display: DisplayConfig{
			Locale: wish.DefaultLocale,
		},
		Log: LogConfig{
			Level: LogLevelInfo,
		},
	}
}

// ApplyDefaults fills in any unset fields and normalizes the base URL.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if strings.TrimSpace(c.API.BaseURL) == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if c.API.Timeout == 0 {
		c.API.Timeout = defaults.API.Timeout
	}
	if c.API.UserAgent == "" {
		c.API.UserAgent = defaults.API.UserAgent
	}

	if strings.TrimSpace(c.Submit.Author) == "" {
		c.Submit.Author = defaults.Submit.Author
	}
	if c.Submit.ResetDelay == 0 {
		c.Submit.ResetDelay = defaults.Submit.ResetDelay
	}

	if c.Display.Locale == "" {
		c.Display.Locale = defaults.Display.Locale
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	c.Log.Level = LogLevel(strings.ToLower(string(c.Log.Level)))
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if err := validateBaseURL(c.API.BaseURL); err != nil {
		errs = append(errs, err)
	}
	if c.API.Timeout < 0 {
		errs = append(errs, &ValidationError{Field: "api.timeout", Message: "must be non-negative"})
	}
	if c.Submit.ResetDelay < 0 {
		errs = append(errs, &ValidationError{Field: "submit.reset_delay", Message: "must be non-negative"})
	}

	if c.Display.Locale != "" && !wish.SupportedLocale(c.Display.Locale) {
		errs = append(errs, &ValidationError{
			Field:   "display.locale",
			Message: fmt.Sprintf("unsupported locale %q (use zh, en, de or ja based tags)", c.Display.Locale),
		})
	}

	if c.Log.Level != "" {
		switch c.Log.Level {
		case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
			// valid
		default:
			errs = append(errs, &ValidationError{
				Field:   "log.level",
				Message: "must be 'debug', 'info', 'warn', or 'error'",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateBaseURL(raw string) *ValidationError {
	if raw == "" {
		return &ValidationError{Field: "api.base_url", Message: "must not be empty"}
	}
	u, err := url.Parse(raw)
	if err != nil {
		return &ValidationError{Field: "api.base_url", Message: fmt.Sprintf("not a valid URL: %v", err)}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ValidationError{Field: "api.base_url", Message: "must use http or https"}
	}
	if u.Host == "" {
		return &ValidationError{Field: "api.base_url", Message: "must include a host"}
	}
	return nil
}
