// Package config provides configuration loading and management for wishmachine.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	wisherrors "github.com/wexinc/wishmachine/internal/errors"
)

const (
	// DirName is the per-user directory holding config and logs.
	DirName = ".wishmachine"

	// FileName is the config file name inside DirName.
	FileName = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. WISHMACHINE_API_BASE_URL.
	EnvPrefix = "WISHMACHINE"

	// EnvFile is loaded from the working directory when present.
	EnvFile = ".env"
)

// keys lists every config key so viper resolves env overrides for all of them.
var keys = []string{
	"api.base_url",
	"api.timeout",
	"api.user_agent",
	"submit.author",
	"submit.reset_delay",
	"display.locale",
	"log.level",
	"log.dir",
	"log.json",
}

// Loader handles loading configuration from files and environment.
type Loader struct {
	v       *viper.Viper
	envFile string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := NewConfig()
	v.SetDefault("api.base_url", defaults.API.BaseURL)
	v.SetDefault("api.timeout", defaults.API.Timeout)
	v.SetDefault("api.user_agent", defaults.API.UserAgent)
	v.SetDefault("submit.author", defaults.Submit.Author)
	v.SetDefault("submit.reset_delay", defaults.Submit.ResetDelay)
	v.SetDefault("display.locale", defaults.Display.Locale)
	v.SetDefault("log.level", string(defaults.Log.Level))
	v.SetDefault("log.dir", defaults.Log.Dir)
	v.SetDefault("log.json", defaults.Log.JSON)
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	return &Loader{v: v, envFile: EnvFile}
}

// SetEnvFile changes the dotenv file read before loading. An empty path
// disables dotenv loading.
func (l *Loader) SetEnvFile(path string) {
	l.envFile = path
}

// Set overrides a key with the highest precedence (used for command-line flags).
func (l *Loader) Set(key string, value any) {
	l.v.Set(key, value)
}

// LoadConfig loads configuration from path, applies defaults, merges
// environment variables, and validates the result.
//
// When path is empty the default file is used if it exists; a missing default
// file is not an error. An explicit path must exist.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if l.envFile != "" {
		// Existing environment variables win over the dotenv file.
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{
				Path:    l.envFile,
				Message: "failed to read env file",
				Err:     err,
			}
		}
	}

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			l.v.SetConfigFile(path)
			if err := l.v.ReadInConfig(); err != nil {
				return nil, &LoadError{
					Path:    path,
					Message: "failed to read config file",
					Err:     wisherrors.ConfigParseError(path, err),
				}
			}
		} else if explicit {
			return nil, &LoadError{
				Path:    path,
				Message: "config file not found",
				Err:     err,
			}
		}
	}

	cfg := NewConfig()
	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     wisherrors.ConfigParseError(path, err),
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// ConfigFileUsed returns the config file that was read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// DefaultDir returns $HOME/.wishmachine.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// DefaultPath returns $HOME/.wishmachine/config.yaml.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
// It composes the standard mapstructure hooks with our custom ones.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc creates a decode hook for our custom types.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		switch to {
		case reflect.TypeOf(LogLevel("")):
			return LogLevel(strings.ToLower(strings.TrimSpace(data.(string)))), nil
		}

		return data, nil
	}
}

// fileView is the on-disk shape of Config. Durations are written as strings
// so the file stays readable.
type fileView struct {
	API struct {
		BaseURL   string `yaml:"base_url"`
		Timeout   string `yaml:"timeout"`
		UserAgent string `yaml:"user_agent"`
	} `yaml:"api"`
	Submit struct {
		Author     string `yaml:"author"`
		ResetDelay string `yaml:"reset_delay"`
	} `yaml:"submit"`
	Display struct {
		Locale string `yaml:"locale"`
	} `yaml:"display"`
	Log struct {
		Level string `yaml:"level"`
		Dir   string `yaml:"dir"`
		JSON  bool   `yaml:"json"`
	} `yaml:"log"`
}

// Marshal renders cfg as YAML in the config file format.
func Marshal(cfg *Config) ([]byte, error) {
	var f fileView
	f.API.BaseURL = cfg.API.BaseURL
	f.API.Timeout = cfg.API.Timeout.String()
	f.API.UserAgent = cfg.API.UserAgent
	f.Submit.Author = cfg.Submit.Author
	f.Submit.ResetDelay = cfg.Submit.ResetDelay.String()
	f.Display.Locale = cfg.Display.Locale
	f.Log.Level = string(cfg.Log.Level)
	f.Log.Dir = cfg.Log.Dir
	f.Log.JSON = cfg.Log.JSON
	return yaml.Marshal(&f)
}

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return wisherrors.ConfigExists(path)
	}

	data, err := Marshal(NewConfig())
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, the default file is used when present.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}
