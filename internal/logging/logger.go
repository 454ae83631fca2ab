// Package logging provides structured file logging for wishmachine.
// Log files are never written to the terminal while the TUI owns it.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// filePrefix and fileSuffix bound the names of files this package owns.
const (
	filePrefix = "wishmachine_"
	fileSuffix = ".log"
)

// Level represents log severity levels.
type Level int

const (
	// LevelDebug is for request/response tracing.
	LevelDebug Level = iota
	// LevelInfo is for lifecycle messages.
	LevelInfo
	// LevelWarn is for recoverable failures.
	LevelWarn
	// LevelError is for failed operations.
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a config level name (debug, info, warn, error) to a
// Level. Unknown names yield LevelInfo and false.
func ParseLevel(name string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, true
	case "info", "":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures the logger.
type Config struct {
	// Level is the minimum log level to output.
	Level Level
	// LogDir is the directory log files are written to.
	LogDir string
	// MaxLogFiles is the maximum number of log files to keep.
	MaxLogFiles int
	// MaxLogAge is the maximum age of log files before cleanup.
	MaxLogAge time.Duration
	// Console mirrors log lines to stderr. Only headless commands set it.
	Console bool
	// JSONFormat writes JSON lines instead of key=value text.
	JSONFormat bool
}

// DefaultDir returns $HOME/.wishmachine/logs, or a relative fallback when the
// home directory cannot be resolved.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".wishmachine", "logs")
	}
	return filepath.Join(home, ".wishmachine", "logs")
}

// DefaultConfig returns default logging configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:       LevelInfo,
		LogDir:      DefaultDir(),
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour,
	}
}

// Logger is a structured logger backed by a single log file.
type Logger struct {
	slog    *slog.Logger
	config  *Config
	logFile *os.File
	logPath string
	mu      sync.Mutex
}

// New creates a logger writing to a fresh timestamped file in config.LogDir.
// Old files beyond the retention limits are removed in the background.
func New(config *Config) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.LogDir == "" {
		config.LogDir = DefaultDir()
	}

	if err := os.MkdirAll(config.LogDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(config.LogDir, filePrefix+time.Now().Format("20060102_150405")+fileSuffix)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	var out io.Writer = logFile
	if config.Console {
		out = io.MultiWriter(logFile, os.Stderr)
	}

	logger := &Logger{
		slog:    slog.New(newHandler(out, config)),
		config:  config,
		logFile: logFile,
		logPath: logPath,
	}

	go logger.Cleanup()

	return logger, nil
}

// NewWithWriter creates a logger that writes to w and owns no file.
func NewWithWriter(w io.Writer, config *Config) *Logger {
	if config == nil {
		config = DefaultConfig()
	}
	return &Logger{
		slog:   slog.New(newHandler(w, config)),
		config: config,
	}
}

// NewNoop creates a logger that discards all output.
func NewNoop() *Logger {
	return &Logger{
		slog:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		config: &Config{Level: LevelError},
	}
}

func newHandler(w io.Writer, config *Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: config.Level.toSlogLevel()}
	if config.JSONFormat {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// LogPath returns the path to the current log file.
func (l *Logger) LogPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.logPath
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile != nil {
		err := l.logFile.Close()
		l.logFile = nil
		return err
	}
	return nil
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// With returns a new logger with the given attributes added.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:    l.slog.With(args...),
		config:  l.config,
		logFile: l.logFile,
		logPath: l.logPath,
	}
}

// WithContext returns a logger carrying the operation and view recorded in ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	s := l.slog
	if op, ok := ctx.Value(ContextKeyOperation).(string); ok && op != "" {
		s = s.With("op", op)
	}
	if view, ok := ctx.Value(ContextKeyView).(string); ok && view != "" {
		s = s.With("view", view)
	}
	return &Logger{
		slog:    s,
		config:  l.config,
		logFile: l.logFile,
		logPath: l.logPath,
	}
}

type contextKey string

const (
	// ContextKeyOperation names the API operation being performed.
	ContextKeyOperation contextKey = "op"
	// ContextKeyView names the screen or command that started the request.
	ContextKeyView contextKey = "view"
)

// WithOperation records the API operation in ctx.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, ContextKeyOperation, op)
}

// WithView records the originating screen or command in ctx.
func WithView(ctx context.Context, view string) context.Context {
	return context.WithValue(ctx, ContextKeyView, view)
}

// Cleanup removes old log files based on MaxLogFiles and MaxLogAge. The
// current file is always kept.
func (l *Logger) Cleanup() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.config.LogDir == "" {
		return nil
	}

	entries, err := os.ReadDir(l.config.LogDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		path    string
		modTime time.Time
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			path:    filepath.Join(l.config.LogDir, name),
			modTime: info.ModTime(),
		})
	}

	// Newest first.
	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.After(logFiles[j].modTime)
	})

	now := time.Now()
	var removed int
	for i, lf := range logFiles {
		if lf.path == l.logPath {
			continue
		}
		tooMany := l.config.MaxLogFiles > 0 && i >= l.config.MaxLogFiles
		tooOld := l.config.MaxLogAge > 0 && now.Sub(lf.modTime) > l.config.MaxLogAge
		if tooMany || tooOld {
			if err := os.Remove(lf.path); err == nil {
				removed++
			}
		}
	}

	if removed > 0 {
		l.slog.Debug("cleaned up old log files", "count", removed)
	}
	return nil
}
