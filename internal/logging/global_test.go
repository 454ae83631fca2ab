package logging

import (
	"os"
	"strings"
	"testing"
)

func resetGlobal(t *testing.T) {
	t.Helper()
	SetGlobal(nil)
	t.Cleanup(func() { SetGlobal(nil) })
}

func TestGlobal_DefaultsToNoop(t *testing.T) {
	resetGlobal(t)

	logger := Global()
	if logger == nil {
		t.Fatal("Global() returned nil")
	}
	if logger.LogPath() != "" {
		t.Errorf("expected no-op logger without a file, got %q", logger.LogPath())
	}
	if Global() != logger {
		t.Error("Global() should keep returning the same no-op logger")
	}

	Info("not written anywhere")
}

func TestSetGlobal(t *testing.T) {
	resetGlobal(t)

	logger, err := New(&Config{Level: LevelInfo, LogDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	SetGlobal(logger)
	if Global() != logger {
		t.Error("Global() should return the logger set by SetGlobal()")
	}
}

func TestInitGlobal_AndPackageFunctions(t *testing.T) {
	resetGlobal(t)

	if err := InitGlobal(&Config{Level: LevelDebug, LogDir: t.TempDir()}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}
	path := Global().LogPath()

	Debug("debug line")
	Info("info line")
	Warn("warn line")
	Error("error line")
	With("id", 3).Info("with line")

	if err := CloseGlobal(); err != nil {
		t.Fatalf("CloseGlobal() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"debug line", "info line", "warn line", "error line", "id=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log file", want)
		}
	}
}

func TestInitGlobal_Error(t *testing.T) {
	resetGlobal(t)

	file := t.TempDir() + "/file"
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if err := InitGlobal(&Config{LogDir: file + "/logs"}); err == nil {
		t.Fatal("expected error when log dir cannot be created")
	}
}

func TestCloseGlobal_Uninitialized(t *testing.T) {
	resetGlobal(t)
	if err := CloseGlobal(); err != nil {
		t.Errorf("CloseGlobal() error = %v", err)
	}
}
