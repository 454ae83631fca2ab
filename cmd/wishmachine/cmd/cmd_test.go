package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wexinc/wishmachine/internal/api/apitest"
	wisherrors "github.com/wexinc/wishmachine/internal/errors"
	"github.com/wexinc/wishmachine/internal/logging"
	"github.com/wexinc/wishmachine/internal/wish"
)

// execute runs a fresh command tree with an isolated HOME.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { _ = logging.CloseGlobal() })

	buf := new(bytes.Buffer)
	root := Root()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func newBackend(t *testing.T) *apitest.Server {
	t.Helper()
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	return srv
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantErr    bool
		wantOutput string
	}{
		{
			name:       "help flag",
			args:       []string{"--help"},
			wantOutput: "Available Commands:",
		},
		{
			name:       "help lists headless commands",
			args:       []string{"--help"},
			wantOutput: "ping",
		},
		{
			name:       "version flag",
			args:       []string{"--version"},
			wantOutput: "wishmachine dev",
		},
		{
			name:    "unknown command",
			args:    []string{"unknown"},
			wantErr: true,
		},
		{
			name:       "run help",
			args:       []string{"run", "--help"},
			wantOutput: "Ctrl+S",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantOutput != "" && !strings.Contains(out, tt.wantOutput) {
				t.Errorf("Output = %q, want to contain %q", out, tt.wantOutput)
			}
		})
	}
}

func TestSendCommand(t *testing.T) {
	t.Run("joins and trims arguments", func(t *testing.T) {
		srv := newBackend(t)

		out, err := execute(t, "--api-url", srv.URL, "send", "  a", "sunny", "weekend  ")
		if err != nil {
			t.Fatalf("send failed: %v", err)
		}
		if !strings.Contains(out, "#1") {
			t.Errorf("Output = %q, want the new id", out)
		}

		got := srv.Wishes()
		if len(got) != 1 {
			t.Fatalf("server has %d wishes, want 1", len(got))
		}
		if got[0].Wish != "a sunny weekend" || got[0].Name != wish.DefaultAuthor {
			t.Errorf("stored wish = %+v", got[0])
		}
		if ua := srv.Requests()[0].UserAgent; !strings.HasPrefix(ua, "wishmachine/") {
			t.Errorf("User-Agent = %q, want the build user agent", ua)
		}
	})

	t.Run("name flag", func(t *testing.T) {
		srv := newBackend(t)

		if _, err := execute(t, "--api-url", srv.URL, "send", "--name", "龙小猫", "stars"); err != nil {
			t.Fatalf("send failed: %v", err)
		}
		if got := srv.Wishes()[0].Name; got != "龙小猫" {
			t.Errorf("Name = %q, want 龙小猫", got)
		}
	})

	t.Run("author from environment", func(t *testing.T) {
		srv := newBackend(t)
		t.Setenv("WISHMACHINE_SUBMIT_AUTHOR", "Env Author")

		if _, err := execute(t, "--api-url", srv.URL, "send", "stars"); err != nil {
			t.Fatalf("send failed: %v", err)
		}
		if got := srv.Wishes()[0].Name; got != "Env Author" {
			t.Errorf("Name = %q, want Env Author", got)
		}
	})

	t.Run("whitespace only is rejected locally", func(t *testing.T) {
		srv := newBackend(t)

		_, err := execute(t, "--api-url", srv.URL, "send", "   ")
		if !errors.Is(err, wisherrors.ErrValidation) {
			t.Fatalf("err = %v, want validation error", err)
		}
		if n := srv.CountRequests(http.MethodPost); n != 0 {
			t.Errorf("server received %d POSTs, want 0", n)
		}
	})

	t.Run("server error", func(t *testing.T) {
		srv := newBackend(t)
		srv.FailWith("POST /api/wishes", http.StatusInternalServerError)

		_, err := execute(t, "--api-url", srv.URL, "send", "stars")
		if wisherrors.StatusCode(err) != http.StatusInternalServerError {
			t.Errorf("err = %v, want a 500 status error", err)
		}
	})

	t.Run("requires an argument", func(t *testing.T) {
		if _, err := execute(t, "send"); err == nil {
			t.Error("send without arguments should fail")
		}
	})
}

func TestListCommand(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		srv := newBackend(t)
		srv.Seed("Anonymous", "a telescope")
		srv.Seed("龙小猫", "more stars")

		out, err := execute(t, "--api-url", srv.URL, "list")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		for _, want := range []string{"ID", "NAME", "a telescope", "more stars", "龙小猫", "共有 2 个愿望"} {
			if !strings.Contains(strings.ToUpper(out), strings.ToUpper(want)) {
				t.Errorf("Output should contain %q, got:\n%s", want, out)
			}
		}
		if strings.Index(out, "more stars") > strings.Index(out, "a telescope") {
			t.Error("newest wish should be listed first")
		}
	})

	t.Run("json", func(t *testing.T) {
		srv := newBackend(t)
		srv.Seed("Anonymous", "first")
		srv.Seed("Anonymous", "second")

		out, err := execute(t, "--api-url", srv.URL, "list", "--output", "json")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}

		var got []wish.Wish
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, out)
		}
		if len(got) != 2 || got[0].Wish != "second" || got[1].Wish != "first" {
			t.Errorf("wishes = %+v", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		srv := newBackend(t)

		out, err := execute(t, "--api-url", srv.URL, "list")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if !strings.Contains(out, "还没有愿望") {
			t.Errorf("Output = %q, want the empty state", out)
		}
	})

	t.Run("unknown output format", func(t *testing.T) {
		srv := newBackend(t)

		_, err := execute(t, "--api-url", srv.URL, "list", "-o", "xml")
		if !errors.Is(err, wisherrors.ErrConfig) {
			t.Errorf("err = %v, want config error", err)
		}
		if n := srv.CountRequests(http.MethodGet); n != 0 {
			t.Errorf("server received %d GETs, want 0", n)
		}
	})

	t.Run("server error", func(t *testing.T) {
		srv := newBackend(t)
		srv.FailWith("GET /api/wishes", http.StatusInternalServerError)

		_, err := execute(t, "--api-url", srv.URL, "list")
		if !wisherrors.IsStatus(err) {
			t.Errorf("err = %v, want a status error", err)
		}
	})

	t.Run("unreachable server", func(t *testing.T) {
		srv := apitest.NewServer()
		url := srv.URL
		srv.Close()

		_, err := execute(t, "--api-url", url, "list")
		if !errors.Is(err, wisherrors.ErrNetwork) {
			t.Errorf("err = %v, want network error", err)
		}
	})
}

func TestShowCommand(t *testing.T) {
	srv := newBackend(t)
	w := srv.Seed("Anonymous", "a telescope")

	tests := []struct {
		name       string
		args       []string
		wantErr    error
		wantOutput string
	}{
		{
			name:       "table",
			args:       []string{"show", "1"},
			wantOutput: "a telescope",
		},
		{
			name:       "hash prefix",
			args:       []string{"show", "#1"},
			wantOutput: "a telescope",
		},
		{
			name:       "json",
			args:       []string{"show", "1", "-o", "json"},
			wantOutput: `"created_at": "` + w.CreatedAt + `"`,
		},
		{
			name:    "not found",
			args:    []string{"show", "99"},
			wantErr: wisherrors.ErrNotFound,
		},
		{
			name:    "invalid id",
			args:    []string{"show", "abc"},
			wantErr: wisherrors.ErrValidation,
		},
		{
			name:    "zero id",
			args:    []string{"show", "0"},
			wantErr: wisherrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"--api-url", srv.URL}, tt.args...)...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("show failed: %v", err)
			}
			if !strings.Contains(out, tt.wantOutput) {
				t.Errorf("Output should contain %q, got:\n%s", tt.wantOutput, out)
			}
		})
	}
}

func TestDeleteCommand(t *testing.T) {
	srv := newBackend(t)
	srv.Seed("Anonymous", "keep")
	gone := srv.Seed("Anonymous", "remove")

	out, err := execute(t, "--api-url", srv.URL, "delete", "2")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(out, "#2 deleted") {
		t.Errorf("Output = %q", out)
	}

	left := srv.Wishes()
	if len(left) != 1 || left[0].ID == gone.ID {
		t.Errorf("remaining wishes = %+v", left)
	}

	_, err = execute(t, "--api-url", srv.URL, "rm", "2")
	if !errors.Is(err, wisherrors.ErrNotFound) {
		t.Errorf("second delete err = %v, want not found", err)
	}
}

func TestPingCommand(t *testing.T) {
	srv := newBackend(t)

	out, err := execute(t, "--api-url", srv.URL, "ping")
	if err != nil {
		t.Fatalf("ping failed: %v", err)
	}
	if !strings.Contains(out, "healthy") || !strings.Contains(out, srv.URL) {
		t.Errorf("Output = %q", out)
	}

	srv.RespondRaw("GET /health", `{"status":"degraded"}`)
	if _, err := execute(t, "--api-url", srv.URL, "ping"); !errors.Is(err, wisherrors.ErrAPI) {
		t.Errorf("err = %v, want api error for unhealthy server", err)
	}
}

func TestConfigCommand(t *testing.T) {
	t.Run("init writes defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "config.yaml")

		out, err := execute(t, "--config", path, "config", "init")
		if err != nil {
			t.Fatalf("config init failed: %v", err)
		}
		if !strings.Contains(out, path) {
			t.Errorf("Output = %q, want the path", out)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("config file not written: %v", err)
		}
		if !strings.Contains(string(data), "base_url: http://localhost:8000") {
			t.Errorf("config file = %s", data)
		}
	})

	t.Run("init refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("api:\n  base_url: http://custom:1\n"), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := execute(t, "--config", path, "config", "init")
		if !errors.Is(err, wisherrors.ErrConfig) {
			t.Fatalf("err = %v, want config error", err)
		}

		if _, err := execute(t, "--config", path, "config", "init", "--force"); err != nil {
			t.Fatalf("config init --force failed: %v", err)
		}
		data, _ := os.ReadFile(path)
		if strings.Contains(string(data), "custom") {
			t.Error("--force should overwrite the file")
		}
	})

	t.Run("show reflects file and flags", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "submit:\n  author: File Author\ndisplay:\n  locale: en-US\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		out, err := execute(t, "--config", path, "--api-url", "http://wishes.test:9000/", "config", "show")
		if err != nil {
			t.Fatalf("config show failed: %v", err)
		}
		for _, want := range []string{"# file: " + path, "author: File Author", "locale: en-US", "base_url: http://wishes.test:9000\n"} {
			if !strings.Contains(out, want) {
				t.Errorf("Output should contain %q, got:\n%s", want, out)
			}
		}
	})

	t.Run("show without a file", func(t *testing.T) {
		out, err := execute(t, "config", "show")
		if err != nil {
			t.Fatalf("config show failed: %v", err)
		}
		if !strings.Contains(out, "# file: none") {
			t.Errorf("Output = %q", out)
		}
	})

	t.Run("invalid base url", func(t *testing.T) {
		_, err := execute(t, "--api-url", "ftp://wishes", "config", "show")
		if err == nil {
			t.Error("invalid base URL should fail")
		}
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "wishmachine dev") {
		t.Errorf("Output = %q", out)
	}

	out, err = execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json failed: %v", err)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if info["version"] != "dev" {
		t.Errorf("version = %q, want dev", info["version"])
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{" 42 ", 42, false},
		{"#7", 7, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"x", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parseID(tt.arg)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseID(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseID(%q) = %d, want %d", tt.arg, got, tt.want)
		}
	}
}
