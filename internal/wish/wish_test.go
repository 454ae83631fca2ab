package wish

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	wisherrors "github.com/wexinc/wishmachine/internal/errors"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "a sunny weekend", want: "a sunny weekend"},
		{name: "surrounding whitespace", input: "  \n a puppy \t", want: "a puppy"},
		{name: "inner whitespace kept", input: "one  two\nthree", want: "one  two\nthree"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: " \t\n  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Normalize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, wisherrors.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewCreateRequest(t *testing.T) {
	req, err := NewCreateRequest("", "  stars  ")
	if err != nil {
		t.Fatalf("NewCreateRequest() error = %v", err)
	}
	if req.Name != DefaultAuthor {
		t.Errorf("Name = %q, want %q", req.Name, DefaultAuthor)
	}
	if req.Wish != "stars" {
		t.Errorf("Wish = %q, want %q", req.Wish, "stars")
	}

	req, err = NewCreateRequest("Long Xiaomao", "moon")
	if err != nil {
		t.Fatalf("NewCreateRequest() error = %v", err)
	}
	if req.Name != "Long Xiaomao" {
		t.Errorf("Name = %q", req.Name)
	}

	if _, err := NewCreateRequest("x", "   "); err == nil {
		t.Error("expected error for whitespace-only wish")
	}
}

func TestCreateRequestJSON(t *testing.T) {
	data, err := json.Marshal(CreateRequest{Name: "Anonymous", Wish: "cake"})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"name":"Anonymous","wish":"cake"}` {
		t.Errorf("body = %s", data)
	}
}

func TestCreatedTime(t *testing.T) {
	tests := []struct {
		name      string
		createdAt string
		wantOK    bool
		want      time.Time
	}{
		{
			name:      "rfc3339 utc",
			createdAt: "2024-01-15T14:30:00Z",
			wantOK:    true,
			want:      time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			name:      "naive with microseconds",
			createdAt: "2024-01-15T14:30:05.123456",
			wantOK:    true,
			want:      time.Date(2024, 1, 15, 14, 30, 5, 123456000, time.Local),
		},
		{
			name:      "naive space separated",
			createdAt: "2024-01-15 14:30:05",
			wantOK:    true,
			want:      time.Date(2024, 1, 15, 14, 30, 5, 0, time.Local),
		},
		{name: "empty", createdAt: "", wantOK: false},
		{name: "garbage", createdAt: "yesterday", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Wish{CreatedAt: tt.createdAt}.CreatedTime()
			if ok != tt.wantOK {
				t.Fatalf("CreatedTime() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("CreatedTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	wishes := []Wish{{ID: 1}, {ID: 2}, {ID: 3}}

	got := Remove(wishes, 2)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("Remove(2) = %+v", got)
	}
	if len(wishes) != 3 || wishes[1].ID != 2 {
		t.Error("Remove should not modify its input")
	}

	if got := Remove(wishes, 99); len(got) != 3 {
		t.Errorf("Remove(missing) should keep all items, got %d", len(got))
	}
}
