// Package wish defines the wish record exchanged with the wish API.
package wish

import (
	"strings"
	"time"

	wisherrors "github.com/wexinc/wishmachine/internal/errors"
)

// DefaultAuthor is the display label sent with every wish when no author is configured.
const DefaultAuthor = "Anonymous"

// Wish is a user-submitted text record as returned by the API.
type Wish struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Wish      string `json:"wish"`
	CreatedAt string `json:"created_at"`
}

// CreateRequest is the body of a create call.
type CreateRequest struct {
	Name string `json:"name"`
	Wish string `json:"wish"`
}

// Normalize trims surrounding whitespace from text and rejects what is left
// when it is empty.
func Normalize(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", wisherrors.EmptyWish()
	}
	return trimmed, nil
}

// NewCreateRequest builds a validated create body. An empty author falls back
// to DefaultAuthor.
func NewCreateRequest(author, text string) (CreateRequest, error) {
	body, err := Normalize(text)
	if err != nil {
		return CreateRequest{}, err
	}
	if strings.TrimSpace(author) == "" {
		author = DefaultAuthor
	}
	return CreateRequest{Name: author, Wish: body}, nil
}

// timestampLayouts are tried in order by CreatedTime. The naive forms are what
// the backend emits for UTC-less datetimes.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// CreatedTime parses CreatedAt. Timestamps without a zone are read in the
// local zone.
func (w Wish) CreatedTime() (time.Time, bool) {
	s := strings.TrimSpace(w.CreatedAt)
	if s == "" {
		return time.Time{}, false
	}
	for i, layout := range timestampLayouts {
		var (
			t   time.Time
			err error
		)
		if i == 0 {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, time.Local)
		}
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Remove returns wishes without the entry whose ID is id. The input slice is
// not modified.
func Remove(wishes []Wish, id int64) []Wish {
	out := make([]Wish, 0, len(wishes))
	for _, w := range wishes {
		if w.ID != id {
			out = append(out, w)
		}
	}
	return out
}
