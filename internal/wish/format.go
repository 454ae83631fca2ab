package wish

import (
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no display locale is configured.
const DefaultLocale = "zh-CN"

// layouts maps a base language to its long date/time layout.
var layouts = map[string]string{
	"zh": "2006年1月2日 15:04",
	"ja": "2006年1月2日 15:04",
	"en": "January 2, 2006, 03:04 PM",
	"de": "2. January 2006, 15:04",
}

// Formatter renders creation timestamps for display.
type Formatter struct {
	layout string
	loc    *time.Location
}

// NewFormatter returns a formatter for the given BCP 47 locale tag. Unknown or
// malformed tags fall back to English.
func NewFormatter(locale string) *Formatter {
	return &Formatter{
		layout: layoutFor(locale),
		loc:    time.Local,
	}
}

// SupportedLocale reports whether locale parses and has a dedicated layout.
func SupportedLocale(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	_, ok := layouts[base.String()]
	return ok
}

func layoutFor(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return layouts["en"]
	}
	base, _ := tag.Base()
	if layout, ok := layouts[base.String()]; ok {
		return layout
	}
	return layouts["en"]
}

// In sets the zone timestamps are shown in.
func (f *Formatter) In(loc *time.Location) *Formatter {
	f.loc = loc
	return f
}

// Format renders the wish's creation time, or the raw string when it cannot
// be parsed.
func (f *Formatter) Format(w Wish) string {
	t, ok := w.CreatedTime()
	if !ok {
		return w.CreatedAt
	}
	return t.In(f.loc).Format(f.layout)
}
