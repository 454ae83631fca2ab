// Package styles provides Lip Gloss styles for the wishmachine TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI: a night sky with gold accents.
var (
	Primary     = lipgloss.Color("#7C3AED") // Purple
	Secondary   = lipgloss.Color("#F9A8D4") // Pink
	Accent      = lipgloss.Color("#FACC15") // Gold
	Success     = lipgloss.Color("#FDE047") // Star yellow
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#A78BFA") // Lavender
	MutedLight  = lipgloss.Color("#DDD6FE") // Pale lavender
	Background  = lipgloss.Color("#1E1B4B") // Indigo night
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#CA8A04") // Dim gold
)

// Header styles.
var (
	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// SubtitleStyle is for the line under the title.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// TabStyle is for an inactive screen tab.
	TabStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	// ActiveTabStyle is for the current screen tab.
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Background).
			Background(Accent).
			Bold(true).
			Padding(0, 1)
)

// Box styles.
var (
	// PanelStyle frames the crystal ball display.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2).
			Align(lipgloss.Center)

	// CardStyle frames one wish.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	// SelectedCardStyle frames the wish under the cursor.
	SelectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(Accent).
				Padding(0, 1)

	// InputStyle frames the wish textarea.
	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent)

	// DisabledInputStyle frames the textarea while it does not accept input.
	DisabledInputStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Muted)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// ErrorBannerStyle is for the listing error banner.
	ErrorBannerStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Error).
				Padding(0, 1)

	// SuccessTextStyle is for the sent confirmation.
	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success).
				Bold(true)

	// PendingTextStyle is for in-flight and idle captions.
	PendingTextStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// AuthorStyle is for the author line of a wish card.
	AuthorStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// WishTextStyle is for the quoted wish text.
	WishTextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// IDStyle is for the #id tag.
	IDStyle = lipgloss.NewStyle().
		Foreground(Accent)
)

// Status bar styles.
var (
	// StatusBarStyle is the main status bar container.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Background(Background).
			Padding(0, 1)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Button styles.
var (
	// ButtonPrimaryStyle is for the confirming button.
	ButtonPrimaryStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Accent).
				Bold(true).
				Padding(0, 2)

	// ButtonSecondaryUnfocusedStyle is for the cancelling button.
	ButtonSecondaryUnfocusedStyle = lipgloss.NewStyle().
					Foreground(MutedLight).
					Border(lipgloss.NormalBorder()).
					BorderForeground(Muted).
					Padding(0, 1)

	// ButtonDangerStyle is for destructive confirmation.
	ButtonDangerStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Error).
				Bold(true).
				Padding(0, 2)
)
