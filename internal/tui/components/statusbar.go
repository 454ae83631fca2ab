package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/wishmachine/internal/tui/styles"
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	// Endpoint is the API base URL.
	Endpoint string
	// Message is an optional transient message.
	Message string
	// Shortcuts are shown on the right.
	Shortcuts []ShortcutDef
}

// StatusBar shows the API endpoint, a message, and keyboard shortcuts.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetEndpoint sets the API base URL shown on the left.
func (s *StatusBar) SetEndpoint(endpoint string) {
	s.data.Endpoint = endpoint
}

// SetMessage sets an optional status message.
func (s *StatusBar) SetMessage(message string) {
	s.data.Message = message
}

// Message returns the current status message.
func (s *StatusBar) Message() string {
	return s.data.Message
}

// SetShortcuts sets the shortcuts shown on the right.
func (s *StatusBar) SetShortcuts(shortcuts []ShortcutDef) {
	s.data.Shortcuts = shortcuts
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().Foreground(styles.Muted).Render(" │ ")

	left := ""
	if s.data.Endpoint != "" {
		left = styles.HelpStyle.Render("API: ") +
			lipgloss.NewStyle().Foreground(styles.MutedLight).Render(s.data.Endpoint)
	}
	if s.data.Message != "" {
		msg := lipgloss.NewStyle().Foreground(styles.Warning).Italic(true).Render(s.data.Message)
		if left != "" {
			left += sep
		}
		left += msg
	}

	right := NewShortcutBar(s.data.Shortcuts...).View()

	container := styles.StatusBarStyle
	if s.width > 0 {
		container = container.Width(s.width)
		padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
		if padding > 0 {
			return container.Render(left + strings.Repeat(" ", padding) + right)
		}
	}
	if left == "" {
		return container.Render(right)
	}
	return container.Render(left + "  " + right)
}
