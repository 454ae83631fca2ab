package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/wishmachine/internal/tui/styles"
)

// ShortcutGroup is a titled group of shortcuts.
type ShortcutGroup struct {
	Title     string
	Shortcuts []ShortcutDef
}

// HelpOverlay displays keyboard shortcuts.
type HelpOverlay struct {
	visible bool
	width   int
	groups  []ShortcutGroup
}

// NewHelpOverlay creates a new HelpOverlay component.
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		width: 56,
		groups: []ShortcutGroup{
			{
				Title: "Make a wish",
				Shortcuts: []ShortcutDef{
					{"Ctrl+S", "Send the wish"},
					{"Alt+Enter", "Send the wish"},
					{"Enter", "New line"},
				},
			},
			{
				Title: "Wishes",
				Shortcuts: []ShortcutDef{
					{"j/↓", "Move down"},
					{"k/↑", "Move up"},
					{"d/x", "Delete selected wish"},
					{"r", "Refresh"},
					{"Esc/b", "Back to the wish machine"},
				},
			},
			{
				Title: "General",
				Shortcuts: []ShortcutDef{
					{"Tab", "Switch screen"},
					{"F1", "Toggle help"},
					{"Ctrl+C", "Quit"},
				},
			},
		},
	}
}

// SetGroups sets custom shortcut groups.
func (h *HelpOverlay) SetGroups(groups []ShortcutGroup) {
	h.groups = groups
}

// SetSize sets the overlay width.
func (h *HelpOverlay) SetSize(width int) {
	h.width = width
}

// Toggle toggles visibility.
func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
}

// Hide hides the overlay.
func (h *HelpOverlay) Hide() {
	h.visible = false
}

// IsVisible returns whether the overlay is visible.
func (h *HelpOverlay) IsVisible() bool {
	return h.visible
}

// Update closes the overlay on any key.
func (h *HelpOverlay) Update(msg tea.Msg) tea.Cmd {
	if !h.visible {
		return nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		h.Hide()
		return func() tea.Msg { return HelpClosedMsg{} }
	}
	return nil
}

// View renders the help overlay.
func (h *HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(styles.Primary).
		Bold(true).
		Padding(0, 1).
		Width(h.width - 4)
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	groupTitle := lipgloss.NewStyle().Foreground(styles.Secondary).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Foreground).Bold(true).Width(10)
	descStyle := lipgloss.NewStyle().Foreground(styles.MutedLight)

	for i, group := range h.groups {
		b.WriteString(groupTitle.Render(group.Title))
		b.WriteString("\n")
		for _, sc := range group.Shortcuts {
			b.WriteString("  " + keyStyle.Render(sc.Key) + " " + descStyle.Render(sc.Desc) + "\n")
		}
		if i < len(h.groups)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(styles.Muted).Italic(true).Render("Press any key to close"))

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.Primary).
		Padding(1, 2).
		Render(b.String())
}

// HelpClosedMsg is sent when the help overlay is closed.
type HelpClosedMsg struct{}
