// Package components provides reusable TUI components for wishmachine.
package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/wishmachine/internal/tui/styles"
	"github.com/wexinc/wishmachine/internal/wish"
)

// ConfirmAction represents the action being confirmed.
type ConfirmAction string

const (
	// ConfirmActionDelete is for deleting a wish.
	ConfirmActionDelete ConfirmAction = "delete"
	// ConfirmActionQuit is for quitting while a send is in flight.
	ConfirmActionQuit ConfirmAction = "quit"
)

// ConfirmDialog displays a confirmation prompt for destructive actions.
type ConfirmDialog struct {
	visible     bool
	action      ConfirmAction
	target      int64
	title       string
	message     string
	width       int
	destructive bool
}

// NewConfirmDialog creates a new ConfirmDialog component.
func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{width: 50}
}

// Show displays the dialog for action on target.
func (c *ConfirmDialog) Show(action ConfirmAction, target int64, title, message string, destructive bool) {
	c.visible = true
	c.action = action
	c.target = target
	c.title = title
	c.message = message
	c.destructive = destructive
}

// ShowDelete asks whether w should be deleted.
func (c *ConfirmDialog) ShowDelete(w wish.Wish) {
	c.Show(ConfirmActionDelete, w.ID, "删除愿望?",
		fmt.Sprintf("#%d %q\nThis wish will be removed for everyone.", w.ID, truncate(w.Wish, 60)),
		true)
}

// ShowQuit asks whether to quit while a wish is still being sent.
func (c *ConfirmDialog) ShowQuit() {
	c.Show(ConfirmActionQuit, 0, "Quit?",
		"A wish is still on its way. Quitting now may lose it.",
		false)
}

// Hide hides the dialog.
func (c *ConfirmDialog) Hide() {
	c.visible = false
}

// IsVisible returns whether the dialog is visible.
func (c *ConfirmDialog) IsVisible() bool {
	return c.visible
}

// Action returns the current action being confirmed.
func (c *ConfirmDialog) Action() ConfirmAction {
	return c.action
}

// Target returns the wish id the action applies to.
func (c *ConfirmDialog) Target() int64 {
	return c.target
}

// SetSize sets the dialog width.
func (c *ConfirmDialog) SetSize(width int) {
	c.width = width
}

// Update handles input messages.
func (c *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	if !c.visible {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch strings.ToLower(msg.String()) {
		case "y", "enter":
			action, target := c.action, c.target
			c.Hide()
			return func() tea.Msg {
				return ConfirmYesMsg{Action: action, Target: target}
			}
		case "n", "esc":
			c.Hide()
			return func() tea.Msg {
				return ConfirmNoMsg{}
			}
		}
	}
	return nil
}

// View renders the confirmation dialog.
func (c *ConfirmDialog) View() string {
	if !c.visible {
		return ""
	}

	var b strings.Builder

	titleBg := styles.Warning
	if c.destructive {
		titleBg = styles.Error
	}
	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(titleBg).
		Bold(true).
		Padding(0, 1).
		Width(c.width - 4)
	b.WriteString(titleStyle.Render(c.title))
	b.WriteString("\n\n")

	msgStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Width(c.width - 8)
	b.WriteString(msgStyle.Render(c.message))
	b.WriteString("\n\n")

	yesStyle := styles.ButtonDangerStyle
	if !c.destructive {
		yesStyle = styles.ButtonPrimaryStyle
	}
	b.WriteString(yesStyle.Render("[Y]es"))
	b.WriteString("  ")
	b.WriteString(styles.ButtonSecondaryUnfocusedStyle.Render("[N]o"))

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(titleBg).
		Padding(1, 2).
		Render(b.String())
}

// ConfirmYesMsg is sent when the user confirms.
type ConfirmYesMsg struct {
	Action ConfirmAction
	Target int64
}

// ConfirmNoMsg is sent when the user cancels.
type ConfirmNoMsg struct{}

// truncate shortens s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
