package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewHelpOverlay(t *testing.T) {
	h := NewHelpOverlay()

	if h.IsVisible() {
		t.Error("HelpOverlay should be hidden by default")
	}
	if len(h.groups) != 3 {
		t.Errorf("Expected 3 default groups, got %d", len(h.groups))
	}
}

func TestHelpOverlayVisibility(t *testing.T) {
	h := NewHelpOverlay()

	h.Toggle()
	if !h.IsVisible() {
		t.Error("Toggle should show the overlay")
	}

	h.Toggle()
	if h.IsVisible() {
		t.Error("Second toggle should hide the overlay")
	}

	h.Toggle()
	h.Hide()
	if h.IsVisible() {
		t.Error("Hide should hide the overlay")
	}
}

func TestHelpOverlaySetSize(t *testing.T) {
	h := NewHelpOverlay()
	h.SetSize(70)

	if h.width != 70 {
		t.Errorf("Width should be 70, got %d", h.width)
	}
}

func TestHelpOverlaySetGroups(t *testing.T) {
	h := NewHelpOverlay()
	h.SetGroups([]ShortcutGroup{
		{Title: "Custom", Shortcuts: []ShortcutDef{{"x", "do x"}}},
	})
	h.Toggle()

	view := h.View()
	if !strings.Contains(view, "Custom") || !strings.Contains(view, "do x") {
		t.Error("View should render custom groups")
	}
	if strings.Contains(view, "Make a wish") {
		t.Error("Default groups should be replaced")
	}
}

func TestHelpOverlayUpdateWhenHidden(t *testing.T) {
	h := NewHelpOverlay()

	if cmd := h.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("Hidden overlay should not return commands")
	}
}

func TestHelpOverlayUpdateClosesOnKey(t *testing.T) {
	h := NewHelpOverlay()
	h.Toggle()

	cmd := h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("Key press should return a command")
	}
	if h.IsVisible() {
		t.Error("Key press should close the overlay")
	}
	if _, ok := cmd().(HelpClosedMsg); !ok {
		t.Errorf("Expected HelpClosedMsg, got %T", cmd())
	}
}

func TestHelpOverlayIgnoresNonKeyMessages(t *testing.T) {
	h := NewHelpOverlay()
	h.Toggle()

	if cmd := h.Update(tea.WindowSizeMsg{Width: 10, Height: 10}); cmd != nil {
		t.Error("Non-key message should not return a command")
	}
	if !h.IsVisible() {
		t.Error("Non-key message should keep the overlay open")
	}
}

func TestHelpOverlayView(t *testing.T) {
	h := NewHelpOverlay()
	if h.View() != "" {
		t.Error("Hidden overlay should render empty string")
	}

	h.Toggle()
	view := h.View()
	for _, want := range []string{"Keyboard Shortcuts", "Make a wish", "Wishes", "Ctrl+S", "Press any key to close"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q", want)
		}
	}
}
