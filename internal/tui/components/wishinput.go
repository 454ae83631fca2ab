package components

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/wishmachine/internal/tui/styles"
)

// Placeholder is shown in the empty wish input.
const Placeholder = "在此输入您最深的心愿... ✨"

// WishSubmitMsg is sent when the user asks to send the current input.
type WishSubmitMsg struct{}

// WishInput is the multi-line wish text area. Enter inserts a newline;
// Ctrl+S or Alt+Enter asks to send.
type WishInput struct {
	textarea textarea.Model
	enabled  bool
	width    int
}

// NewWishInput creates an enabled, focused wish input.
func NewWishInput() *WishInput {
	ta := textarea.New()
	ta.Placeholder = Placeholder
	ta.CharLimit = 1000
	ta.ShowLineNumbers = false
	ta.SetWidth(56)
	ta.SetHeight(4)
	ta.Focus()

	return &WishInput{textarea: ta, enabled: true, width: 60}
}

// SetWidth sets the component width including its border.
func (w *WishInput) SetWidth(width int) {
	w.width = width
	if width > 4 {
		w.textarea.SetWidth(width - 4)
	}
}

// SetEnabled toggles whether keys edit the text. A disabled input keeps its
// text but ignores typing.
func (w *WishInput) SetEnabled(enabled bool) tea.Cmd {
	w.enabled = enabled
	if enabled {
		return w.textarea.Focus()
	}
	w.textarea.Blur()
	return nil
}

// Enabled reports whether the input accepts typing.
func (w *WishInput) Enabled() bool {
	return w.enabled
}

// Value returns the current text.
func (w *WishInput) Value() string {
	return w.textarea.Value()
}

// SetValue replaces the text.
func (w *WishInput) SetValue(value string) {
	w.textarea.SetValue(value)
}

// Update handles messages for the component.
func (w *WishInput) Update(msg tea.Msg) (*WishInput, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+s", "alt+enter":
			return w, func() tea.Msg { return WishSubmitMsg{} }
		}
		if !w.enabled {
			return w, nil
		}
	}

	var cmd tea.Cmd
	w.textarea, cmd = w.textarea.Update(msg)
	return w, cmd
}

// View renders the component.
func (w *WishInput) View() string {
	frame := styles.InputStyle
	if !w.enabled {
		frame = styles.DisabledInputStyle
	}
	return frame.Render(w.textarea.View())
}
