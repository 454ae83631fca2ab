package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/wishmachine/internal/tui/styles"
)

// Spinner displays an animated star with a caption. It stands in for the
// sparkle animation while a request is in flight.
type Spinner struct {
	spinner    spinner.Model
	statusText string
	active     bool
}

// starFrames cycles through star glyphs.
var starFrames = spinner.Spinner{
	Frames: []string{"✦", "✧", "✶", "✷", "✸", "✷", "✶", "✧"},
	FPS:    spinner.Dot.FPS,
}

// NewSpinner creates a new Spinner component.
func NewSpinner() *Spinner {
	s := spinner.New()
	s.Spinner = starFrames
	s.Style = lipgloss.NewStyle().Foreground(styles.Accent)
	return &Spinner{spinner: s}
}

// SetStatusText sets the caption shown next to the spinner.
func (s *Spinner) SetStatusText(text string) {
	s.statusText = text
}

// Start activates the animation and returns the first tick.
func (s *Spinner) Start() tea.Cmd {
	s.active = true
	return s.spinner.Tick
}

// Stop halts the animation; pending ticks are dropped.
func (s *Spinner) Stop() {
	s.active = false
}

// Active reports whether the spinner is animating.
func (s *Spinner) Active() bool {
	return s.active
}

// Update advances the animation for this spinner's ticks.
func (s *Spinner) Update(msg tea.Msg) (*Spinner, tea.Cmd) {
	if !s.active {
		return s, nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the spinner and caption.
func (s *Spinner) View() string {
	return s.spinner.View() + " " + styles.PendingTextStyle.Render(s.statusText)
}
