package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/wishmachine/internal/submission"
	"github.com/wexinc/wishmachine/internal/tui/components"
	"github.com/wexinc/wishmachine/internal/tui/styles"
)

// Captions shown in the crystal ball panel.
const (
	CaptionIdle       = "水晶球正在等待龙小猫的心愿..."
	CaptionSubmitting = "正在将愿望传送至宇宙深处..."
	CaptionSent       = "您的愿望已送达星空！"
)

// submitScreen is the wish submission screen.
type submitScreen struct {
	form       *submission.Form
	input      *components.WishInput
	spinner    *components.Spinner
	api        WishAPI
	resetDelay time.Duration
	width      int
}

func newSubmitScreen(api WishAPI, author string, resetDelay time.Duration) *submitScreen {
	sp := components.NewSpinner()
	sp.SetStatusText(CaptionSubmitting)
	return &submitScreen{
		form:       submission.NewForm(author),
		input:      components.NewWishInput(),
		spinner:    sp,
		api:        api,
		resetDelay: resetDelay,
	}
}

// Update applies msg and returns any follow-up command.
func (s *submitScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case components.WishSubmitMsg:
		return s.submit()

	case WishCreatedMsg:
		if !s.form.Succeed(msg.Seq) {
			return nil
		}
		s.spinner.Stop()
		s.input.SetValue("")
		return resetCmd(s.resetDelay, msg.Seq)

	case WishCreateFailedMsg:
		if !s.form.Fail(msg.Seq, msg.Err) {
			return nil
		}
		s.spinner.Stop()
		return tea.Batch(s.input.SetEnabled(true), resetCmd(s.resetDelay, msg.Seq))

	case ResetMsg:
		if !s.form.Reset(msg.Seq) {
			return nil
		}
		return s.input.SetEnabled(true)

	case spinner.TickMsg:
		_, cmd := s.spinner.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.form.SetInput(s.input.Value())
	return cmd
}

// submit starts a send when the form allows it. Whitespace-only input and
// repeated presses while busy do nothing.
func (s *submitScreen) submit() tea.Cmd {
	sub, err := s.form.Begin()
	if err != nil {
		return nil
	}
	s.input.SetEnabled(false)
	return tea.Batch(createCmd(s.api, sub), s.spinner.Start())
}

// focus re-focuses the input when the screen becomes visible.
func (s *submitScreen) focus() tea.Cmd {
	if s.form.Editable() {
		return s.input.SetEnabled(true)
	}
	return nil
}

func (s *submitScreen) setWidth(width int) {
	s.width = width
	w := width - 4
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	s.input.SetWidth(w)
}

func (s *submitScreen) shortcuts() []components.ShortcutDef {
	if s.form.Editable() {
		return components.SubmitShortcuts
	}
	return components.SubmitBusyShortcuts
}

// View renders the crystal ball panel, the input and the failure notice.
func (s *submitScreen) View() string {
	var panel string
	switch s.form.State() {
	case submission.StateSent:
		panel = "🌟\n" + styles.SuccessTextStyle.Render(CaptionSent)
	case submission.StateSubmitting:
		panel = s.spinner.View()
	default:
		panel = "🔮\n" + styles.PendingTextStyle.Render(CaptionIdle)
	}

	panelWidth := s.width - 8
	if panelWidth > 70 {
		panelWidth = 70
	}
	if panelWidth < 20 {
		panelWidth = 20
	}

	var b strings.Builder
	b.WriteString(styles.PanelStyle.Width(panelWidth).Render(panel))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n")

	if notice := s.form.Notice(); notice != "" {
		b.WriteString(styles.ErrorTextStyle.Render("✗ " + notice))
	} else if s.form.CanSubmit() {
		b.WriteString(styles.KeyStyle.Render("Ctrl+S") + styles.HelpStyle.Render(" 许下心愿 ✨"))
	} else {
		b.WriteString(styles.HelpStyle.Render(" "))
	}

	content := b.String()
	if s.width > 0 {
		return lipgloss.NewStyle().Width(s.width).Align(lipgloss.Center).Render(content)
	}
	return content
}
