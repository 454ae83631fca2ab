package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/wishmachine/internal/config"
	"github.com/wexinc/wishmachine/internal/logging"
	"github.com/wexinc/wishmachine/internal/submission"
	"github.com/wexinc/wishmachine/internal/tui/components"
	"github.com/wexinc/wishmachine/internal/wish"
)

// Screen identifies one of the two screens.
type Screen int

const (
	// ScreenSubmit is the wish machine.
	ScreenSubmit Screen = iota
	// ScreenList is the wish listing.
	ScreenList
)

// String returns the tab label of the screen.
func (s Screen) String() string {
	switch s {
	case ScreenSubmit:
		return "许愿"
	case ScreenList:
		return "愿望星空"
	default:
		return "?"
	}
}

// Subtitles shown in the header.
const (
	SubtitleSubmit = "✨ 许下心愿，见证奇迹发生 ✨"
	SubtitleList   = "✨ 龙小猫专属 ✨"
)

// statusTTL is how long a transient status message stays visible.
const statusTTL = 4 * time.Second

// Model is the Bubble Tea model for the wishmachine TUI. Both screens live for
// the whole program, so every IO result is applied to the screen that issued
// it.
type Model struct {
	// Components
	header     *components.Header
	statusBar  *components.StatusBar
	help       *components.HelpOverlay
	confirmDlg *components.ConfirmDialog

	// Screens
	submit *submitScreen
	list   *listScreen
	screen Screen

	// Window dimensions
	width  int
	height int

	statusGen uint64
	quitting  bool
}

// New creates the TUI model from the loaded configuration and an API client.
func New(cfg *config.Config, api WishAPI, endpoint string) *Model {
	formatter := wish.NewFormatter(cfg.Display.Locale)

	m := &Model{
		header:     components.NewHeader(ScreenSubmit.String(), ScreenList.String()),
		statusBar:  components.NewStatusBar(),
		help:       components.NewHelpOverlay(),
		confirmDlg: components.NewConfirmDialog(),
		submit:     newSubmitScreen(api, cfg.Submit.Author, cfg.Submit.ResetDelay),
		list:       newListScreen(api, formatter),
		screen:     ScreenSubmit,
	}
	m.statusBar.SetEndpoint(endpoint)
	m.header.SetSubtitle(SubtitleSubmit)
	return m
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, tea.SetWindowTitle(components.Title))
}

// Screen returns the visible screen.
func (m *Model) Screen() Screen {
	return m.screen
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Overlays capture keys while visible.
	if _, isKey := msg.(tea.KeyMsg); isKey {
		if m.confirmDlg.IsVisible() {
			return m, m.confirmDlg.Update(msg)
		}
		if m.help.IsVisible() {
			return m, m.help.Update(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.submit.setWidth(msg.Width)
		m.list.setSize(msg.Width, msg.Height)
		m.confirmDlg.SetSize(min(50, msg.Width))
		m.help.SetSize(min(56, msg.Width))
		return m, nil

	case spinner.TickMsg:
		return m, tea.Batch(m.submit.Update(msg), m.list.Update(msg))

	case WishCreatedMsg, WishCreateFailedMsg, ResetMsg:
		return m, m.submit.Update(msg)

	case WishesLoadedMsg, WishesFailedMsg, WishDeletedMsg:
		return m, m.list.Update(msg)

	case WishDeleteFailedMsg:
		cmd := m.list.Update(msg)
		return m, tea.Batch(cmd, m.setStatus(fmt.Sprintf("删除失败: #%d", msg.ID)))

	case components.ConfirmYesMsg:
		return m.handleConfirmYes(msg)

	case components.ConfirmNoMsg, components.HelpClosedMsg:
		return m, nil

	case clearStatusMsg:
		if msg.Gen == m.statusGen {
			m.statusBar.SetMessage("")
		}
		return m, nil
	}

	// Cursor blink and other input plumbing.
	if m.screen == ScreenSubmit {
		return m, m.submit.Update(msg)
	}
	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "f1":
		m.help.Toggle()
		return m, nil
	case "tab", "shift+tab":
		if m.screen == ScreenSubmit {
			return m, m.switchTo(ScreenList)
		}
		return m, m.switchTo(ScreenSubmit)
	}

	if m.screen == ScreenSubmit {
		return m, m.submit.Update(msg)
	}

	switch msg.String() {
	case "esc", "b":
		return m, m.switchTo(ScreenSubmit)
	case "q":
		if m.submit.form.State() == submission.StateSubmitting {
			m.confirmDlg.ShowQuit()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.help.Toggle()
		return m, nil
	case "d", "x", "delete":
		if w, ok := m.list.board.Selected(); ok {
			m.confirmDlg.ShowDelete(w)
		}
		return m, nil
	}
	return m, m.list.Update(msg)
}

// switchTo makes s the visible screen. Entering the listing always fetches.
func (m *Model) switchTo(s Screen) tea.Cmd {
	m.screen = s
	m.header.SetActive(int(s))
	logging.Debug("screen changed", "screen", s.String())

	if s == ScreenList {
		m.header.SetSubtitle(SubtitleList)
		m.submit.input.SetEnabled(false)
		return m.list.Enter()
	}
	m.header.SetSubtitle(SubtitleSubmit)
	return m.submit.focus()
}

// handleConfirmYes handles confirmed actions.
func (m *Model) handleConfirmYes(msg components.ConfirmYesMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case components.ConfirmActionDelete:
		return m, m.list.Delete(msg.Target)
	case components.ConfirmActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// setStatus shows a transient message in the status bar.
func (m *Model) setStatus(text string) tea.Cmd {
	m.statusGen++
	gen := m.statusGen
	m.statusBar.SetMessage(text)
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{Gen: gen}
	})
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return "愿星光常伴 ✨\n"
	}

	var body string
	if m.screen == ScreenList {
		body = m.list.View()
		m.statusBar.SetShortcuts(components.ListShortcuts)
	} else {
		body = m.submit.View()
		m.statusBar.SetShortcuts(m.submit.shortcuts())
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		"",
		body,
		"",
		m.statusBar.View(),
	)

	if m.help.IsVisible() {
		view = m.renderOverlay(view, m.help.View())
	}
	if m.confirmDlg.IsVisible() {
		view = m.renderOverlay(view, m.confirmDlg.View())
	}
	return view
}

// renderOverlay places overlay centered over the screen.
func (m *Model) renderOverlay(base, overlay string) string {
	if overlay == "" {
		return base
	}
	if m.width <= 0 || m.height <= 0 {
		return base + "\n" + overlay
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}

// Run starts the TUI and blocks until the user quits.
func Run(cfg *config.Config, api WishAPI, endpoint string) error {
	p := tea.NewProgram(New(cfg, api, endpoint), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
