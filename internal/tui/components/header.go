package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/wishmachine/internal/tui/styles"
)

// Title is the application title shown in the header.
const Title = "魔法小狗许愿机"

// Header shows the title, a subtitle, and the screen tabs.
type Header struct {
	subtitle string
	tabs     []string
	active   int
	width    int
}

// NewHeader creates a header with the given tab labels.
func NewHeader(tabs ...string) *Header {
	return &Header{tabs: tabs}
}

// SetSubtitle sets the line under the title.
func (h *Header) SetSubtitle(s string) {
	h.subtitle = s
}

// SetActive selects the highlighted tab.
func (h *Header) SetActive(i int) {
	h.active = i
}

// SetWidth sets the width for centering.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	lines := []string{styles.TitleStyle.Render("✦ " + Title + " ✦")}
	if h.subtitle != "" {
		lines = append(lines, styles.SubtitleStyle.Render(h.subtitle))
	}

	if len(h.tabs) > 0 {
		tabs := make([]string, 0, len(h.tabs))
		for i, t := range h.tabs {
			if i == h.active {
				tabs = append(tabs, styles.ActiveTabStyle.Render(t))
			} else {
				tabs = append(tabs, styles.TabStyle.Render(t))
			}
		}
		lines = append(lines, strings.Join(tabs, " "))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if h.width > 0 {
		return lipgloss.NewStyle().Width(h.width).Align(lipgloss.Center).Render(content)
	}
	return content
}
