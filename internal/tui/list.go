package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/wishmachine/internal/listing"
	"github.com/wexinc/wishmachine/internal/tui/components"
	"github.com/wexinc/wishmachine/internal/tui/styles"
	"github.com/wexinc/wishmachine/internal/wish"
)

// Listing screen copy.
const (
	ListTitle        = "愿望星空"
	ListSubtitle     = "✨ 所有美好的愿望都在这里 ✨"
	CaptionLoading   = "正在加载愿望..."
	EmptyStateTitle  = "还没有愿望"
	EmptyStateInvite = "成为第一个许愿的人吧！"
)

// countLine is the footer shown under a non-empty listing.
func countLine(n int) string {
	return fmt.Sprintf("✨ 共有 %d 个愿望在星空中闪耀 ✨", n)
}

// listScreen is the wish listing screen.
type listScreen struct {
	board   *listing.Board
	card    *components.WishCard
	spinner *components.Spinner
	api     WishAPI
	width   int
	height  int
	offset  int
}

func newListScreen(api WishAPI, formatter *wish.Formatter) *listScreen {
	sp := components.NewSpinner()
	sp.SetStatusText(CaptionLoading)
	return &listScreen{
		board:   listing.NewBoard(),
		card:    components.NewWishCard(formatter),
		spinner: sp,
		api:     api,
	}
}

// Enter starts a fresh fetch. It runs every time the screen is shown.
func (l *listScreen) Enter() tea.Cmd {
	gen := l.board.Begin()
	l.offset = 0
	return tea.Batch(listCmd(l.api, gen), l.spinner.Start())
}

// Update applies msg and returns any follow-up command.
func (l *listScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case WishesLoadedMsg:
		if l.board.Loaded(msg.Gen, msg.Wishes) {
			l.spinner.Stop()
			l.offset = 0
		}
		return nil

	case WishesFailedMsg:
		if l.board.Failed(msg.Gen, msg.Err) {
			l.spinner.Stop()
		}
		return nil

	case WishDeletedMsg:
		l.board.Remove(msg.ID)
		return nil

	case WishDeleteFailedMsg:
		l.board.DeleteFailed(msg.ID, msg.Err)
		return nil

	case spinner.TickMsg:
		_, cmd := l.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			l.board.MoveDown()
		case "k", "up":
			l.board.MoveUp()
		case "r":
			return l.Enter()
		}
	}
	return nil
}

// Delete issues the delete request for id.
func (l *listScreen) Delete(id int64) tea.Cmd {
	return deleteCmd(l.api, id)
}

func (l *listScreen) setSize(width, height int) {
	l.width = width
	l.height = height
	w := width - 4
	if w > 80 {
		w = 80
	}
	if w < 24 {
		w = 24
	}
	l.card.SetWidth(w)
}

// View renders the title, the error banner or cards, and the footer.
func (l *listScreen) View() string {
	var sections []string

	sections = append(sections,
		styles.TitleStyle.Render(ListTitle),
		styles.SubtitleStyle.Render(ListSubtitle),
		"",
	)

	if msg := l.board.Error(); msg != "" {
		sections = append(sections, styles.ErrorBannerStyle.Render(msg), "")
	}

	switch {
	case l.board.State() == listing.StateLoading:
		sections = append(sections, l.spinner.View())
	case l.board.ShowEmptyState():
		sections = append(sections,
			"🌟",
			styles.PendingTextStyle.Render(EmptyStateTitle),
			styles.MutedTextStyle.Render(EmptyStateInvite),
		)
	case !l.board.Empty():
		sections = append(sections, l.renderCards())
		sections = append(sections, "", styles.PendingTextStyle.Render(countLine(l.board.Count())))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if l.width > 0 {
		return lipgloss.NewStyle().Width(l.width).Align(lipgloss.Center).Render(content)
	}
	return content
}

// renderCards renders the cards that fit, scrolled so the cursor is visible.
func (l *listScreen) renderCards() string {
	wishes := l.board.Wishes()
	cursor := l.board.Cursor()

	rendered := make([]string, len(wishes))
	for i, w := range wishes {
		rendered[i] = l.card.View(w, i == cursor)
	}

	// Reserve room for the header, title block, footer and status bar.
	avail := l.height - 14
	if l.height <= 0 || avail <= 0 {
		return strings.Join(rendered, "\n")
	}

	if l.offset > cursor {
		l.offset = cursor
	}
	for l.offset < cursor && height(rendered[l.offset:cursor+1]) > avail {
		l.offset++
	}

	end := l.offset
	used := 0
	for end < len(rendered) {
		h := lipgloss.Height(rendered[end])
		if used+h > avail && end > l.offset {
			break
		}
		used += h
		end++
	}
	return strings.Join(rendered[l.offset:end], "\n")
}

func height(blocks []string) int {
	n := 0
	for _, b := range blocks {
		n += lipgloss.Height(b)
	}
	return n
}
