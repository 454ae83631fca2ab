package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/wishmachine/internal/tui/styles"
	"github.com/wexinc/wishmachine/internal/wish"
)

// WishCard renders one wish: author, quoted text, creation date and id.
type WishCard struct {
	formatter *wish.Formatter
	width     int
}

// NewWishCard creates a card renderer using formatter for dates.
func NewWishCard(formatter *wish.Formatter) *WishCard {
	return &WishCard{formatter: formatter, width: 60}
}

// SetWidth sets the card width including its border.
func (c *WishCard) SetWidth(width int) {
	c.width = width
}

// View renders w, highlighted when selected.
func (c *WishCard) View(w wish.Wish, selected bool) string {
	inner := c.width - 4
	if inner < 10 {
		inner = 10
	}

	author := styles.AuthorStyle.Render("✦ " + w.Name)
	text := styles.WishTextStyle.Width(inner).Render(fmt.Sprintf("“%s”", w.Wish))

	date := styles.MutedTextStyle.Render("✨ " + c.formatter.Format(w))
	id := styles.IDStyle.Render(fmt.Sprintf("#%d", w.ID))
	gap := inner - lipgloss.Width(date) - lipgloss.Width(id)
	if gap < 1 {
		gap = 1
	}
	footer := date + lipgloss.NewStyle().Width(gap).Render("") + id

	frame := styles.CardStyle
	if selected {
		frame = styles.SelectedCardStyle
	}
	return frame.Width(c.width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, author, text, footer))
}
