package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/wishmachine/internal/logging"
	"github.com/wexinc/wishmachine/internal/submission"
	"github.com/wexinc/wishmachine/internal/wish"
)

// WishAPI is the part of the API client the screens use.
type WishAPI interface {
	List(ctx context.Context) ([]wish.Wish, error)
	Create(ctx context.Context, req wish.CreateRequest) (*wish.Wish, error)
	Delete(ctx context.Context, id int64) error
}

func createCmd(api WishAPI, sub submission.Submission) tea.Cmd {
	return func() tea.Msg {
		ctx := logging.WithView(context.Background(), "submission")
		created, err := api.Create(ctx, sub.Request())
		if err != nil {
			return WishCreateFailedMsg{Seq: sub.Seq, Err: err}
		}
		return WishCreatedMsg{Seq: sub.Seq, Wish: created}
	}
}

func resetCmd(delay time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ResetMsg{Seq: seq}
	})
}

func listCmd(api WishAPI, gen uint64) tea.Cmd {
	return func() tea.Msg {
		ctx := logging.WithView(context.Background(), "listing")
		wishes, err := api.List(ctx)
		if err != nil {
			return WishesFailedMsg{Gen: gen, Err: err}
		}
		return WishesLoadedMsg{Gen: gen, Wishes: wishes}
	}
}

func deleteCmd(api WishAPI, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx := logging.WithView(context.Background(), "listing")
		if err := api.Delete(ctx, id); err != nil {
			return WishDeleteFailedMsg{ID: id, Err: err}
		}
		return WishDeletedMsg{ID: id}
	}
}
