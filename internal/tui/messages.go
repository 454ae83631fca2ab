// Package tui provides the terminal user interface for wishmachine.
package tui

import (
	"github.com/wexinc/wishmachine/internal/wish"
)

// Results of IO commands. Each carries the tag of the request that produced
// it so outdated results can be told apart.

// WishCreatedMsg reports a 2xx response to a create request.
type WishCreatedMsg struct {
	Seq  uint64
	Wish *wish.Wish
}

// WishCreateFailedMsg reports a failed create request.
type WishCreateFailedMsg struct {
	Seq uint64
	Err error
}

// ResetMsg fires when the post-submission delay for Seq has elapsed.
type ResetMsg struct {
	Seq uint64
}

// WishesLoadedMsg reports a successful list request.
type WishesLoadedMsg struct {
	Gen    uint64
	Wishes []wish.Wish
}

// WishesFailedMsg reports a failed list request.
type WishesFailedMsg struct {
	Gen uint64
	Err error
}

// WishDeletedMsg reports a 2xx response to a delete request.
type WishDeletedMsg struct {
	ID int64
}

// WishDeleteFailedMsg reports a failed delete request.
type WishDeleteFailedMsg struct {
	ID  int64
	Err error
}

// clearStatusMsg clears the status bar message set at Gen.
type clearStatusMsg struct {
	Gen uint64
}
