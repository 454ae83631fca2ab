// Package listing holds the state of the wish listing view: the last fetched
// collection, the load phase, and the selection cursor.
package listing

import (
	wisherrors "github.com/wexinc/wishmachine/internal/errors"
	"github.com/wexinc/wishmachine/internal/logging"
	"github.com/wexinc/wishmachine/internal/wish"
)

// Messages shown when a load fails.
const (
	MsgFetchFailed = "Failed to fetch wishes"
	MsgConnection  = "Error connecting to server"
)

// State is the phase of the listing view.
type State string

const (
	// StateLoading has a fetch in flight; the collection is empty.
	StateLoading State = "loading"
	// StateReady holds the fetched collection.
	StateReady State = "ready"
	// StateErrored holds an error message and no wishes.
	StateErrored State = "errored"
)

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}

// Board is the listing view state. It is not safe for concurrent use; the UI
// event loop owns it.
type Board struct {
	state  State
	wishes []wish.Wish
	err    string
	gen    uint64
	cursor int
}

// NewBoard creates a board in the loading state with no fetch issued yet.
func NewBoard() *Board {
	return &Board{state: StateLoading, wishes: []wish.Wish{}}
}

// Begin starts a fetch: the board empties, enters StateLoading, and returns
// the generation the result must be reported under.
func (b *Board) Begin() uint64 {
	b.gen++
	b.state = StateLoading
	b.wishes = []wish.Wish{}
	b.err = ""
	b.cursor = 0
	return b.gen
}

// Generation returns the generation of the latest fetch.
func (b *Board) Generation() uint64 { return b.gen }

// Loaded applies a successful fetch. Results for an older generation are
// dropped. It reports whether the result was applied.
func (b *Board) Loaded(gen uint64, wishes []wish.Wish) bool {
	if gen != b.gen {
		logging.Debug("dropping stale wish list", "gen", gen, "current", b.gen)
		return false
	}
	if wishes == nil {
		wishes = []wish.Wish{}
	}
	b.state = StateReady
	b.wishes = wishes
	b.err = ""
	b.cursor = 0
	return true
}

// Failed applies a failed fetch. A non-2xx response reads MsgFetchFailed;
// anything else, including an unreadable body, reads MsgConnection. Results
// for an older generation are dropped. It reports whether the result was
// applied.
func (b *Board) Failed(gen uint64, err error) bool {
	if gen != b.gen {
		logging.Debug("dropping stale wish list failure", "gen", gen, "current", b.gen, "error", err)
		return false
	}
	b.state = StateErrored
	b.wishes = []wish.Wish{}
	b.cursor = 0
	if wisherrors.IsStatus(err) {
		b.err = MsgFetchFailed
	} else {
		b.err = MsgConnection
	}
	logging.Error("fetching wishes failed", "gen", gen, "error", err)
	return true
}

// Remove drops the wish with id after a successful delete. No other wish is
// touched and nothing is re-fetched.
func (b *Board) Remove(id int64) {
	b.wishes = wish.Remove(b.wishes, id)
	b.clampCursor()
}

// DeleteFailed records a failed delete. The wish stays in place.
func (b *Board) DeleteFailed(id int64, err error) {
	logging.Error("deleting wish failed", "id", id, "error", err)
}

// State returns the current phase.
func (b *Board) State() State { return b.state }

// Error returns the error message, or "" outside StateErrored.
func (b *Board) Error() string { return b.err }

// Wishes returns the current collection in server order.
func (b *Board) Wishes() []wish.Wish { return b.wishes }

// Count returns the number of wishes held.
func (b *Board) Count() int { return len(b.wishes) }

// Empty reports whether no wishes are held.
func (b *Board) Empty() bool { return len(b.wishes) == 0 }

// ShowEmptyState reports whether the "no wishes yet" message applies: the
// fetch finished without error and returned nothing.
func (b *Board) ShowEmptyState() bool {
	return b.state == StateReady && b.Empty()
}

// Cursor returns the selected index.
func (b *Board) Cursor() int { return b.cursor }

// Selected returns the wish under the cursor.
func (b *Board) Selected() (wish.Wish, bool) {
	if b.cursor < 0 || b.cursor >= len(b.wishes) {
		return wish.Wish{}, false
	}
	return b.wishes[b.cursor], true
}

// Select moves the cursor to the wish with id. It reports whether the id
// was found.
func (b *Board) Select(id int64) bool {
	for i, w := range b.wishes {
		if w.ID == id {
			b.cursor = i
			return true
		}
	}
	return false
}

// MoveUp moves the cursor one wish towards the top.
func (b *Board) MoveUp() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveDown moves the cursor one wish towards the bottom.
func (b *Board) MoveDown() {
	if b.cursor < len(b.wishes)-1 {
		b.cursor++
	}
}

func (b *Board) clampCursor() {
	if b.cursor >= len(b.wishes) {
		b.cursor = len(b.wishes) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
}
