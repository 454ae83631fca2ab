// Package submission holds the state of the wish submission view: the input
// text, whether a send is in flight, and the transient "sent" confirmation.
package submission

import (
	"fmt"

	wisherrors "github.com/wexinc/wishmachine/internal/errors"
	"github.com/wexinc/wishmachine/internal/logging"
	"github.com/wexinc/wishmachine/internal/wish"
)

// FailureNotice is shown after a failed send until the next reset.
const FailureNotice = "Your wish could not be delivered, try again"

// State is the phase of the submission view.
type State string

const (
	// StateIdle accepts input and submission.
	StateIdle State = "idle"
	// StateSubmitting has one request in flight.
	StateSubmitting State = "submitting"
	// StateSent shows the confirmation until the reset timer fires.
	StateSent State = "sent"
)

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}

// ValidTransitions maps each state to its valid next states.
var ValidTransitions = map[State][]State{
	StateIdle:       {StateSubmitting},
	StateSubmitting: {StateIdle, StateSent},
	StateSent:       {StateIdle},
}

// CanTransitionTo returns true if the transition from s to next is valid.
func (s State) CanTransitionTo(next State) bool {
	for _, v := range ValidTransitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

// TransitionError represents an invalid state transition.
type TransitionError struct {
	From State
	To   State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// Submission is one accepted send, tagged with its sequence number.
type Submission struct {
	Seq  uint64
	Name string
	Text string
}

// Request returns the API body for the submission.
func (s Submission) Request() wish.CreateRequest {
	return wish.CreateRequest{Name: s.Name, Wish: s.Text}
}

// Form is the submission view state. It is not safe for concurrent use; the
// UI event loop owns it.
type Form struct {
	author string
	input  string
	state  State
	seq    uint64
	notice string
}

// NewForm creates an idle form that sends wishes under author. An empty
// author means wish.DefaultAuthor.
func NewForm(author string) *Form {
	if author == "" {
		author = wish.DefaultAuthor
	}
	return &Form{author: author, state: StateIdle}
}

// State returns the current phase.
func (f *Form) State() State { return f.state }

// Input returns the current input text.
func (f *Form) Input() string { return f.input }

// Notice returns the failure notice, or "" when there is none.
func (f *Form) Notice() string { return f.notice }

// Seq returns the sequence number of the latest submission.
func (f *Form) Seq() uint64 { return f.seq }

// Editable reports whether input changes are accepted.
func (f *Form) Editable() bool { return f.state == StateIdle }

// SetInput replaces the input text. It is ignored unless the form is idle and
// reports whether the text was applied.
func (f *Form) SetInput(text string) bool {
	if !f.Editable() {
		return false
	}
	f.input = text
	return true
}

// CanSubmit reports whether Begin would succeed.
func (f *Form) CanSubmit() bool {
	if f.state != StateIdle {
		return false
	}
	_, err := wish.Normalize(f.input)
	return err == nil
}

// Begin accepts the current input for sending and moves to StateSubmitting.
// Whitespace-only input or a form that is not idle yields an error and
// leaves the form unchanged.
func (f *Form) Begin() (Submission, error) {
	if !f.state.CanTransitionTo(StateSubmitting) {
		return Submission{}, &TransitionError{From: f.state, To: StateSubmitting}
	}
	text, err := wish.Normalize(f.input)
	if err != nil {
		return Submission{}, err
	}

	f.seq++
	f.state = StateSubmitting
	logging.Debug("wish submission started", "seq", f.seq, "length", len(text))
	return Submission{Seq: f.seq, Name: f.author, Text: text}, nil
}

// Succeed records a 2xx response for submission seq: the form shows the
// confirmation and the input is cleared. Results for any other sequence are
// ignored. It reports whether the result was applied.
func (f *Form) Succeed(seq uint64) bool {
	if seq != f.seq || f.state != StateSubmitting {
		return false
	}
	f.state = StateSent
	f.input = ""
	f.notice = ""
	logging.Info("wish delivered", "seq", seq)
	return true
}

// Fail records a failed send for submission seq. The form returns to idle
// with the input intact and a failure notice. It reports whether the result
// was applied.
func (f *Form) Fail(seq uint64, err error) bool {
	if seq != f.seq || f.state != StateSubmitting {
		return false
	}
	f.state = StateIdle
	f.notice = FailureNotice
	logging.Warn("wish submission failed",
		"seq", seq,
		"transport", wisherrors.IsTransport(err),
		"status", wisherrors.StatusCode(err),
		"error", err,
	)
	return true
}

// Reset is the delayed timer scheduled after every outcome. It returns the
// form to idle and clears the notice, but only for the latest submission; a
// stale timer is ignored. It reports whether the reset was applied.
func (f *Form) Reset(seq uint64) bool {
	if seq != f.seq || f.state == StateSubmitting {
		return false
	}
	f.state = StateIdle
	f.notice = ""
	return true
}
