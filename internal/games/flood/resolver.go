package flood

import (
	"wordflood/internal/core"
)

// Mode selects how the player builds words. The two modes are mutually
// exclusive for a session.
type Mode int

const (
	// ModeGrid builds the word by selecting board cells in order.
	ModeGrid Mode = iota
	// ModeTyped builds the word by free text entry, validated against the
	// board's letter multiset before the dictionary.
	ModeTyped
)

// Submission is a word handed to the dictionary oracle. It carries enough
// context to apply (or discard) its board mutation when the asynchronous
// check resolves: the cells to clear in grid mode, and the session generation
// it belongs to.
type Submission struct {
	Word      string // uppercase
	Positions []Pos  // grid mode: the selected cells, in pick order
	Session   uint64
}

// CompleteResult describes the outcome of resolving a submission.
type CompleteResult struct {
	// Stale means the submission belonged to a superseded session and was
	// ignored entirely.
	Stale bool
	// Discarded means the word was valid but game over latched while the
	// check was in flight, so the board mutation was dropped.
	Discarded bool
	// Accepted means the word was valid and its letters were removed.
	Accepted bool
}

// Resolver owns the player's in-progress word and adjudicates submissions.
// State machine per session: Idle -> Validating -> Idle, with at most one
// submission in flight at a time.
type Resolver struct {
	mode      Mode
	selection []Pos
	word      []rune
	inFlight  bool
	session   uint64
}

// NewResolver creates a resolver for the given input mode.
func NewResolver(mode Mode) *Resolver {
	return &Resolver{mode: mode}
}

// Reset clears all selection state and starts a new session generation.
// Any submission still in flight belongs to the old generation and will be
// ignored when it resolves.
func (r *Resolver) Reset() {
	r.session++
	r.selection = nil
	r.word = nil
	r.inFlight = false
}

// Mode returns the resolver's input mode.
func (r *Resolver) Mode() Mode {
	return r.mode
}

// Word returns the current in-progress word.
func (r *Resolver) Word() string {
	return string(r.word)
}

// Selection returns a copy of the selected positions in pick order.
func (r *Resolver) Selection() []Pos {
	out := make([]Pos, len(r.selection))
	copy(out, r.selection)
	return out
}

// Selected reports whether p is part of the current selection.
func (r *Resolver) Selected(p Pos) bool {
	for _, s := range r.selection {
		if s == p {
			return true
		}
	}
	return false
}

// Validating reports whether a submission is in flight.
func (r *Resolver) Validating() bool {
	return r.inFlight
}

// Toggle handles a grid-mode pick of the cell at p. Re-picking a cell that is
// already selected at index i truncates the selection and word back to length
// i (deselect from that point forward, not just that cell). Picking a new,
// non-empty cell appends it. Empty cells are ignored.
func (r *Resolver) Toggle(p Pos, b *Board) {
	if r.mode != ModeGrid {
		return
	}
	for i, s := range r.selection {
		if s == p {
			r.selection = r.selection[:i]
			r.word = r.word[:i]
			return
		}
	}
	letter := b.Letter(p)
	if letter == 0 {
		return
	}
	r.selection = append(r.selection, p)
	r.word = append(r.word, letter)
}

// ClearInput empties the selection and current word unconditionally.
func (r *Resolver) ClearInput() {
	r.selection = r.selection[:0]
	r.word = r.word[:0]
}

// TypeLetter appends a typed letter in typed mode. Lowercase input is
// uppercased; anything outside A-Z is ignored.
func (r *Resolver) TypeLetter(ch rune) {
	if r.mode != ModeTyped {
		return
	}
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	if ch < 'A' || ch > 'Z' {
		return
	}
	r.word = append(r.word, ch)
}

// Backspace removes the last typed letter in typed mode.
func (r *Resolver) Backspace() {
	if r.mode != ModeTyped {
		return
	}
	if len(r.word) > 0 {
		r.word = r.word[:len(r.word)-1]
	}
}

// Begin starts a submission of the current word. It performs every local
// check that must happen before the dictionary oracle is consulted:
// minimum length, the at-most-one-in-flight invariant, and (typed mode) the
// board letter-availability multiset check. On success the in-flight marker
// is set and the returned Submission should be handed to the oracle.
func (r *Resolver) Begin(b *Board, minLen int) (Submission, core.RejectReason) {
	if len(r.word) < minLen {
		return Submission{}, core.RejectTooShort
	}
	if r.inFlight {
		return Submission{}, core.RejectInFlight
	}
	word := string(r.word)
	if r.mode == ModeTyped && !b.HasLetters(word) {
		return Submission{}, core.RejectLettersUnavailable
	}

	r.inFlight = true
	sub := Submission{
		Word:    word,
		Session: r.session,
	}
	if r.mode == ModeGrid {
		sub.Positions = make([]Pos, len(r.selection))
		copy(sub.Positions, r.selection)
	}
	return sub, core.RejectNone
}

// Complete finishes a submission with the oracle's verdict. Oracle errors are
// fail-closed: callers pass valid=false for them. The in-flight marker is
// always cleared, and the selection/word state is cleared whatever the
// outcome. If gameOver latched while the check was in flight the board
// mutation is discarded; if the submission's session was superseded by a
// reset it is ignored entirely.
func (r *Resolver) Complete(sub Submission, valid bool, b *Board, gameOver bool) CompleteResult {
	if sub.Session != r.session {
		// Reset already cleared the in-flight marker with the old session.
		return CompleteResult{Stale: true}
	}

	r.inFlight = false
	r.ClearInput()

	if !valid {
		return CompleteResult{}
	}
	if gameOver {
		return CompleteResult{Discarded: true}
	}

	switch r.mode {
	case ModeGrid:
		b.RemovePositions(sub.Positions)
	case ModeTyped:
		b.RemoveCounts(sub.Word)
	}
	return CompleteResult{Accepted: true}
}
