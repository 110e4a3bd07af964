package core

// EventKind identifies the type of a game event.
type EventKind int

const (
	// EventBoardUpdated reports a new board fullness after any grid mutation.
	EventBoardUpdated EventKind = iota
	// EventGameOver is terminal and fires at most once per session.
	EventGameOver
	// EventWordFound reports an accepted word and the points it earned.
	EventWordFound
	// EventWordRejected reports a rejected submission and why.
	EventWordRejected
)

// RejectReason explains why a submission was rejected.
type RejectReason int

const (
	RejectNone RejectReason = iota
	RejectTooShort
	RejectLettersUnavailable
	RejectNotAWord
	RejectInFlight
	RejectGameOver
)

// String returns a player-facing description of the rejection.
func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return ""
	case RejectTooShort:
		return "words need at least 3 letters"
	case RejectLettersUnavailable:
		return "those letters are not on the board"
	case RejectNotAWord:
		return "not a word"
	case RejectInFlight:
		return "still checking the last word"
	case RejectGameOver:
		return "the board is full"
	default:
		return "rejected"
	}
}

// Event is a typed notification emitted by a game for the platform layer.
// Fields are populated depending on Kind.
type Event struct {
	Kind     EventKind
	Fullness float64      // BoardUpdated, GameOver: percent of filled cells
	Word     string       // WordFound, WordRejected
	Points   int          // WordFound
	Reason   RejectReason // WordRejected
}
