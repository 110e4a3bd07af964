package flood

// GameStateType represents the current session phase.
type GameStateType string

const (
	StatePlaying    GameStateType = "playing"
	StateValidating GameStateType = "validating"
	StatePaused     GameStateType = "paused"
	StateFlooded    GameStateType = "flooded"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Mode       string // "grid" or "typed"
	Score      int
	Filled     int
	Fullness   float64
	Word       string
	Selection  int // selected cell count (grid mode)
	WordsFound int
	CursorRow  int
	CursorCol  int
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.hasFlooded:
		state = StateFlooded
	case g.paused:
		state = StatePaused
	case g.resolver.Validating():
		state = StateValidating
	}

	mode := "grid"
	if g.mode == ModeTyped {
		mode = "typed"
	}

	return Snapshot{
		Tick:       g.tick,
		Mode:       mode,
		Score:      g.score,
		Filled:     g.board.FilledCount(),
		Fullness:   g.board.Fullness(),
		Word:       g.resolver.Word(),
		Selection:  len(g.resolver.selection),
		WordsFound: len(g.foundWords),
		CursorRow:  g.cursor.Row,
		CursorCol:  g.cursor.Col,
		State:      state,
	}
}
