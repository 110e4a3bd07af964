// Package flood implements Word Flood: letters spawn onto a 6x6 board over
// time and the player clears them by forming dictionary words before the
// board floods (fills completely).
package flood

import (
	"fmt"
	"math/rand"

	"wordflood/internal/config"
	"wordflood/internal/core"
	"wordflood/internal/registry"
)

// Game implements Word Flood behind the platform's game interface.
//
// The core is pure and deterministic: the spawn clock is tick-driven, the rng
// is seeded from RuntimeConfig, and the dictionary oracle lives outside.
// The platform pops pending submissions with TakePendingSubmission, consults
// the oracle, and feeds the verdict back through ResolveSubmission.
type Game struct {
	mode     Mode
	rng      *rand.Rand
	tick     uint64
	score    int
	board    Board
	resolver *Resolver
	bag      *LetterBag
	cursor   Pos

	foundWords []string
	pending    *Submission

	// Spawn clock: a letter is placed when ticksSinceSpawn reaches
	// spawnEveryTicks (the configured interval at the current tick rate).
	tickRate        int
	spawnEveryTicks int
	ticksSinceSpawn int

	minWordLen      int
	pointsPerLetter int

	// hasFlooded latches the game-over transition so it fires exactly once.
	hasFlooded bool
	paused     bool

	message      string
	messageTicks int

	screenW int
	screenH int
}

// Package-level config, set by the CLI before game creation (like the
// config-path setters the other platform games use).
var gameConfig = config.DefaultFloodConfig()

// SetConfig replaces the configuration used by new/reset games.
func SetConfig(cfg config.FloodConfig) {
	gameConfig = cfg
}

// New creates a grid-mode Word Flood game.
func New() *Game {
	return &Game{mode: ModeGrid}
}

// NewTyped creates a typed-mode Word Flood game.
func NewTyped() *Game {
	return &Game{mode: ModeTyped}
}

func init() {
	registry.Register("flood", func() registry.Game {
		return New()
	})
	registry.Register("flood_typed", func() registry.Game {
		return NewTyped()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeTyped {
		return "flood_typed"
	}
	return "flood"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTyped {
		return "Word Flood (Typed)"
	}
	return "Word Flood"
}

// Reset initializes/restarts the game. The resolver keeps its session
// counter across resets so a validation started before the reset resolves
// as a no-op.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.board.Reset()
	if g.resolver == nil {
		g.resolver = NewResolver(g.mode)
	}
	g.resolver.Reset()
	g.bag = NewLetterBag(gameConfig.Letters.Weights)
	g.cursor = Pos{}
	g.foundWords = nil
	g.pending = nil
	g.hasFlooded = false
	g.paused = false
	g.message = ""
	g.messageTicks = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	interval := gameConfig.Spawn.GridIntervalMS
	if g.mode == ModeTyped {
		interval = gameConfig.Spawn.TypedIntervalMS
	}
	g.spawnEveryTicks = max(1, interval*g.tickRate/1000)
	g.ticksSinceSpawn = 0

	g.minWordLen = gameConfig.Rules.MinWordLength
	g.pointsPerLetter = gameConfig.Rules.PointsPerLetter
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	// Handle restart
	if input.Has(core.ActionRestart) && g.hasFlooded {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.hasFlooded {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	events = append(events, g.processInput(input)...)
	events = append(events, g.stepSpawn()...)

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// processInput applies selection/typing input and starts submissions.
func (g *Game) processInput(input core.InputFrame) []core.Event {
	if g.hasFlooded {
		// The board is full; everything except restart is a no-op, but a
		// submit attempt still gets its distinct rejection.
		if input.Has(core.ActionSubmit) {
			return []core.Event{g.reject(g.resolver.Word(), core.RejectGameOver)}
		}
		return nil
	}

	switch g.mode {
	case ModeGrid:
		g.moveCursor(input)
		if input.Has(core.ActionSelect) {
			g.resolver.Toggle(g.cursor, &g.board)
		}
	case ModeTyped:
		for _, ch := range input.Text {
			g.resolver.TypeLetter(ch)
		}
		if input.Has(core.ActionBackspace) {
			g.resolver.Backspace()
		}
	}

	if input.Has(core.ActionClear) {
		g.resolver.ClearInput()
	}

	if input.Has(core.ActionSubmit) {
		word := g.resolver.Word()
		sub, reason := g.resolver.Begin(&g.board, g.minWordLen)
		if reason != core.RejectNone {
			return []core.Event{g.reject(word, reason)}
		}
		g.pending = &sub
		g.setMessage(fmt.Sprintf("checking %q...", sub.Word))
	}
	return nil
}

// moveCursor clamps the selection cursor to the board.
func (g *Game) moveCursor(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, BoardSize-1)
	case input.Has(core.ActionDown):
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, BoardSize-1)
	case input.Has(core.ActionLeft):
		g.cursor.Col = core.Clamp(g.cursor.Col-1, 0, BoardSize-1)
	case input.Has(core.ActionRight):
		g.cursor.Col = core.Clamp(g.cursor.Col+1, 0, BoardSize-1)
	}
}

// stepSpawn advances the spawn clock and places a letter when it elapses.
// Fullness is recomputed after the mutation so the flood transition can
// never be missed; the hasFlooded latch keeps it to a single event.
func (g *Game) stepSpawn() []core.Event {
	if g.hasFlooded {
		return nil
	}
	g.ticksSinceSpawn++
	if g.ticksSinceSpawn < g.spawnEveryTicks {
		return nil
	}

	empty := g.board.EmptyCells()
	if len(empty) == 0 {
		// Board full; flood detection below already fired or will fire.
		return nil
	}
	pos := empty[g.rng.Intn(len(empty))]
	g.board.Place(pos, g.bag.Pick(g.rng))
	g.ticksSinceSpawn = 0

	events := []core.Event{{Kind: core.EventBoardUpdated, Fullness: g.board.Fullness()}}
	if g.board.Full() {
		g.hasFlooded = true
		g.setMessage("the board flooded!")
		events = append(events, core.Event{Kind: core.EventGameOver, Fullness: 100})
	}
	return events
}

// TakePendingSubmission pops the submission waiting for a dictionary check,
// if any. The platform performs the check asynchronously and reports the
// verdict via ResolveSubmission.
func (g *Game) TakePendingSubmission() (Submission, bool) {
	if g.pending == nil {
		return Submission{}, false
	}
	sub := *g.pending
	g.pending = nil
	return sub, true
}

// ResolveSubmission finishes an in-flight submission with the oracle's
// verdict and returns the resulting events. Oracle failures must be reported
// as valid=false (fail-closed); they are indistinguishable from an unknown
// word here.
func (g *Game) ResolveSubmission(sub Submission, valid bool) []core.Event {
	res := g.resolver.Complete(sub, valid, &g.board, g.hasFlooded)
	if res.Stale || res.Discarded {
		return nil
	}

	if !res.Accepted {
		return []core.Event{g.reject(sub.Word, core.RejectNotAWord)}
	}

	points := g.pointsPerLetter * len(sub.Word)
	g.score += points
	g.foundWords = append(g.foundWords, sub.Word)
	g.setMessage(fmt.Sprintf("%s +%d", sub.Word, points))
	return []core.Event{
		{Kind: core.EventWordFound, Word: sub.Word, Points: points},
		{Kind: core.EventBoardUpdated, Fullness: g.board.Fullness()},
	}
}

// reject records a rejection message and builds its event.
func (g *Game) reject(word string, reason core.RejectReason) core.Event {
	g.setMessage(reason.String())
	return core.Event{Kind: core.EventWordRejected, Word: word, Reason: reason}
}

// setMessage shows a transient status line for about three seconds.
func (g *Game) setMessage(msg string) {
	g.message = msg
	g.messageTicks = 3 * g.tickRate
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.hasFlooded,
		Paused:   g.paused,
	}
}

// Fullness returns the current board fullness percentage.
func (g *Game) Fullness() float64 {
	return g.board.Fullness()
}

// FoundWords returns the accepted words of this session, in order.
func (g *Game) FoundWords() []string {
	out := make([]string, len(g.foundWords))
	copy(out, g.foundWords)
	return out
}

// CurrentWord returns the in-progress word.
func (g *Game) CurrentWord() string {
	return g.resolver.Word()
}
