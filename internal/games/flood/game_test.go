package flood

import (
	"math"
	"testing"

	"wordflood/internal/core"
)

func newGridGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func stepN(g *Game, n int) []core.Event {
	input := core.NewInputFrame()
	var events []core.Event
	for i := 0; i < n; i++ {
		res := g.Step(input)
		events = append(events, res.Events...)
	}
	return events
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24, TickRate: 60}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		if i == 100 {
			input.Set(core.ActionRight)
			input.Set(core.ActionSelect)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Same seed diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestSpawnAfterInterval(t *testing.T) {
	g := newGridGame(1)

	// Default grid interval is 1250ms at 60 ticks/s = 75 ticks
	if g.spawnEveryTicks != 75 {
		t.Fatalf("spawnEveryTicks = %d, expected 75", g.spawnEveryTicks)
	}

	stepN(g, 74)
	if g.board.FilledCount() != 0 {
		t.Fatal("No letter should spawn before the interval elapses")
	}

	events := stepN(g, 1)
	if g.board.FilledCount() != 1 {
		t.Fatalf("Exactly one letter should spawn, got %d", g.board.FilledCount())
	}
	if math.Abs(g.Fullness()-100.0/36) > 1e-9 {
		t.Errorf("Fullness after one spawn = %f, expected %f", g.Fullness(), 100.0/36)
	}

	found := false
	for _, e := range events {
		if e.Kind == core.EventBoardUpdated {
			found = true
			if math.Abs(e.Fullness-100.0/36) > 1e-9 {
				t.Errorf("BoardUpdated fullness = %f, expected %f", e.Fullness, 100.0/36)
			}
		}
	}
	if !found {
		t.Error("Spawn should emit a BoardUpdated event")
	}
}

func TestTypedModeSpawnsFaster(t *testing.T) {
	g := NewTyped()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60})

	// 800ms at 60 ticks/s = 48 ticks
	if g.spawnEveryTicks != 48 {
		t.Errorf("Typed-mode spawnEveryTicks = %d, expected 48", g.spawnEveryTicks)
	}
}

func TestFloodFiresExactlyOnce(t *testing.T) {
	g := newGridGame(2)

	// Fill all but one cell
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if row == 5 && col == 5 {
				continue
			}
			g.board.Place(Pos{Row: row, Col: col}, 'A')
		}
	}

	// Run until the final spawn lands
	events := stepN(g, g.spawnEveryTicks)
	gameOvers := 0
	for _, e := range events {
		if e.Kind == core.EventGameOver {
			gameOvers++
			if e.Fullness != 100 {
				t.Errorf("GameOver fullness = %f, expected 100", e.Fullness)
			}
		}
	}
	if gameOvers != 1 {
		t.Fatalf("GameOver fired %d times, expected exactly once", gameOvers)
	}
	if !g.State().GameOver {
		t.Fatal("State should report game over")
	}

	// Many more ticks observing the full board produce no further events
	for _, e := range stepN(g, 300) {
		if e.Kind == core.EventGameOver {
			t.Fatal("GameOver must not fire again")
		}
	}
}

func TestSpawningStopsAfterFlood(t *testing.T) {
	g := newGridGame(3)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			g.board.Place(Pos{Row: row, Col: col}, 'B')
		}
	}
	g.hasFlooded = true

	stepN(g, 500)
	if g.board.FilledCount() != TotalCells {
		t.Error("Board must not change after the flood")
	}
}

func TestSubmitTooShortSkipsOracle(t *testing.T) {
	g := newGridGame(4)
	g.board.Place(Pos{0, 0}, 'A')
	g.board.Place(Pos{0, 1}, 'T')
	g.resolver.Toggle(Pos{0, 0}, &g.board)
	g.resolver.Toggle(Pos{0, 1}, &g.board)

	input := core.NewInputFrame()
	input.Set(core.ActionSubmit)
	res := g.Step(input)

	rejected := false
	for _, e := range res.Events {
		if e.Kind == core.EventWordRejected && e.Reason == core.RejectTooShort {
			rejected = true
		}
	}
	if !rejected {
		t.Error("Two-letter submission should be rejected as too short")
	}
	if _, ok := g.TakePendingSubmission(); ok {
		t.Error("Too-short submission must never reach the oracle")
	}
}

func TestAcceptedSubmissionClearsSelection(t *testing.T) {
	g := newGridGame(5)
	g.board.Place(Pos{0, 0}, 'C')
	g.board.Place(Pos{0, 1}, 'A')
	g.board.Place(Pos{0, 2}, 'T')
	g.board.Place(Pos{4, 4}, 'Z')
	g.resolver.Toggle(Pos{0, 0}, &g.board)
	g.resolver.Toggle(Pos{0, 1}, &g.board)
	g.resolver.Toggle(Pos{0, 2}, &g.board)

	input := core.NewInputFrame()
	input.Set(core.ActionSubmit)
	g.Step(input)

	sub, ok := g.TakePendingSubmission()
	if !ok {
		t.Fatal("Submission should be pending after submit")
	}
	if sub.Word != "CAT" {
		t.Fatalf("Pending word = %q, expected CAT", sub.Word)
	}

	events := g.ResolveSubmission(sub, true)

	for _, p := range []Pos{{0, 0}, {0, 1}, {0, 2}} {
		if !g.board.Empty(p) {
			t.Errorf("Cell %v should be empty after acceptance", p)
		}
	}
	if g.board.Letter(Pos{4, 4}) != 'Z' {
		t.Error("Cells outside the selection must not change")
	}
	if g.State().Score != 30 {
		t.Errorf("Score = %d, expected 30 for a 3-letter word", g.State().Score)
	}
	if words := g.FoundWords(); len(words) != 1 || words[0] != "CAT" {
		t.Errorf("FoundWords = %v, expected [CAT]", words)
	}

	foundEvent := false
	for _, e := range events {
		if e.Kind == core.EventWordFound && e.Word == "CAT" && e.Points == 30 {
			foundEvent = true
		}
	}
	if !foundEvent {
		t.Error("Acceptance should emit a WordFound event with points")
	}
}

func TestSecondSubmitRejectedWhileInFlight(t *testing.T) {
	g := newGridGame(6)
	g.board.Place(Pos{0, 0}, 'C')
	g.board.Place(Pos{0, 1}, 'A')
	g.board.Place(Pos{0, 2}, 'T')
	g.resolver.Toggle(Pos{0, 0}, &g.board)
	g.resolver.Toggle(Pos{0, 1}, &g.board)
	g.resolver.Toggle(Pos{0, 2}, &g.board)

	input := core.NewInputFrame()
	input.Set(core.ActionSubmit)
	g.Step(input)

	if _, ok := g.TakePendingSubmission(); !ok {
		t.Fatal("First submission should be pending")
	}

	// Second submit while the first has not resolved yet
	input.Clear()
	input.Set(core.ActionSubmit)
	res := g.Step(input)

	rejected := false
	for _, e := range res.Events {
		if e.Kind == core.EventWordRejected && e.Reason == core.RejectInFlight {
			rejected = true
		}
	}
	if !rejected {
		t.Error("Second submission must be rejected, not queued")
	}
	if _, ok := g.TakePendingSubmission(); ok {
		t.Error("No new submission should be pending")
	}
}

func TestOracleFailureFailsClosed(t *testing.T) {
	g := newGridGame(7)
	g.board.Place(Pos{0, 0}, 'Z')
	g.board.Place(Pos{0, 1}, 'Z')
	g.board.Place(Pos{0, 2}, 'Z')
	g.board.Place(Pos{0, 3}, 'Z')
	for col := 0; col < 4; col++ {
		g.resolver.Toggle(Pos{0, col}, &g.board)
	}

	input := core.NewInputFrame()
	input.Set(core.ActionSubmit)
	g.Step(input)
	sub, _ := g.TakePendingSubmission()

	// A network error is reported as valid=false by the platform
	events := g.ResolveSubmission(sub, false)

	rejected := false
	for _, e := range events {
		if e.Kind == core.EventWordRejected && e.Reason == core.RejectNotAWord {
			rejected = true
		}
	}
	if !rejected {
		t.Error("Oracle failure should surface as an invalid word")
	}
	if g.board.FilledCount() != 4 {
		t.Error("Board must be unchanged after a failed check")
	}
	if g.resolver.Validating() {
		t.Error("In-flight marker must be cleared even on failure")
	}
}

func TestValidationResolvingAfterFloodIsDiscarded(t *testing.T) {
	g := newGridGame(8)
	g.board.Place(Pos{0, 0}, 'C')
	g.board.Place(Pos{0, 1}, 'A')
	g.board.Place(Pos{0, 2}, 'T')
	g.resolver.Toggle(Pos{0, 0}, &g.board)
	g.resolver.Toggle(Pos{0, 1}, &g.board)
	g.resolver.Toggle(Pos{0, 2}, &g.board)

	input := core.NewInputFrame()
	input.Set(core.ActionSubmit)
	g.Step(input)
	sub, _ := g.TakePendingSubmission()

	// The flood latches while the check is in flight
	g.hasFlooded = true

	events := g.ResolveSubmission(sub, true)
	if len(events) != 0 {
		t.Errorf("Discarded validation must emit no events, got %v", events)
	}
	if g.board.FilledCount() != 3 {
		t.Error("Board must not mutate after the flood latched")
	}
	if g.State().Score != 0 {
		t.Error("Score must not change after the flood latched")
	}
	if g.resolver.Validating() {
		t.Error("In-flight marker must still be cleared")
	}
}

func TestSubmitAfterGameOver(t *testing.T) {
	g := newGridGame(9)
	g.hasFlooded = true

	input := core.NewInputFrame()
	input.Set(core.ActionSubmit)
	res := g.Step(input)

	rejected := false
	for _, e := range res.Events {
		if e.Kind == core.EventWordRejected && e.Reason == core.RejectGameOver {
			rejected = true
		}
	}
	if !rejected {
		t.Error("Submitting after game over should get the distinct rejection")
	}
}

func TestRestartResetsEverything(t *testing.T) {
	g := newGridGame(10)
	g.board.Place(Pos{0, 0}, 'C')
	g.score = 120
	g.foundWords = []string{"CAT"}
	g.hasFlooded = true

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.State().GameOver {
		t.Error("Restart should clear the game-over latch")
	}
	if g.State().Score != 0 {
		t.Error("Restart should clear the score")
	}
	if g.board.FilledCount() != 0 {
		t.Error("Restart should clear the board")
	}
	if len(g.FoundWords()) != 0 {
		t.Error("Restart should clear found words")
	}
}

func TestTypedModeStepTyping(t *testing.T) {
	g := NewTyped()
	g.Reset(core.RuntimeConfig{Seed: 11, ScreenW: 80, ScreenH: 24, TickRate: 60})
	g.board.Place(Pos{1, 1}, 'C')
	g.board.Place(Pos{2, 2}, 'A')
	g.board.Place(Pos{3, 3}, 'T')

	input := core.NewInputFrame()
	for _, ch := range "cat" {
		input.Type(ch)
	}
	g.Step(input)
	if g.CurrentWord() != "CAT" {
		t.Fatalf("CurrentWord = %q, expected CAT", g.CurrentWord())
	}

	input.Clear()
	input.Set(core.ActionSubmit)
	g.Step(input)

	sub, ok := g.TakePendingSubmission()
	if !ok {
		t.Fatal("Typed submission should be pending")
	}
	g.ResolveSubmission(sub, true)
	if g.board.FilledCount() != 0 {
		t.Error("Typed-mode acceptance should remove the letters by count")
	}
}

func TestTypedModeAvailabilityBeforeOracle(t *testing.T) {
	g := NewTyped()
	g.Reset(core.RuntimeConfig{Seed: 12, ScreenW: 80, ScreenH: 24, TickRate: 60})
	g.board.Place(Pos{0, 0}, 'C')
	g.board.Place(Pos{0, 1}, 'A')
	// No T anywhere

	input := core.NewInputFrame()
	for _, ch := range "cat" {
		input.Type(ch)
	}
	input.Set(core.ActionSubmit)
	res := g.Step(input)

	rejected := false
	for _, e := range res.Events {
		if e.Kind == core.EventWordRejected && e.Reason == core.RejectLettersUnavailable {
			rejected = true
		}
	}
	if !rejected {
		t.Error("Missing letters must be rejected before the oracle")
	}
	if _, ok := g.TakePendingSubmission(); ok {
		t.Error("Unavailable letters must never reach the oracle")
	}
}
