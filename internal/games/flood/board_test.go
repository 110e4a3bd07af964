package flood

import (
	"math"
	"testing"
)

func TestFullnessArithmetic(t *testing.T) {
	var b Board

	if b.Fullness() != 0 {
		t.Errorf("Empty board fullness = %f, expected 0", b.Fullness())
	}

	// Fullness must equal 100 * filled / 36 after every mutation
	filled := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.Place(Pos{Row: row, Col: col}, 'A')
			filled++
			want := 100 * float64(filled) / TotalCells
			if math.Abs(b.Fullness()-want) > 1e-9 {
				t.Fatalf("Fullness after %d placements = %f, expected %f", filled, b.Fullness(), want)
			}
		}
	}

	if !b.Full() {
		t.Error("Board with 36 letters should be full")
	}
}

func TestSingleLetterFullness(t *testing.T) {
	var b Board
	b.Place(Pos{Row: 2, Col: 3}, 'Q')

	// 1/36 of the board is about 2.78%
	if math.Abs(b.Fullness()-100.0/36) > 1e-9 {
		t.Errorf("One letter fullness = %f, expected %f", b.Fullness(), 100.0/36)
	}
}

func TestEmptyCellsRowMajor(t *testing.T) {
	var b Board
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.Place(Pos{Row: row, Col: col}, 'X')
		}
	}
	b.RemovePositions([]Pos{{Row: 1, Col: 4}, {Row: 0, Col: 2}})

	empty := b.EmptyCells()
	if len(empty) != 2 {
		t.Fatalf("EmptyCells returned %d cells, expected 2", len(empty))
	}
	// Row-major ordering
	if empty[0] != (Pos{Row: 0, Col: 2}) || empty[1] != (Pos{Row: 1, Col: 4}) {
		t.Errorf("EmptyCells not row-major: %v", empty)
	}
}

func TestRemovePositionsRoundTrip(t *testing.T) {
	var b Board
	b.Place(Pos{0, 0}, 'C')
	b.Place(Pos{0, 1}, 'A')
	b.Place(Pos{0, 2}, 'T')
	b.Place(Pos{3, 3}, 'Z')

	selected := []Pos{{0, 0}, {0, 1}, {0, 2}}
	b.RemovePositions(selected)

	for _, p := range selected {
		if !b.Empty(p) {
			t.Errorf("Selected cell %v should be empty after removal", p)
		}
	}
	if b.Letter(Pos{3, 3}) != 'Z' {
		t.Error("Unselected cell must not change")
	}
}

func TestRemoveCountsExactMultiplicity(t *testing.T) {
	var b Board
	// Three T's, two A's, one extra letter
	b.Place(Pos{0, 0}, 'T')
	b.Place(Pos{1, 1}, 'T')
	b.Place(Pos{2, 2}, 'T')
	b.Place(Pos{0, 5}, 'A')
	b.Place(Pos{4, 4}, 'A')
	b.Place(Pos{5, 5}, 'Q')

	b.RemoveCounts("TAT")

	counts := b.LetterCounts()
	if counts['T'] != 1 {
		t.Errorf("Expected exactly 1 T left, got %d", counts['T'])
	}
	if counts['A'] != 1 {
		t.Errorf("Expected exactly 1 A left, got %d", counts['A'])
	}
	if counts['Q'] != 1 {
		t.Error("Letters not in the word must not be removed")
	}

	// Row-major first match: the surviving T is the last one
	if b.Letter(Pos{2, 2}) != 'T' {
		t.Error("RemoveCounts should clear matches in row-major order")
	}
}

func TestHasLetters(t *testing.T) {
	var b Board
	b.Place(Pos{0, 0}, 'C')
	b.Place(Pos{0, 1}, 'A')

	if b.HasLetters("CAT") {
		t.Error("Board without a T cannot spell CAT")
	}

	b.Place(Pos{5, 0}, 'T')
	if !b.HasLetters("CAT") {
		t.Error("Board with C, A, T should spell CAT")
	}

	// Multiplicity matters: one T cannot spell TAT
	if b.HasLetters("TAT") {
		t.Error("One T cannot satisfy a word needing two")
	}
}
