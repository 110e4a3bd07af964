package flood

// Board dimensions are fixed: the grid never grows or shrinks.
const (
	BoardSize  = 6
	TotalCells = BoardSize * BoardSize
)

// Pos addresses a board cell. It doubles as the identity of a selected cell.
type Pos struct {
	Row, Col int
}

// Board is the 6x6 letter grid. A cell is either empty (zero rune) or holds
// exactly one uppercase letter.
type Board struct {
	cells [BoardSize][BoardSize]rune
}

// Reset clears every cell.
func (b *Board) Reset() {
	*b = Board{}
}

// InBounds reports whether p addresses a cell on the board.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Letter returns the letter at p, or 0 for empty or out-of-bounds cells.
func (b *Board) Letter(p Pos) rune {
	if !b.InBounds(p) {
		return 0
	}
	return b.cells[p.Row][p.Col]
}

// Empty reports whether the cell at p holds no letter.
func (b *Board) Empty(p Pos) bool {
	return b.Letter(p) == 0
}

// Place puts a letter into the cell at p. Out-of-bounds positions are ignored.
func (b *Board) Place(p Pos, r rune) {
	if !b.InBounds(p) {
		return
	}
	b.cells[p.Row][p.Col] = r
}

// EmptyCells returns all currently empty positions in row-major order.
func (b *Board) EmptyCells() []Pos {
	var empty []Pos
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.cells[row][col] == 0 {
				empty = append(empty, Pos{Row: row, Col: col})
			}
		}
	}
	return empty
}

// FilledCount returns the number of non-empty cells.
func (b *Board) FilledCount() int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.cells[row][col] != 0 {
				count++
			}
		}
	}
	return count
}

// Fullness returns the percentage of filled cells, 0 to 100.
func (b *Board) Fullness() float64 {
	return float64(b.FilledCount()) / TotalCells * 100
}

// Full reports whether every cell holds a letter.
func (b *Board) Full() bool {
	return b.FilledCount() == TotalCells
}

// LetterCounts returns a letter -> occurrence multiset of the board.
func (b *Board) LetterCounts() map[rune]int {
	counts := make(map[rune]int)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if r := b.cells[row][col]; r != 0 {
				counts[r]++
			}
		}
	}
	return counts
}

// HasLetters reports whether the board holds enough of each letter to spell
// word. The word must be uppercase.
func (b *Board) HasLetters(word string) bool {
	need := make(map[rune]int)
	for _, r := range word {
		need[r]++
	}
	have := b.LetterCounts()
	for r, n := range need {
		if have[r] < n {
			return false
		}
	}
	return true
}

// RemovePositions clears exactly the given cells, regardless of their letters.
// Used after a grid-mode submission: the word was built from these cells, so
// clearing by position is always correct.
func (b *Board) RemovePositions(positions []Pos) {
	for _, p := range positions {
		if b.InBounds(p) {
			b.cells[p.Row][p.Col] = 0
		}
	}
}

// RemoveCounts clears, for each distinct letter of word, exactly as many
// matching cells as the word requires, scanning row-major. Used after a
// typed-mode submission. Callers must have verified availability first.
func (b *Board) RemoveCounts(word string) {
	need := make(map[rune]int)
	for _, r := range word {
		need[r]++
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			r := b.cells[row][col]
			if r != 0 && need[r] > 0 {
				b.cells[row][col] = 0
				need[r]--
			}
		}
	}
}
