package flood

import (
	"math/rand"
	"testing"

	"wordflood/internal/config"
)

func TestBagSize(t *testing.T) {
	bag := NewLetterBag(map[string]int{"A": 3, "B": 1, "Z": 2})
	if bag.Size() != 6 {
		t.Errorf("Size() = %d, expected 6", bag.Size())
	}
}

func TestBagSkipsInvalidKeys(t *testing.T) {
	bag := NewLetterBag(map[string]int{"A": 1, "AB": 5, "a": 5, "!": 5, "B": 0})
	if bag.Size() != 1 {
		t.Errorf("Only the single valid entry should count, Size() = %d", bag.Size())
	}
}

func TestBagDeterministic(t *testing.T) {
	weights := config.DefaultLetterWeights()

	b1 := NewLetterBag(weights)
	b2 := NewLetterBag(weights)
	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		if p1, p2 := b1.Pick(r1), b2.Pick(r2); p1 != p2 {
			t.Fatalf("Draw %d differs: %q vs %q", i, p1, p2)
		}
	}
}

func TestBagFavorsCommonLetters(t *testing.T) {
	bag := NewLetterBag(config.DefaultLetterWeights())
	rng := rand.New(rand.NewSource(7))

	counts := make(map[rune]int)
	for i := 0; i < 20000; i++ {
		r := bag.Pick(rng)
		if r < 'A' || r > 'Z' {
			t.Fatalf("Picked non-letter %q", r)
		}
		counts[r]++
	}

	// E is weighted 4x Z; over 20k draws the sample must reflect that
	if counts['E'] <= counts['Z'] {
		t.Errorf("Expected E (%d) to be drawn more often than Z (%d)", counts['E'], counts['Z'])
	}
	if counts['S'] <= counts['Q'] {
		t.Errorf("Expected S (%d) to be drawn more often than Q (%d)", counts['S'], counts['Q'])
	}
}

func TestEmptyBagFallsBack(t *testing.T) {
	bag := NewLetterBag(nil)
	rng := rand.New(rand.NewSource(1))
	if bag.Pick(rng) != 'E' {
		t.Error("Empty bag should fall back to E")
	}
}
