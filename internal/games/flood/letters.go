package flood

import (
	"math/rand"
	"sort"
)

// LetterBag draws letters from a static weighted distribution. The weights
// are expanded into a slice so a single rng call picks a letter; building the
// slice in sorted letter order keeps draws deterministic for a given seed.
type LetterBag struct {
	letters []rune
}

// NewLetterBag builds a bag from a letter -> weight table. Keys must be
// single uppercase letters; entries with non-positive weights are skipped.
func NewLetterBag(weights map[string]int) *LetterBag {
	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bag := &LetterBag{}
	for _, k := range keys {
		if len(k) != 1 {
			continue
		}
		r := rune(k[0])
		if r < 'A' || r > 'Z' {
			continue
		}
		for i := 0; i < weights[k]; i++ {
			bag.letters = append(bag.letters, r)
		}
	}
	return bag
}

// Pick draws one letter using the provided rng.
// Falls back to 'E' if the bag is somehow empty.
func (b *LetterBag) Pick(rng *rand.Rand) rune {
	if len(b.letters) == 0 {
		return 'E'
	}
	return b.letters[rng.Intn(len(b.letters))]
}

// Size returns the expanded slot count (the sum of all weights).
func (b *LetterBag) Size() int {
	return len(b.letters)
}
