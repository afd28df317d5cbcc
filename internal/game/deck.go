package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// NewDeck builds an unshuffled deck with exactly two cards per symbol.
// The order is unspecified; callers shuffle before play.
func NewDeck(symbols []Symbol) []Card {
	deck := make([]Card, 0, 2*len(symbols))
	for _, s := range symbols {
		deck = append(deck,
			Card{ID: uuid.New(), Symbol: s},
			Card{ID: uuid.New(), Symbol: s},
		)
	}
	return deck
}

// Shuffle permutes the deck in place with a Fisher–Yates walk: for each
// index i from the last down to 1, swap with a uniform index in [0, i].
func Shuffle(deck []Card, rng *rand.Rand) {
	for i := len(deck) - 1; i >= 1; i-- {
		j := rng.IntN(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// NewSeed draws a shuffle seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))
}
