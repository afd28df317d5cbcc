package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// positionsOf finds the two board positions holding a symbol.
func positionsOf(t *testing.T, s *Session, sym Symbol) (int, int) {
	t.Helper()
	found := make([]int, 0, 2)
	for i, c := range s.deck {
		if c.Symbol == sym {
			found = append(found, i)
		}
	}
	require.Len(t, found, 2, "symbol %q must be on the board twice", sym)
	return found[0], found[1]
}

func newTestSession(t *testing.T, symbols ...Symbol) *Session {
	t.Helper()
	return NewSession(symbols, WithSeed(1))
}

func TestRevealFirstCard(t *testing.T) {
	s := newTestSession(t, "a", "b")

	r := s.Reveal(0)
	assert.Equal(t, EventRevealed, r.Event)
	assert.Equal(t, 0, r.Positions[0])
	assert.Equal(t, Revealed, s.deck[0].State)
	assert.Equal(t, 0, s.Moves(), "a single reveal is not a move")
}

func TestRevealMatchingPair(t *testing.T) {
	s := newTestSession(t, "a", "b")
	p1, p2 := positionsOf(t, s, "a")

	s.Reveal(p1)
	r := s.Reveal(p2)

	assert.Equal(t, EventMatched, r.Event)
	assert.False(t, r.Complete)
	assert.Equal(t, Matched, s.deck[p1].State)
	assert.Equal(t, Matched, s.deck[p2].State)
	assert.Equal(t, 1, s.Moves())
	assert.Equal(t, 1, s.MatchedPairs())
}

func TestRevealMismatchedPair(t *testing.T) {
	s := newTestSession(t, "a", "b")
	a1, _ := positionsOf(t, s, "a")
	b1, _ := positionsOf(t, s, "b")

	s.Reveal(a1)
	r := s.Reveal(b1)

	require.Equal(t, EventMismatched, r.Event)
	assert.Equal(t, [2]int{a1, b1}, r.Positions)
	assert.Equal(t, 1, s.Moves())
	assert.Equal(t, 0, s.MatchedPairs())

	// Both stay face-up until the scheduled conceal lands.
	assert.Equal(t, Revealed, s.deck[a1].State)
	assert.Equal(t, Revealed, s.deck[b1].State)

	s.Conceal(r.Epoch, r.Positions[0], r.Positions[1])
	assert.Equal(t, Hidden, s.deck[a1].State)
	assert.Equal(t, Hidden, s.deck[b1].State)
}

func TestRevealIgnoresBadInput(t *testing.T) {
	s := newTestSession(t, "a", "b")
	a1, a2 := positionsOf(t, s, "a")

	assert.Equal(t, EventIgnored, s.Reveal(-1).Event)
	assert.Equal(t, EventIgnored, s.Reveal(len(s.deck)).Event)

	// Re-tapping the sole pending card changes nothing.
	s.Reveal(a1)
	assert.Equal(t, EventIgnored, s.Reveal(a1).Event)
	assert.Equal(t, 0, s.Moves())

	// A matched card is inert for the rest of the game.
	s.Reveal(a2)
	moves := s.Moves()
	assert.Equal(t, EventIgnored, s.Reveal(a1).Event)
	assert.Equal(t, Matched, s.deck[a1].State)
	assert.Equal(t, moves, s.Moves())
}

func TestGameComplete(t *testing.T) {
	s := newTestSession(t, "a", "b")
	a1, a2 := positionsOf(t, s, "a")
	b1, b2 := positionsOf(t, s, "b")

	s.Reveal(a1)
	r := s.Reveal(a2)
	require.Equal(t, EventMatched, r.Event)
	require.False(t, r.Complete)

	s.Reveal(b1)
	r = s.Reveal(b2)
	assert.Equal(t, EventMatched, r.Event)
	assert.True(t, r.Complete)
	assert.True(t, s.Complete())
	assert.Equal(t, 2, s.Moves())
}

func TestSinglePairCompletesInOneMove(t *testing.T) {
	s := newTestSession(t, "a")

	s.Reveal(0)
	r := s.Reveal(1)

	assert.Equal(t, EventMatched, r.Event)
	assert.True(t, r.Complete)
	assert.Equal(t, 1, s.Moves())
}

func TestEmptySessionIsComplete(t *testing.T) {
	s := newTestSession(t)
	assert.True(t, s.Complete())
	assert.Empty(t, s.Cards())
	assert.Equal(t, EventIgnored, s.Reveal(0).Event)
}

func TestResetClearsEverything(t *testing.T) {
	s := newTestSession(t, "a", "b")
	a1, a2 := positionsOf(t, s, "a")

	s.Reveal(a1)
	s.Reveal(a2)
	require.Equal(t, 1, s.Moves())
	require.Equal(t, 1, s.MatchedPairs())

	s.Reset()

	assert.Equal(t, 0, s.Moves())
	assert.Equal(t, 0, s.MatchedPairs())
	assert.False(t, s.Complete())
	assert.Len(t, s.deck, 4, "composition survives a reset")
	for _, c := range s.deck {
		assert.Equal(t, Hidden, c.State)
	}
}

func TestStaleConcealIsNoop(t *testing.T) {
	s := newTestSession(t, "a", "b")
	a1, _ := positionsOf(t, s, "a")
	b1, _ := positionsOf(t, s, "b")

	s.Reveal(a1)
	r := s.Reveal(b1)
	require.Equal(t, EventMismatched, r.Event)

	// The player restarts while the conceal is still in flight.
	s.Reset()
	s.Reveal(0)

	s.Conceal(r.Epoch, r.Positions[0], r.Positions[1])
	assert.Equal(t, Revealed, s.deck[0].State, "stale conceal must not touch the new game")
}

func TestConcealSkipsMatchedAndPendingCards(t *testing.T) {
	s := newTestSession(t, "a", "b")
	a1, a2 := positionsOf(t, s, "a")
	b1, _ := positionsOf(t, s, "b")

	s.Reveal(a1)
	s.Reveal(a2)
	s.Reveal(b1)

	s.Conceal(s.Epoch(), a1, b1)
	assert.Equal(t, Matched, s.deck[a1].State, "conceal must not unlock a matched card")
	assert.Equal(t, Revealed, s.deck[b1].State, "conceal must not hide a pending card")
}

func TestCardsWithholdHiddenSymbols(t *testing.T) {
	s := newTestSession(t, "a", "b")
	s.Reveal(2)

	views := s.Cards()
	require.Len(t, views, 4)
	for i, v := range views {
		if i == 2 {
			assert.NotEmpty(t, v.Symbol)
			assert.Equal(t, Revealed, v.State)
			continue
		}
		assert.Empty(t, v.Symbol, "face-down cards must not leak their symbol")
		assert.Equal(t, Hidden, v.State)
	}
}

func TestDeterministicSeedReproducesLayout(t *testing.T) {
	symbols := []Symbol{"a", "b", "c", "d"}
	s1 := NewSession(symbols, WithSeed(99))
	s2 := NewSession(symbols, WithSeed(99))

	for i := range s1.deck {
		assert.Equal(t, s1.deck[i].Symbol, s2.deck[i].Symbol, "position %d", i)
	}
}
