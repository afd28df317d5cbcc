package game

import (
	"math/rand/v2"
	"time"
)

// Event says what a Reveal did.
type Event int

const (
	// EventIgnored means the input changed nothing: position out of range,
	// card already matched, or card already face-up.
	EventIgnored Event = iota
	// EventRevealed means the first card of a turn was turned face-up.
	EventRevealed
	// EventMatched means the second card matched the first; both are locked.
	EventMatched
	// EventMismatched means the second card did not match. Both cards stay
	// face-up until the caller delivers the scheduled Conceal.
	EventMismatched
)

// Result reports the outcome of a Reveal. After EventMismatched the caller
// must arrange for Conceal(Epoch, Positions[0], Positions[1]) to run once the
// observation window has passed; the session never hides the pair on its own.
type Result struct {
	Event     Event
	Positions [2]int
	Complete  bool
	Epoch     uint64
}

// Session is one game: a shuffled deck plus the turn state machine. It is
// not safe for concurrent use; the event loop that drives it is the only
// caller.
type Session struct {
	deck       []Card
	symbols    []Symbol
	pending    []int
	moves      int
	matched    int
	epoch      uint64
	thresholds Thresholds
	rng        *rand.Rand
}

// Option configures a new session.
type Option func(*Session)

// WithSeed makes the shuffle deterministic.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = newRNG(seed) }
}

// WithThresholds overrides the star rating thresholds.
func WithThresholds(t Thresholds) Option {
	return func(s *Session) { s.thresholds = t }
}

// NewSession deals and shuffles a deck of two cards per symbol. An empty
// symbol set yields a zero-card game that is already complete.
func NewSession(symbols []Symbol, opts ...Option) *Session {
	s := &Session{
		symbols:    append([]Symbol(nil), symbols...),
		thresholds: DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed, err := NewSeed()
		if err != nil {
			seed = time.Now().UnixNano()
		}
		s.rng = newRNG(seed)
	}
	s.deck = NewDeck(s.symbols)
	Shuffle(s.deck, s.rng)
	return s
}

// Reveal turns the card at pos face-up and resolves the turn when it is the
// second card. Invalid positions and cards that are not face-down are
// ignored, which also covers re-tapping the sole pending card.
func (s *Session) Reveal(pos int) Result {
	r := Result{Event: EventIgnored, Epoch: s.epoch}
	if pos < 0 || pos >= len(s.deck) {
		return r
	}
	if s.deck[pos].State != Hidden {
		return r
	}

	s.deck[pos].State = Revealed
	s.pending = append(s.pending, pos)
	if len(s.pending) < 2 {
		r.Event = EventRevealed
		r.Positions[0] = pos
		return r
	}

	// Second card: the turn resolves now, one way or the other.
	a, b := s.pending[0], s.pending[1]
	s.pending = s.pending[:0]
	s.moves++
	r.Positions = [2]int{a, b}

	if s.deck[a].Symbol == s.deck[b].Symbol {
		s.deck[a].State = Matched
		s.deck[b].State = Matched
		s.matched++
		r.Event = EventMatched
		r.Complete = s.Complete()
		return r
	}
	r.Event = EventMismatched
	return r
}

// Conceal is the delayed half of a mismatch: it turns the two cards back
// face-down. A conceal stamped with an old epoch (the session was reset in
// the meantime) or aimed at cards that are no longer simply face-up is a
// no-op, never an error.
func (s *Session) Conceal(epoch uint64, a, b int) {
	if epoch != s.epoch {
		return
	}
	for _, pos := range [2]int{a, b} {
		if pos < 0 || pos >= len(s.deck) {
			continue
		}
		if s.isPending(pos) {
			continue
		}
		if s.deck[pos].State == Revealed {
			s.deck[pos].State = Hidden
		}
	}
}

// Reset starts the session over: same symbol composition, fresh shuffle,
// counters zeroed. Bumping the epoch invalidates any conceal still in
// flight.
func (s *Session) Reset() {
	s.epoch++
	s.pending = s.pending[:0]
	s.moves = 0
	s.matched = 0
	s.deck = NewDeck(s.symbols)
	Shuffle(s.deck, s.rng)
}

// Cards returns ordered view-models for the rendering layer.
func (s *Session) Cards() []CardView {
	out := make([]CardView, len(s.deck))
	for i, c := range s.deck {
		v := CardView{ID: c.ID, State: c.State}
		if c.State != Hidden {
			v.Symbol = c.Symbol
		}
		out[i] = v
	}
	return out
}

// Moves is the number of resolved turns so far.
func (s *Session) Moves() int { return s.moves }

// Stars is the current rating, recomputed from the move count every time.
func (s *Session) Stars() int { return s.thresholds.Stars(s.moves) }

// MatchedPairs is the number of pairs locked open so far.
func (s *Session) MatchedPairs() int { return s.matched }

// TotalPairs is the number of distinct symbols in the deck.
func (s *Session) TotalPairs() int { return len(s.symbols) }

// Complete reports whether every pair has been matched. A zero-pair game is
// complete from the start.
func (s *Session) Complete() bool { return s.matched == len(s.symbols) }

// Epoch identifies the current run of the session for scheduled effects.
func (s *Session) Epoch() uint64 { return s.epoch }

func (s *Session) isPending(pos int) bool {
	for _, p := range s.pending {
		if p == pos {
			return true
		}
	}
	return false
}
