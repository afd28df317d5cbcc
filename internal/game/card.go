package game

import "github.com/google/uuid"

// Symbol identifies a card face. A deck holds exactly two cards per symbol.
type Symbol string

// CardState tracks a card through a round.
type CardState int

const (
	Hidden CardState = iota
	Revealed
	Matched
)

func (s CardState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Matched:
		return "matched"
	}
	return "unknown"
}

// Card is the domain model for one card on the board.
type Card struct {
	ID     uuid.UUID
	Symbol Symbol
	State  CardState
}

// CardView is the rendering-layer view of a card. The symbol is withheld
// while the card is face-down so a renderer cannot leak faces.
type CardView struct {
	ID     uuid.UUID
	Symbol Symbol
	State  CardState
}
