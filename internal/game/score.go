package game

// Thresholds are the move counts at which the star rating drops. The rating
// only ever moves down within a game because moves only go up.
type Thresholds struct {
	ThreeStars int // rating is 3 while moves < ThreeStars
	TwoStars   int // rating is 2 while moves < TwoStars, 1 from then on
}

// DefaultThresholds is the classic 15/25 split.
func DefaultThresholds() Thresholds {
	return Thresholds{ThreeStars: 15, TwoStars: 25}
}

// Stars maps a move count to a 1–3 rating.
func (t Thresholds) Stars(moves int) int {
	switch {
	case moves < t.ThreeStars:
		return 3
	case moves < t.TwoStars:
		return 2
	default:
		return 1
	}
}
