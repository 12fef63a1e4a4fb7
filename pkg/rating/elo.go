package rating

import (
	"math"
)

// Policy is the pluggable rating update rule.
// Implementations must be monotonic: a win never lowers the rating and a
// loss never raises it.
type Policy interface {
	// Initial is the rating assigned before the first update is applied.
	Initial() float64
	// Update returns the new rating given the current one, the average
	// rating of the five opponents and the match outcome.
	Update(current float64, opponentAvg float64, win bool) float64
}

// Default Elo parameters.
const (
	DefaultKFactor       = 32.0
	DefaultInitialRating = 1000.0
)

// EloPolicy is a fixed K-factor Elo update against the average rating of the
// enemy team. Unrated opponents count at the initial rating.
type EloPolicy struct {
	K             float64
	InitialRating float64
}

// NewEloPolicy creates the default Elo policy.
func NewEloPolicy() *EloPolicy {
	return &EloPolicy{
		K:             DefaultKFactor,
		InitialRating: DefaultInitialRating,
	}
}

// Initial returns the starting rating.
func (p *EloPolicy) Initial() float64 {
	return p.InitialRating
}

// Update applies one match result.
func (p *EloPolicy) Update(current float64, opponentAvg float64, win bool) float64 {
	expected := 1 / (1 + math.Pow(10, (opponentAvg-current)/400))

	score := 0.0
	if win {
		score = 1.0
	}

	return current + p.K*(score-expected)
}
