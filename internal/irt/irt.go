// Package irt implements the two-parameter logistic model primitives the
// pool scorer builds on. All functions are pure; callers hold the state.
package irt

import "math"

// Default parameters for items without enough responses to calibrate.
const (
	DefaultDiscrimination = 1.0
)

// Theta bounds. Ability and difficulty both live on this scale.
const (
	ThetaMin = -3.0
	ThetaMax = 3.0
)

// Probability returns P(correct | theta) under the 2PL model with
// discrimination a and difficulty b.
func Probability(theta, a, b float64) float64 {
	return 1.0 / (1.0 + math.Exp(-a*(theta-b)))
}

// Information returns the Fisher information of an item at ability theta,
// capped at 1 so a single extreme item cannot dominate a composite score.
func Information(theta, a, b float64) float64 {
	p := Probability(theta, a, b)
	info := a * a * p * (1 - p)
	return math.Min(info, 1.0)
}

// DifficultyFit scores how close an item's difficulty b sits to theta,
// linearly decaying from 1 at a perfect match to 0 at three logits away.
func DifficultyFit(theta, b float64) float64 {
	return math.Max(0, 1-math.Abs(b-theta)/3)
}

// Clamp bounds v to the theta scale.
func Clamp(v float64) float64 {
	if v < ThetaMin {
		return ThetaMin
	}
	if v > ThetaMax {
		return ThetaMax
	}
	return v
}
