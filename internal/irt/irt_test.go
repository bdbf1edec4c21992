package irt

import (
	"math"
	"testing"
)

func TestProbabilityMidpoint(t *testing.T) {
	// At theta == b the 2PL model gives exactly 0.5 regardless of a.
	for _, a := range []float64{0.5, 1.0, 2.0} {
		if p := Probability(0.7, a, 0.7); math.Abs(p-0.5) > 1e-9 {
			t.Errorf("a=%v: P(theta=b) = %v, want 0.5", a, p)
		}
	}
}

func TestProbabilityMonotonicInTheta(t *testing.T) {
	prev := 0.0
	for theta := -3.0; theta <= 3.0; theta += 0.5 {
		p := Probability(theta, 1.2, 0)
		if p <= prev {
			t.Fatalf("probability not increasing at theta=%v: %v <= %v", theta, p, prev)
		}
		prev = p
	}
}

func TestInformationPeaksAtDifficulty(t *testing.T) {
	atB := Information(0, 1.0, 0)
	offB := Information(2, 1.0, 0)
	if atB <= offB {
		t.Errorf("information at b (%v) should exceed information far from b (%v)", atB, offB)
	}
}

func TestInformationHigherDiscriminationWins(t *testing.T) {
	hi := Information(0, 1.2, 0)
	lo := Information(0, 0.5, 0)
	if hi <= lo {
		t.Errorf("a=1.2 info %v should exceed a=0.5 info %v", hi, lo)
	}
}

func TestInformationCapped(t *testing.T) {
	if got := Information(0, 5.0, 0); got > 1.0 {
		t.Errorf("information %v exceeds cap 1.0", got)
	}
}

func TestDifficultyFit(t *testing.T) {
	tests := []struct {
		theta, b, want float64
	}{
		{0, 0, 1},
		{0, 1.5, 0.5},
		{0, 3, 0},
		{0, 4.5, 0}, // clamped, never negative
		{1, -2, 0},
	}
	for _, tt := range tests {
		if got := DifficultyFit(tt.theta, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DifficultyFit(%v, %v) = %v, want %v", tt.theta, tt.b, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-5) != ThetaMin || Clamp(5) != ThetaMax || Clamp(0.25) != 0.25 {
		t.Error("clamp bounds wrong")
	}
}
