package difficulty

// Label is an authored CEFR difficulty label.
type Label string

const (
	A1 Label = "A1"
	A2 Label = "A2"
	B1 Label = "B1"
	B2 Label = "B2"
	C1 Label = "C1"
	C2 Label = "C2"
)

// Labels lists the six levels in ascending order. Tier n (1-based) is
// Labels[n-1].
var Labels = []Label{A1, A2, B1, B2, C1, C2}

// anchors spaces the six labels evenly across [-2.5, +2.5].
var anchors = map[Label]float64{
	A1: -2.5,
	A2: -1.5,
	B1: -0.5,
	B2: 0.5,
	C1: 1.5,
	C2: 2.5,
}

// Anchor returns the IRT anchor for a label. An unknown or missing label
// anchors at 0.
func Anchor(l Label) float64 {
	if a, ok := anchors[l]; ok {
		return a
	}
	return 0
}

// Tier returns the 1-based tier for a label, or 0 for unknown labels.
func Tier(l Label) int {
	for i, x := range Labels {
		if x == l {
			return i + 1
		}
	}
	return 0
}

// ForTier returns the label for a 1-based tier, clamping out-of-range
// tiers to the nearest end.
func ForTier(tier int) Label {
	if tier < 1 {
		tier = 1
	}
	if tier > len(Labels) {
		tier = len(Labels)
	}
	return Labels[tier-1]
}

// Nearest returns the label whose anchor is closest to theta. Used to
// pick a target level from a learner's ability estimate.
func Nearest(theta float64) Label {
	best := Labels[0]
	bestDist := abs(theta - Anchor(best))
	for _, l := range Labels[1:] {
		if d := abs(theta - Anchor(l)); d < bestDist {
			best, bestDist = l, d
		}
	}
	return best
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Adjacent returns the labels one tier below and above l, clamped at the
// ends. Pool search widens its range query by one tier in each direction.
func Adjacent(l Label) []Label {
	t := Tier(l)
	if t == 0 {
		return []Label{l}
	}
	out := []Label{l}
	if t > 1 {
		out = append(out, Labels[t-2])
	}
	if t < len(Labels) {
		out = append(out, Labels[t])
	}
	return out
}
