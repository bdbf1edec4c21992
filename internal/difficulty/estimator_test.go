package difficulty

import "testing"

func TestAnchorSpacing(t *testing.T) {
	want := -2.5
	for _, l := range Labels {
		if Anchor(l) != want {
			t.Errorf("Anchor(%s) = %v, want %v", l, Anchor(l), want)
		}
		want += 1.0
	}
	if Anchor("") != 0 {
		t.Errorf("missing label should anchor at 0, got %v", Anchor(""))
	}
}

func TestEstimateMonotonicInLabel(t *testing.T) {
	// With text features held constant, a higher label never estimates lower.
	in := Input{Text: "Choose the correct form of the verb for this sentence.", AnswerText: "went"}
	prev := -10.0
	for _, l := range Labels {
		in.Label = l
		got := Estimate(in, "english")
		if got < prev {
			t.Fatalf("Estimate(%s) = %v < Estimate(previous) = %v", l, got, prev)
		}
		prev = got
	}
}

func TestEstimateBounds(t *testing.T) {
	long := ""
	for i := 0; i < 120; i++ {
		long += "palabra, "
	}
	tests := []struct {
		name string
		in   Input
		lang string
	}{
		{"empty", Input{}, "english"},
		{"hardest", Input{Label: C2, Text: long, AnswerText: long}, "english"},
		{"easiest", Input{Label: A1, Text: "Hi."}, "english"},
		{"unknown language", Input{Label: B1, Text: "Bonjour tout le monde."}, "klingon"},
	}
	for _, tt := range tests {
		got := Estimate(tt.in, tt.lang)
		if got < -3 || got > 3 {
			t.Errorf("%s: estimate %v out of [-3, 3]", tt.name, got)
		}
	}
}

func TestEstimateDeterministic(t *testing.T) {
	in := Input{Label: B2, Text: "これは日本語の文章です。漢字も含まれています。", AnswerText: "含む"}
	a := Estimate(in, "japanese")
	b := Estimate(in, "japanese")
	if a != b {
		t.Errorf("estimate not deterministic: %v != %v", a, b)
	}
}

func TestLogographicDensityRaisesEstimate(t *testing.T) {
	kanaOnly := Input{Label: B1, Text: "これはとてもかんたんなぶんしょうです。", AnswerText: "はい"}
	kanjiDense := Input{Label: B1, Text: "日本経済新聞社説読解問題集第三章。", AnswerText: "はい"}
	if Estimate(kanjiDense, "japanese") <= Estimate(kanaOnly, "japanese") {
		t.Error("kanji-dense text should estimate harder than kana-only text of similar length")
	}
}

func TestClauseSignalNeverZero(t *testing.T) {
	// No delimiters at all still counts one clause.
	if got := clauseSignal("no punctuation here"); got != tierValue(1) {
		t.Errorf("clauseSignal = %v, want lowest tier %v", got, tierValue(1))
	}
}

func TestTierRoundTrip(t *testing.T) {
	for i, l := range Labels {
		if Tier(l) != i+1 {
			t.Errorf("Tier(%s) = %d, want %d", l, Tier(l), i+1)
		}
		if ForTier(i+1) != l {
			t.Errorf("ForTier(%d) = %s, want %s", i+1, ForTier(i+1), l)
		}
	}
	if ForTier(0) != A1 || ForTier(99) != C2 {
		t.Error("ForTier should clamp out-of-range tiers")
	}
}

func TestAdjacentWidensOneTier(t *testing.T) {
	tests := []struct {
		label Label
		want  int
	}{
		{A1, 2}, // bottom edge: itself + one above
		{B1, 3},
		{C2, 2}, // top edge
	}
	for _, tt := range tests {
		if got := Adjacent(tt.label); len(got) != tt.want {
			t.Errorf("Adjacent(%s) = %v, want %d labels", tt.label, got, tt.want)
		}
	}
}
