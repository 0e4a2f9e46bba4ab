package currency

import "testing"

func TestRate(t *testing.T) {
	cases := map[string]float64{
		"USD": 1.1,
		"GBP": 0.85,
		"EUR": 1.0,
		"JPY": 1.0,
		"":    1.0,
	}
	for code, want := range cases {
		if got := Rate(code); got != want {
			t.Fatalf("Rate(%q): expected %v, got %v", code, want, got)
		}
	}
}
