package respond

import "testing"

// TestRandom_PicksFromChoices verifies the result is always one of the
// inputs.
func TestRandom_PicksFromChoices(t *testing.T) {
	choices := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		pick := Random(choices)
		if pick != "a" && pick != "b" && pick != "c" {
			t.Fatalf("pick = %q, not in choices", pick)
		}
		seen[pick] = true
	}
	if len(seen) < 2 {
		t.Error("100 picks from 3 choices should hit more than one value")
	}
}

// TestRandom_SingleChoice verifies the degenerate case.
func TestRandom_SingleChoice(t *testing.T) {
	if got := Random([]int{7}); got != 7 {
		t.Errorf("pick = %d, want 7", got)
	}
}
