package services

import "testing"

func TestSeniorityRankOrdering(t *testing.T) {
	ordered := []string{
		"Head",
		"Professor",
		"Associate Professor",
		"Assistant Professor Level III",
		"Assistant Professor Level II",
		"Assistant Professor Level I",
		"Assistant Professor",
	}
	for i := 1; i < len(ordered); i++ {
		if SeniorityRank(ordered[i-1]) >= SeniorityRank(ordered[i]) {
			t.Errorf("%q (rank %d) should outrank %q (rank %d)",
				ordered[i-1], SeniorityRank(ordered[i-1]), ordered[i], SeniorityRank(ordered[i]))
		}
	}
}

func TestSeniorityRankUnknownSortsLast(t *testing.T) {
	for _, designation := range []string{"", "Lecturer", "Visiting Faculty"} {
		if got := SeniorityRank(designation); got != unrankedSeniority {
			t.Errorf("SeniorityRank(%q) = %d, want %d", designation, got, unrankedSeniority)
		}
	}
	if SeniorityRank("  professor  ") != SeniorityRank("Professor") {
		t.Error("rank lookup should be case and whitespace insensitive")
	}
}
