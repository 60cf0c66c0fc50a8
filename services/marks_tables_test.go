package services

import (
	"testing"

	"project-review-api/models"
)

func TestBandForSemester(t *testing.T) {
	cases := []struct {
		semester int
		band     SemesterBand
		ok       bool
	}{
		{5, BandS5S6, true},
		{6, BandS5S6, true},
		{7, BandS7, true},
		{8, BandS7, true}, // semester 8 shares the s7 tables
		{4, "", false},
		{9, "", false},
		{0, "", false},
	}
	for _, tc := range cases {
		band, ok := BandForSemester(tc.semester)
		if band != tc.band || ok != tc.ok {
			t.Errorf("BandForSemester(%d) = (%q, %v), want (%q, %v)", tc.semester, band, ok, tc.band, tc.ok)
		}
	}
}

func TestMarksTableResolution(t *testing.T) {
	cases := []struct {
		semester   int
		reviewType string
		mode       string
		role       EvalRole
		want       string
	}{
		{6, models.ReviewTypeFirst, ReviewModeRegular, RoleGuide, "s5_s6_first_marks_byguide"},
		{6, models.ReviewTypeFirst, ReviewModeRegular, RoleSubExpert, "s5_s6_first_marks_bysubexpert"},
		{8, models.ReviewTypeSecond, ReviewModeRegular, RoleGuide, "s7_second_marks_byguide"},
		{5, models.ReviewTypeSecond, models.ModeOptional, RoleSubExpert, "s5_s6_second_optional_marks_bysubexpert"},
		{7, models.ReviewTypeFirst, models.ModeChallenge, RolePMC1, "s7_first_challenge_marks_bypmc1"},
		{7, models.ReviewTypeFirst, models.ModeChallenge, RolePMC2, "s7_first_challenge_marks_bypmc2"},
	}
	for _, tc := range cases {
		got, ok := MarksTable(tc.semester, tc.reviewType, tc.mode, tc.role)
		if !ok || got != tc.want {
			t.Errorf("MarksTable(%d, %s, %s, %s) = (%q, %v), want %q",
				tc.semester, tc.reviewType, tc.mode, tc.role, got, ok, tc.want)
		}
	}
}

func TestMarksTableRejectsUnknownTuples(t *testing.T) {
	// Challenge reviews have no guide table; regular reviews have no
	// PMC tables; out-of-range semesters resolve to nothing.
	invalid := []struct {
		semester   int
		reviewType string
		mode       string
		role       EvalRole
	}{
		{6, models.ReviewTypeFirst, models.ModeChallenge, RoleGuide},
		{6, models.ReviewTypeFirst, ReviewModeRegular, RolePMC1},
		{4, models.ReviewTypeFirst, ReviewModeRegular, RoleGuide},
		{6, "review-3", ReviewModeRegular, RoleGuide},
		{6, models.ReviewTypeFirst, "remedial", RoleGuide},
	}
	for _, tc := range invalid {
		if name, ok := MarksTable(tc.semester, tc.reviewType, tc.mode, tc.role); ok {
			t.Errorf("MarksTable(%d, %s, %s, %s) = %q, want no match",
				tc.semester, tc.reviewType, tc.mode, tc.role, name)
		}
	}
}
