package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
)

var (
	togglePattern         = regexp.MustCompile("SELECT .* FROM `admin_access` WHERE mode = \\? AND review_type = \\?")
	requestCountPattern   = regexp.MustCompile("SELECT count\\(\\*\\) FROM `review_requests`")
	guideMarksPattern     = regexp.MustCompile("SELECT .* FROM `s5_s6_first_marks_byguide`")
	subExpertMarksPattern = regexp.MustCompile("SELECT .* FROM `s5_s6_first_marks_bysubexpert`")
)

func enabledToggleStep(mode string) *queryStep {
	return &queryStep{
		kind:    kindQuery,
		pattern: togglePattern,
		columns: []string{"toggle_id", "mode", "review_type", "enabled"},
		rows:    [][]driver.Value{{int64(1), mode, "review-1", true}},
	}
}

func attendanceStep(pattern *regexp.Regexp, attendance string) *queryStep {
	return &queryStep{
		kind:    kindQuery,
		pattern: pattern,
		columns: []string{"marks_id", "student_reg_no", "semester", "review_type", "attendance"},
		rows:    [][]driver.Value{{int64(1), "21CS101", int64(6), "review-1", attendance}},
	}
}

func TestCheckEligibilityFeatureDisabled(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: togglePattern,
			columns: []string{"toggle_id", "mode", "review_type", "enabled"},
			rows:    [][]driver.Value{},
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	result, err := NewEligibilityService(db).CheckEligibility("21CS101", 6, "review-1", "optional")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Eligible || result.Reason != ReasonFeatureDisabled {
		t.Errorf("got %+v, want ineligible with %s", result, ReasonFeatureDisabled)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestCheckEligibilityDuplicateRequest(t *testing.T) {
	steps := []*queryStep{
		enabledToggleStep("optional"),
		{
			kind:    kindQuery,
			pattern: requestCountPattern,
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(1)}},
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	result, err := NewEligibilityService(db).CheckEligibility("21CS101", 6, "review-1", "optional")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Eligible || result.Reason != ReasonDuplicateRequest {
		t.Errorf("got %+v, want ineligible with %s", result, ReasonDuplicateRequest)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestCheckEligibilityOptionalRequiresAbsentInBoth(t *testing.T) {
	cases := []struct {
		name         string
		guide, sub   string
		wantEligible bool
	}{
		{"absent in both", "absent", "absent", true},
		{"present with guide", "present", "absent", false},
		{"present with sub-expert", "absent", "present", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			steps := []*queryStep{
				enabledToggleStep("optional"),
				{
					kind:    kindQuery,
					pattern: requestCountPattern,
					columns: []string{"count(*)"},
					rows:    [][]driver.Value{{int64(0)}},
				},
				attendanceStep(guideMarksPattern, tc.guide),
				attendanceStep(subExpertMarksPattern, tc.sub),
			}
			db, state, cleanup := newScriptedGormDB(t, steps)
			defer cleanup()

			result, err := NewEligibilityService(db).CheckEligibility("21CS101", 6, "review-1", "optional")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Eligible != tc.wantEligible {
				t.Errorf("eligible = %v, want %v (reason %q)", result.Eligible, tc.wantEligible, result.Reason)
			}
			if !tc.wantEligible && result.Reason != ReasonNotAbsent {
				t.Errorf("reason = %q, want %s", result.Reason, ReasonNotAbsent)
			}
			if err := state.verifyComplete(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestCheckEligibilityChallengeRequiresPresentInBoth(t *testing.T) {
	steps := []*queryStep{
		enabledToggleStep("challenge"),
		{
			kind:    kindQuery,
			pattern: requestCountPattern,
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(0)}},
		},
		attendanceStep(guideMarksPattern, "present"),
		attendanceStep(subExpertMarksPattern, "absent"),
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	result, err := NewEligibilityService(db).CheckEligibility("21CS101", 6, "review-1", "challenge")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Eligible || result.Reason != ReasonNotPresent {
		t.Errorf("got %+v, want ineligible with %s", result, ReasonNotPresent)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestCheckEligibilityRejectsBadInput(t *testing.T) {
	db, _, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewEligibilityService(db)
	for _, tc := range []struct {
		regNo      string
		semester   int
		reviewType string
		mode       string
	}{
		{"", 6, "review-1", "optional"},
		{"21CS101", 4, "review-1", "optional"},
		{"21CS101", 6, "review-9", "optional"},
		{"21CS101", 6, "review-1", "regular"},
	} {
		if _, err := svc.CheckEligibility(tc.regNo, tc.semester, tc.reviewType, tc.mode); !errors.Is(err, ErrValidation) {
			t.Errorf("CheckEligibility(%+v) error = %v, want ErrValidation", tc, err)
		}
	}
}
