package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
)

var (
	s5s6GuidePattern = regexp.MustCompile("SELECT .* FROM `s5_s6_first_marks_byguide`")
	s5s6SubPattern   = regexp.MustCompile("SELECT .* FROM `s5_s6_first_marks_bysubexpert`")
)

func marksRowStep(pattern *regexp.Regexp, attendance string, total *float64) *queryStep {
	row := []driver.Value{int64(1), "21CS101", int64(10), int64(6), "review-1", attendance, nil}
	if total != nil {
		row[6] = *total
	}
	return &queryStep{
		kind:    kindQuery,
		pattern: pattern,
		columns: []string{"marks_id", "student_reg_no", "team_id", "semester", "review_type", "attendance", "total_marks"},
		rows:    [][]driver.Value{row},
	}
}

func noMarksRowStep(pattern *regexp.Regexp) *queryStep {
	return &queryStep{
		kind:    kindQuery,
		pattern: pattern,
		columns: []string{"marks_id"},
		rows:    [][]driver.Value{},
	}
}

func f(v float64) *float64 { return &v }

func TestAverageMarksBothRowsReturnsMean(t *testing.T) {
	steps := []*queryStep{
		marksRowStep(s5s6GuidePattern, "present", f(78)),
		marksRowStep(s5s6SubPattern, "present", f(82)),
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	result, err := NewMarksService(db).AverageMarks("21CS101", 10, 6, "review-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Average == nil || *result.Average != 80 {
		t.Errorf("Average = %v, want 80", result.Average)
	}
	if result.Source != SourceRegularReview {
		t.Errorf("Source = %q, want %q", result.Source, SourceRegularReview)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestAverageMarksMissingEvaluatorReturnsNull(t *testing.T) {
	cases := []struct {
		name  string
		steps []*queryStep
	}{
		{
			"sub-expert row missing",
			[]*queryStep{
				marksRowStep(s5s6GuidePattern, "present", f(80)),
				noMarksRowStep(s5s6SubPattern),
			},
		},
		{
			"guide row missing",
			[]*queryStep{
				noMarksRowStep(s5s6GuidePattern),
				marksRowStep(s5s6SubPattern, "present", f(90)),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, state, cleanup := newScriptedGormDB(t, tc.steps)
			defer cleanup()

			result, err := NewMarksService(db).AverageMarks("21CS101", 10, 6, "review-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Average != nil {
				t.Errorf("Average = %v, want nil (no partial average)", *result.Average)
			}
			if err := state.verifyComplete(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestAverageMarksSourceInference(t *testing.T) {
	// No present guide row with a total in the regular table means the
	// marks are attributed to the optional review.
	steps := []*queryStep{
		marksRowStep(s5s6GuidePattern, "absent", nil),
		marksRowStep(s5s6SubPattern, "present", f(75)),
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	result, err := NewMarksService(db).AverageMarks("21CS101", 10, 6, "review-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != SourceOptionalReview {
		t.Errorf("Source = %q, want %q", result.Source, SourceOptionalReview)
	}
	if result.Average != nil {
		t.Errorf("Average = %v, want nil when guide total is null", *result.Average)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestAverageMarksRejectsBadInput(t *testing.T) {
	db, _, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewMarksService(db)
	for _, tc := range []struct {
		regNo      string
		teamID     int
		semester   int
		reviewType string
	}{
		{"", 10, 6, "review-1"},
		{"21CS101", 0, 6, "review-1"},
		{"21CS101", 10, 9, "review-1"},
		{"21CS101", 10, 6, "final"},
	} {
		if _, err := svc.AverageMarks(tc.regNo, tc.teamID, tc.semester, tc.reviewType); !errors.Is(err, ErrValidation) {
			t.Errorf("AverageMarks(%+v) error = %v, want ErrValidation", tc, err)
		}
	}
}

func TestSubmitMarksRejectsIncompleteRubric(t *testing.T) {
	db, _, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	sub := &MarksSubmission{
		StudentRegNo: "21CS101",
		TeamID:       10,
		Semester:     6,
		ReviewType:   "review-1",
		Mode:         ReviewModeRegular,
		Role:         "guide",
		Attendance:   "present",
		// rubric fields missing
	}
	if _, err := NewMarksService(db).SubmitMarks(sub, "ST01"); !errors.Is(err, ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}
