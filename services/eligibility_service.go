package services

import (
	"errors"
	"fmt"

	"project-review-api/models"

	"gorm.io/gorm"
)

// Eligibility is the outcome of an eligibility check. Reason is set
// only when Eligible is false.
type Eligibility struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

// Failure reasons surfaced to the client.
const (
	ReasonFeatureDisabled  = "FeatureDisabled"
	ReasonDuplicateRequest = "DuplicateRequest"
	ReasonNotAbsent        = "NotAbsentInRegularReview"
	ReasonNotPresent       = "NotPresentInRegularReview"
)

// EligibilityService decides whether a student may submit an optional
// or challenge review request. All checks are read-only; the same
// checks are re-run inside the submission transaction to close the
// check-then-act window.
type EligibilityService struct {
	db *gorm.DB
}

func NewEligibilityService(db *gorm.DB) *EligibilityService {
	return &EligibilityService{db: db}
}

// CheckEligibility runs the gate checks in order; the first failure
// short-circuits.
func (s *EligibilityService) CheckEligibility(studentRegNo string, semester int, reviewType, mode string) (Eligibility, error) {
	return s.check(s.db, studentRegNo, semester, reviewType, mode)
}

// checkWithin re-runs the same checks on tx so a submission can
// validate inside the transaction that performs the write.
func (s *EligibilityService) checkWithin(tx *gorm.DB, studentRegNo string, semester int, reviewType, mode string) (Eligibility, error) {
	return s.check(tx, studentRegNo, semester, reviewType, mode)
}

func (s *EligibilityService) check(db *gorm.DB, studentRegNo string, semester int, reviewType, mode string) (Eligibility, error) {
	if studentRegNo == "" || !validReviewType(reviewType) || !validMode(mode) {
		return Eligibility{}, ErrValidation
	}
	if _, ok := BandForSemester(semester); !ok {
		return Eligibility{}, ErrValidation
	}

	// 1. Admin toggle for this mode and review type.
	enabled, err := NewAccessService(db).IsEnabled(mode, reviewType)
	if err != nil {
		return Eligibility{}, err
	}
	if !enabled {
		return Eligibility{Eligible: false, Reason: ReasonFeatureDisabled}, nil
	}

	// 2. One request per (student, semester, mode).
	var count int64
	if err := db.Model(&models.ReviewRequest{}).
		Where("student_reg_no = ? AND semester = ? AND mode = ?", studentRegNo, semester, mode).
		Count(&count).Error; err != nil {
		return Eligibility{}, fmt.Errorf("failed to check existing requests: %w", err)
	}
	if count > 0 {
		return Eligibility{Eligible: false, Reason: ReasonDuplicateRequest}, nil
	}

	// 3. Attendance in the regular evaluations.
	guideAttendance, err := s.attendance(db, studentRegNo, semester, reviewType, RoleGuide)
	if err != nil {
		return Eligibility{}, err
	}
	subExpertAttendance, err := s.attendance(db, studentRegNo, semester, reviewType, RoleSubExpert)
	if err != nil {
		return Eligibility{}, err
	}

	switch mode {
	case models.ModeOptional:
		// Remedial path: the student must have missed both regular
		// evaluations.
		if guideAttendance != models.AttendanceAbsent || subExpertAttendance != models.AttendanceAbsent {
			return Eligibility{Eligible: false, Reason: ReasonNotAbsent}, nil
		}
	case models.ModeChallenge:
		// Escalation path: only a review that actually happened can be
		// challenged.
		if guideAttendance != models.AttendancePresent || subExpertAttendance != models.AttendancePresent {
			return Eligibility{Eligible: false, Reason: ReasonNotPresent}, nil
		}
	}

	return Eligibility{Eligible: true}, nil
}

// attendance returns the attendance value recorded in the regular marks
// table for role, or "" when no row exists.
func (s *EligibilityService) attendance(db *gorm.DB, studentRegNo string, semester int, reviewType string, role EvalRole) (string, error) {
	table, ok := MarksTable(semester, reviewType, ReviewModeRegular, role)
	if !ok {
		return "", ErrValidation
	}

	var record models.MarksRecord
	err := db.Table(table).
		Where("student_reg_no = ? AND semester = ? AND review_type = ?", studentRegNo, semester, reviewType).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", table, err)
	}
	return record.Attendance, nil
}
