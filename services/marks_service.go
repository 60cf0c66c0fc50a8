package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"project-review-api/models"

	"gorm.io/gorm"
)

// Marks sources reported by AverageMarks.
const (
	SourceRegularReview  = "regular_review"
	SourceOptionalReview = "optional_review"
)

// AverageMarksResult carries the computed mean and where it came from.
// Average is nil when either evaluator's row is missing; no partial
// average or single-evaluator fallback exists.
type AverageMarksResult struct {
	Average *float64 `json:"average_marks"`
	Source  string   `json:"marks_source"`
}

// MarksService reads and writes the partitioned marks tables through
// the registry in marks_tables.go.
type MarksService struct {
	db *gorm.DB
}

func NewMarksService(db *gorm.DB) *MarksService {
	return &MarksService{db: db}
}

// AverageMarks averages the guide and sub-expert totals for one
// student/team/review. The source is inferred from the regular guide
// table: a present row with a total means the marks came from the
// regular review, otherwise from the optional one. The inference can
// misattribute when both regular and optional rows exist; flagged in
// DESIGN.md, preserved as-is.
func (s *MarksService) AverageMarks(studentRegNo string, teamID, semester int, reviewType string) (*AverageMarksResult, error) {
	if studentRegNo == "" || teamID <= 0 || !validReviewType(reviewType) {
		return nil, ErrValidation
	}
	if _, ok := BandForSemester(semester); !ok {
		return nil, ErrValidation
	}

	guideTotal, guideRow, err := s.total(studentRegNo, teamID, semester, reviewType, RoleGuide)
	if err != nil {
		return nil, err
	}
	subTotal, _, err := s.total(studentRegNo, teamID, semester, reviewType, RoleSubExpert)
	if err != nil {
		return nil, err
	}

	result := &AverageMarksResult{Source: SourceOptionalReview}
	if guideRow != nil && guideRow.Attendance == models.AttendancePresent && guideRow.TotalMarks != nil {
		result.Source = SourceRegularReview
	}

	if guideTotal == nil || subTotal == nil {
		return result, nil
	}
	avg := (*guideTotal + *subTotal) / 2
	result.Average = &avg
	return result, nil
}

func (s *MarksService) total(studentRegNo string, teamID, semester int, reviewType string, role EvalRole) (*float64, *models.MarksRecord, error) {
	table, ok := MarksTable(semester, reviewType, ReviewModeRegular, role)
	if !ok {
		return nil, nil, ErrValidation
	}

	var record models.MarksRecord
	err := s.db.Table(table).
		Where("student_reg_no = ? AND team_id = ? AND semester = ? AND review_type = ?",
			studentRegNo, teamID, semester, reviewType).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", table, err)
	}
	return record.TotalMarks, &record, nil
}

// MarksSubmission is one evaluator's rubric entry.
type MarksSubmission struct {
	StudentRegNo     string   `json:"student_reg_no" binding:"required"`
	TeamID           int      `json:"team_id" binding:"required"`
	Semester         int      `json:"semester" binding:"required"`
	ReviewType       string   `json:"review_type" binding:"required"`
	Mode             string   `json:"mode" binding:"required"`
	Role             string   `json:"role" binding:"required"`
	Attendance       string   `json:"attendance" binding:"required"`
	LiteratureSurvey *float64 `json:"literature_survey"`
	ProblemStatement *float64 `json:"problem_statement"`
	Methodology      *float64 `json:"methodology"`
	Implementation   *float64 `json:"implementation"`
	Presentation     *float64 `json:"presentation"`
}

// SubmitMarks inserts a marks row. Submission requires the matching
// schedule to be fully completed; insertion is terminal, so a
// duplicate row is rejected rather than merged.
func (s *MarksService) SubmitMarks(sub *MarksSubmission, evaluatorRegNo string) (*models.MarksRecord, error) {
	role := EvalRole(strings.ToLower(sub.Role))
	table, ok := MarksTable(sub.Semester, sub.ReviewType, sub.Mode, role)
	if !ok {
		return nil, ErrValidation
	}
	if sub.Attendance != models.AttendancePresent && sub.Attendance != models.AttendanceAbsent {
		return nil, ErrValidation
	}

	record := models.MarksRecord{
		StudentRegNo:   sub.StudentRegNo,
		TeamID:         sub.TeamID,
		Semester:       sub.Semester,
		ReviewType:     sub.ReviewType,
		EvaluatorRegNo: evaluatorRegNo,
		Attendance:     sub.Attendance,
	}

	if sub.Attendance == models.AttendancePresent {
		if sub.LiteratureSurvey == nil || sub.ProblemStatement == nil || sub.Methodology == nil ||
			sub.Implementation == nil || sub.Presentation == nil {
			return nil, ErrValidation
		}
		total := *sub.LiteratureSurvey + *sub.ProblemStatement + *sub.Methodology +
			*sub.Implementation + *sub.Presentation
		record.LiteratureSurvey = sub.LiteratureSurvey
		record.ProblemStatement = sub.ProblemStatement
		record.Methodology = sub.Methodology
		record.Implementation = sub.Implementation
		record.Presentation = sub.Presentation
		record.TotalMarks = &total
	}
	// An absent row keeps every rubric field null.

	completed, err := s.scheduleCompleted(sub.TeamID, sub.Semester, sub.ReviewType, sub.Mode)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, fmt.Errorf("%w: review schedule is not completed", ErrValidation)
	}

	var existing int64
	if err := s.db.Table(table).
		Where("student_reg_no = ? AND team_id = ? AND semester = ? AND review_type = ?",
			sub.StudentRegNo, sub.TeamID, sub.Semester, sub.ReviewType).
		Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing marks: %w", err)
	}
	if existing > 0 {
		return nil, ErrDuplicateRequest
	}

	now := time.Now()
	record.CreateAt = &now
	if err := s.db.Table(table).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to insert marks into %s: %w", table, err)
	}
	return &record, nil
}

// MarksForStudent returns the marks rows for one student and review
// across both evaluator roles.
func (s *MarksService) MarksForStudent(studentRegNo string, teamID, semester int, reviewType, mode string) (map[EvalRole]*models.MarksRecord, error) {
	roles := []EvalRole{RoleGuide, RoleSubExpert}
	if mode == models.ModeChallenge {
		roles = []EvalRole{RolePMC1, RolePMC2}
	}

	out := make(map[EvalRole]*models.MarksRecord, len(roles))
	for _, role := range roles {
		table, ok := MarksTable(semester, reviewType, mode, role)
		if !ok {
			return nil, ErrValidation
		}
		var record models.MarksRecord
		err := s.db.Table(table).
			Where("student_reg_no = ? AND team_id = ? AND semester = ? AND review_type = ?",
				studentRegNo, teamID, semester, reviewType).
			First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", table, err)
		}
		out[role] = &record
	}
	return out, nil
}

func (s *MarksService) scheduleCompleted(teamID, semester int, reviewType, mode string) (bool, error) {
	var schedule models.ReviewSchedule
	err := s.db.Where("team_id = ? AND semester = ? AND review_type = ? AND review_mode = ?",
		teamID, semester, reviewType, mode).
		Order("schedule_id DESC").
		First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load schedule: %w", err)
	}

	overall := NextOverallStatus(RoleStatus(schedule.FirstRoleStatus), RoleStatus(schedule.SecondRoleStatus))
	return overall == OverallCompleted, nil
}
