package models

import "time"

// Attendance values on marks rows. An absent row carries null rubric
// fields and a null total.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// MarksRecord is one evaluator's rubric for one student in one review.
// The same shape is stored in every physical marks table; which table a
// row lives in is decided by the registry in services (semester band,
// review type, mode, evaluator role). Insertion is terminal: rows are
// never updated, and the unique index rejects duplicates.
type MarksRecord struct {
	MarksID        int    `gorm:"primaryKey;column:marks_id" json:"marks_id"`
	StudentRegNo   string `gorm:"column:student_reg_no;uniqueIndex:uniq_marks,priority:1" json:"student_reg_no"`
	TeamID         int    `gorm:"column:team_id;uniqueIndex:uniq_marks,priority:2" json:"team_id"`
	Semester       int    `gorm:"column:semester;uniqueIndex:uniq_marks,priority:3" json:"semester"`
	ReviewType     string `gorm:"column:review_type;uniqueIndex:uniq_marks,priority:4" json:"review_type"`
	EvaluatorRegNo string `gorm:"column:evaluator_reg_no" json:"evaluator_reg_no"`
	Attendance     string `gorm:"column:attendance" json:"attendance"`

	LiteratureSurvey *float64 `gorm:"column:literature_survey" json:"literature_survey,omitempty"`
	ProblemStatement *float64 `gorm:"column:problem_statement" json:"problem_statement,omitempty"`
	Methodology      *float64 `gorm:"column:methodology" json:"methodology,omitempty"`
	Implementation   *float64 `gorm:"column:implementation" json:"implementation,omitempty"`
	Presentation     *float64 `gorm:"column:presentation" json:"presentation,omitempty"`
	TotalMarks       *float64 `gorm:"column:total_marks" json:"total_marks,omitempty"`

	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
}
