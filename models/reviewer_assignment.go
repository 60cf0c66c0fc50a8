package models

import "time"

// ReviewerAssignment links a student's challenge review to its PMC1
// (senior) and PMC2 reviewers. A staff member appearing in either
// column of any row is excluded from the available pool.
type ReviewerAssignment struct {
	AssignmentID int        `gorm:"primaryKey;column:assignment_id" json:"assignment_id"`
	RequestID    int        `gorm:"column:request_id" json:"request_id"`
	StudentRegNo string     `gorm:"column:student_reg_no" json:"student_reg_no"`
	TeamID       int        `gorm:"column:team_id" json:"team_id"`
	ProjectID    int        `gorm:"column:project_id" json:"project_id"`
	Semester     int        `gorm:"column:semester" json:"semester"`
	ReviewType   string     `gorm:"column:review_type" json:"review_type"`
	Cluster      string     `gorm:"column:cluster" json:"cluster"`
	PMC1RegNo    string     `gorm:"column:pmc1_reg_no" json:"pmc1_reg_no"`
	PMC2RegNo    string     `gorm:"column:pmc2_reg_no" json:"pmc2_reg_no"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`

	PMC1 *Staff `gorm:"foreignKey:PMC1RegNo;references:RegNo" json:"pmc1,omitempty"`
	PMC2 *Staff `gorm:"foreignKey:PMC2RegNo;references:RegNo" json:"pmc2,omitempty"`
}

// TableName specifies the table name for ReviewerAssignment.
func (ReviewerAssignment) TableName() string {
	return "reviewer_assignments"
}
