package models

import "time"

// Review modes and request status values.
const (
	ModeOptional  = "optional"
	ModeChallenge = "challenge"

	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"

	ReviewTypeFirst  = "review-1"
	ReviewTypeSecond = "review-2"

	// review_status on a request: whether the granted review happened.
	ReviewNotCompleted = "Not completed"
	ReviewCompleted    = "Completed"
)

// ReviewRequest is a student's application for an optional or challenge
// review. At most one request exists per (student, semester, mode);
// the unique index backs the application-level duplicate check.
// ReviewStatus tracks whether the granted review actually took place
// (challenge flavor); requests rejected in a prior round with
// ReviewStatus "Not completed" form the reassignment retry queue.
type ReviewRequest struct {
	RequestID     int        `gorm:"primaryKey;column:request_id" json:"request_id"`
	Reference     string     `gorm:"column:reference;unique" json:"reference"`
	StudentRegNo  string     `gorm:"column:student_reg_no;uniqueIndex:uniq_request,priority:1" json:"student_reg_no"`
	Semester      int        `gorm:"column:semester;uniqueIndex:uniq_request,priority:2" json:"semester"`
	Mode          string     `gorm:"column:mode;uniqueIndex:uniq_request,priority:3" json:"mode"`
	TeamID        int        `gorm:"column:team_id" json:"team_id"`
	ProjectID     int        `gorm:"column:project_id" json:"project_id"`
	Cluster       string     `gorm:"column:cluster" json:"cluster"`
	ReviewType    string     `gorm:"column:review_type" json:"review_type"`
	Reason        string     `gorm:"column:reason" json:"reason"`
	RequestStatus string     `gorm:"column:request_status" json:"request_status"`
	ReviewStatus  string     `gorm:"column:review_status" json:"review_status"`
	CreateAt      *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt      *time.Time `gorm:"column:update_at" json:"update_at"`

	Student *Student `gorm:"foreignKey:StudentRegNo;references:RegNo" json:"student,omitempty"`
	Team    *Team    `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

// TableName specifies the table name for ReviewRequest.
func (ReviewRequest) TableName() string {
	return "review_requests"
}
