package models

import "time"

// Schedule modes.
const (
	ScheduleModeOnline  = "online"
	ScheduleModeOffline = "offline"
)

// ReviewSchedule is a concrete scheduled evaluation slot for a team or
// an individual student. Role status columns hold the per-evaluator
// completion state ("Not completed", "Completed", "Rescheduled"); the
// overall status is derived in services, never stored.
//
// Regular/optional schedules use the first/second role pair for guide
// and sub-expert; challenge schedules use it for PMC1 and PMC2.
type ReviewSchedule struct {
	ScheduleID       int        `gorm:"primaryKey;column:schedule_id" json:"schedule_id"`
	TeamID           int        `gorm:"column:team_id" json:"team_id"`
	StudentRegNo     *string    `gorm:"column:student_reg_no" json:"student_reg_no,omitempty"`
	Semester         int        `gorm:"column:semester" json:"semester"`
	ReviewType       string     `gorm:"column:review_type" json:"review_type"`
	ReviewMode       string     `gorm:"column:review_mode" json:"review_mode"`
	Date             time.Time  `gorm:"column:date" json:"date"`
	StartTime        string     `gorm:"column:start_time" json:"start_time"`
	EndTime          string     `gorm:"column:end_time" json:"end_time"`
	Venue            *string    `gorm:"column:venue" json:"venue,omitempty"`
	MeetingLink      *string    `gorm:"column:meeting_link" json:"meeting_link,omitempty"`
	Mode             string     `gorm:"column:mode" json:"mode"`
	FirstRoleStatus  string     `gorm:"column:first_role_status" json:"first_role_status"`
	SecondRoleStatus string     `gorm:"column:second_role_status" json:"second_role_status"`
	CreateAt         *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt         *time.Time `gorm:"column:update_at" json:"update_at"`

	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

// TableName specifies the table name for ReviewSchedule.
func (ReviewSchedule) TableName() string {
	return "review_schedules"
}
