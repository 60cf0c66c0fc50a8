package models

import "time"

// Staff is a faculty member who can act as guide, sub-expert, or as a
// PMC1/PMC2 reviewer for challenge reviews. Designation is the raw
// title string (e.g. "Professor", "Assistant Professor Level III");
// services/seniority.go maps it to a rank.
type Staff struct {
	StaffID     int        `gorm:"primaryKey;column:staff_id" json:"staff_id"`
	RegNo       string     `gorm:"column:reg_no;unique" json:"reg_no"`
	Name        string     `gorm:"column:name" json:"name"`
	Email       string     `gorm:"column:email" json:"email"`
	Cluster     string     `gorm:"column:cluster" json:"cluster"`
	Designation string     `gorm:"column:designation" json:"designation"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt    *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName specifies the table name for Staff.
func (Staff) TableName() string {
	return "staff"
}
