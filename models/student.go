package models

import "time"

// Student is a project-course student. Semester runs 5 through 8; a
// student belongs to at most one team per semester.
type Student struct {
	StudentID int        `gorm:"primaryKey;column:student_id" json:"student_id"`
	RegNo     string     `gorm:"column:reg_no;unique" json:"reg_no"`
	Name      string     `gorm:"column:name" json:"name"`
	Email     string     `gorm:"column:email" json:"email"`
	Semester  int        `gorm:"column:semester" json:"semester"`
	Cluster   string     `gorm:"column:cluster" json:"cluster"`
	TeamID    *int       `gorm:"column:team_id" json:"team_id,omitempty"`
	CreateAt  *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt  *time.Time `gorm:"column:update_at" json:"update_at"`

	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

// TableName specifies the table name for Student.
func (Student) TableName() string {
	return "students"
}
