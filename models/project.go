package models

import "time"

// Project type and classifier values.
const (
	ProjectTypeInternal = "internal"
	ProjectTypeExternal = "external"

	ProjectKindHardware = "hardware"
	ProjectKindSoftware = "software"
)

// Project is the single project a team works on for the semester.
type Project struct {
	ProjectID   int        `gorm:"primaryKey;column:project_id" json:"project_id"`
	TeamID      int        `gorm:"column:team_id" json:"team_id"`
	Title       string     `gorm:"column:title" json:"title"`
	ProjectType string     `gorm:"column:project_type" json:"project_type"`
	ProjectKind string     `gorm:"column:project_kind" json:"project_kind"`
	Cluster     string     `gorm:"column:cluster" json:"cluster"`
	Description *string    `gorm:"column:description" json:"description,omitempty"`
	Outcome     *string    `gorm:"column:outcome" json:"outcome,omitempty"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`
}

// TableName specifies the table name for Project.
func (Project) TableName() string {
	return "projects"
}
