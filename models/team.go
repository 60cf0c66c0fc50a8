package models

import "time"

// Team is a student project team. Guide and sub-expert are assigned by
// the admin after formation, so both are nullable.
type Team struct {
	TeamID         int        `gorm:"primaryKey;column:team_id" json:"team_id"`
	LeaderRegNo    string     `gorm:"column:leader_reg_no" json:"leader_reg_no"`
	Cluster        string     `gorm:"column:cluster" json:"cluster"`
	GuideRegNo     *string    `gorm:"column:guide_reg_no" json:"guide_reg_no,omitempty"`
	SubExpertRegNo *string    `gorm:"column:sub_expert_reg_no" json:"sub_expert_reg_no,omitempty"`
	Semester       int        `gorm:"column:semester" json:"semester"`
	CreateAt       *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt       *time.Time `gorm:"column:update_at" json:"update_at"`

	Members []Student `gorm:"foreignKey:TeamID" json:"members,omitempty"`
	Project *Project  `gorm:"foreignKey:TeamID" json:"project,omitempty"`
}

// TableName specifies the table name for Team.
func (Team) TableName() string {
	return "teams"
}
