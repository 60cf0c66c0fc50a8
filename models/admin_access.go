package models

import "time"

// AdminAccessToggle gates whether optional/challenge review submission
// is currently open, and for which review type. One row per
// (mode, review type). Read fresh on every eligibility and assignment
// call so a flag flipped by another instance takes effect immediately.
type AdminAccessToggle struct {
	ToggleID   int        `gorm:"primaryKey;column:toggle_id" json:"toggle_id"`
	Mode       string     `gorm:"column:mode;uniqueIndex:uniq_toggle,priority:1" json:"mode"`
	ReviewType string     `gorm:"column:review_type;uniqueIndex:uniq_toggle,priority:2" json:"review_type"`
	Enabled    bool       `gorm:"column:enabled" json:"enabled"`
	UpdatedBy  *string    `gorm:"column:updated_by" json:"updated_by,omitempty"`
	UpdateAt   *time.Time `gorm:"column:update_at" json:"update_at"`
}

// TableName specifies the table name for AdminAccessToggle.
func (AdminAccessToggle) TableName() string {
	return "admin_access"
}
