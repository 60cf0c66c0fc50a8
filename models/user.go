package models

import "time"

// Role values stored on users.role.
const (
	RoleStudent = "student"
	RoleStaff   = "staff"
	RoleAdmin   = "admin"
)

// User is the authentication account for a student, staff member or admin.
// The registration number is the identity every other table keys on.
type User struct {
	UserID   int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	RegNo    string     `gorm:"column:reg_no;unique" json:"reg_no"`
	Name     string     `gorm:"column:name" json:"name"`
	Email    string     `gorm:"column:email;unique" json:"email"`
	Password string     `gorm:"column:password" json:"-"`
	Role     string     `gorm:"column:role" json:"role"`
	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName specifies the table name for User.
func (User) TableName() string {
	return "users"
}
