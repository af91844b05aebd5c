package entity

import "time"

// User roles, from most to least privileged.
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleTechnician = "technician"
	RoleViewer     = "viewer"
)

type User struct {
	ID           uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username     string     `gorm:"column:username;type:varchar(64);not null;uniqueIndex" json:"username"`
	Email        string     `gorm:"column:email;type:varchar(128);not null;uniqueIndex" json:"email"`
	Name         string     `gorm:"column:name;type:varchar(128)" json:"name"`
	Role         string     `gorm:"column:role;type:varchar(32);not null;default:viewer" json:"role"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(128);not null" json:"-"`
	// No default tag: gorm would skip a zero-valued Active on insert and
	// the column default would resurrect disabled accounts. Callers set it.
	Active      bool       `gorm:"column:active;not null" json:"active"`
	LastLoginAt *time.Time `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsManager() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}

// CanEdit reports whether the user may mutate assets and sub-records.
func (u *User) CanEdit() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager || u.Role == RoleTechnician
}
