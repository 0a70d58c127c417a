package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id" example:"1"`
	Username     string    `gorm:"uniqueIndex;not null;size:255" json:"username" example:"moviegoer"`
	PasswordHash string    `gorm:"column:password;not null;size:255" json:"-"`
	RoleID       *uint     `gorm:"index" json:"role_id"`
	Role         *Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user's role is admin. Role must be preloaded.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role != nil && u.Role.Name == RoleAdmin
}

func (u *User) RoleName() string {
	if u == nil || u.Role == nil {
		return ""
	}
	return u.Role.Name
}
