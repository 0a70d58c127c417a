package models

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name string `gorm:"uniqueIndex;not null;size:25" json:"name" example:"user"`
}

func (Role) TableName() string {
	return "roles"
}
