package models

type Director struct {
	ID        uint   `gorm:"primaryKey" json:"id" example:"1"`
	FirstName string `gorm:"not null;size:255" json:"first_name" example:"James"`
	LastName  string `gorm:"not null;size:255" json:"last_name" example:"Cameron"`
}

func (Director) TableName() string {
	return "directors"
}

type DirectorInput struct {
	FirstName string
	LastName  string
}

type DirectorUpdate struct {
	FirstName Optional[string]
	LastName  Optional[string]
}
