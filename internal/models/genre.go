package models

type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name string `gorm:"uniqueIndex;not null;size:255" json:"name" example:"Drama"`
}

func (Genre) TableName() string {
	return "genres"
}

// FilmGenre is the join row between films and genres. Both sides cascade on delete.
type FilmGenre struct {
	FilmID  uint `gorm:"primaryKey;autoIncrement:false"`
	GenreID uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (FilmGenre) TableName() string {
	return "film_genres"
}

type GenreInput struct {
	Name string
}

type GenreUpdate struct {
	Name Optional[string]
}
