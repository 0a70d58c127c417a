package models

import (
	"strings"
	"time"
)

const (
	MinRating = 0
	MaxRating = 10
)

type Film struct {
	ID           uint       `gorm:"primaryKey" json:"id" example:"1"`
	Title        string     `gorm:"not null;size:255;index" json:"title" example:"Terminator 2"`
	SearchTitle  string     `gorm:"not null;default:'';size:255;index" json:"-"`
	PremiereDate *time.Time `gorm:"type:date;index" json:"premiere_date"`
	Description  *string    `gorm:"type:text" json:"description"`
	Rating       int        `gorm:"not null;index;check:rating_range,rating >= 0 AND rating <= 10" json:"rating" example:"9"`
	PosterURL    *string    `gorm:"size:255" json:"poster_url"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	User         *User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	DirectorID   *uint      `gorm:"index" json:"director_id"`
	Director     *Director  `gorm:"foreignKey:DirectorID;constraint:OnDelete:SET NULL" json:"director,omitempty"`
	Genres       []Genre    `gorm:"many2many:film_genres;constraint:OnDelete:CASCADE" json:"genres"`
}

func (Film) TableName() string {
	return "films"
}

// FilmInput carries a validated create request. UserID is the owner.
type FilmInput struct {
	Title        string
	PremiereDate *time.Time
	Description  *string
	Rating       int
	PosterURL    *string
	DirectorID   *uint
	GenreIDs     []uint
	UserID       uint
}

// FilmUpdate distinguishes omitted fields from explicit nulls and zero values.
type FilmUpdate struct {
	Title        Optional[string]
	PremiereDate Optional[time.Time]
	Description  Optional[string]
	Rating       Optional[int]
	PosterURL    Optional[string]
	DirectorID   Optional[uint]
	GenreIDs     Optional[[]uint]
}

// FoldTitle returns the form of title that searches match against. SQL LOWER
// only folds ASCII under sqlite, so titles are folded here before storing.
func FoldTitle(title string) string {
	return strings.ToLower(title)
}

// ValidRating reports whether r is inside the accepted rating range.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// UniqueIDs drops duplicates while keeping the first occurrence order.
func UniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
