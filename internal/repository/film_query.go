package repository

import (
	"strings"
	"time"

	"film-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FilmSortKey string

const (
	SortByID           FilmSortKey = "id"
	SortByRating       FilmSortKey = "rating"
	SortByPremiereDate FilmSortKey = "premiere_date"
)

// Valid reports whether k names a sortable film column.
func (k FilmSortKey) Valid() bool {
	switch k {
	case SortByID, SortByRating, SortByPremiereDate:
		return true
	}
	return false
}

// FilmQuery selects a page of films. Zero-valued fields do not filter.
type FilmQuery struct {
	Search            string
	DirectorID        *uint
	Rating            *int
	StartPremiereDate *time.Time
	EndPremiereDate   *time.Time
	GenreIDs          []uint
	SortBy            FilmSortKey
	SortOrder         SortOrder
	Page              int
}

// filters returns the predicate stages in application order.
func (q FilmQuery) filters() []func(*gorm.DB) *gorm.DB {
	return []func(*gorm.DB) *gorm.DB{
		searchTitle(q.Search),
		directorIs(q.DirectorID),
		ratingIs(q.Rating),
		premieredBetween(q.StartPremiereDate, q.EndPremiereDate),
		inAnyGenre(q.GenreIDs),
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func searchTitle(search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}
		pattern := "%" + likeEscaper.Replace(models.FoldTitle(search)) + "%"
		return db.Where(`films.search_title LIKE ? ESCAPE '\'`, pattern)
	}
}

func directorIs(id *uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id == nil {
			return db
		}
		return db.Where("films.director_id = ?", *id)
	}
}

func ratingIs(rating *int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if rating == nil {
			return db
		}
		return db.Where("films.rating = ?", *rating)
	}
}

// premieredBetween applies inclusive bounds. Films without a premiere date
// never satisfy a bound.
func premieredBetween(start, end *time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if start != nil {
			db = db.Where("films.premiere_date >= ?", dateOnly(*start))
		}
		if end != nil {
			db = db.Where("films.premiere_date <= ?", dateOnly(*end))
		}
		return db
	}
}

// inAnyGenre keeps films sharing at least one genre with ids.
func inAnyGenre(ids []uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(ids) == 0 {
			return db
		}
		return db.Where("films.id IN (SELECT film_genres.film_id FROM film_genres WHERE film_genres.genre_id IN ?)", ids)
	}
}

// ordered sorts by the requested key with films.id as a tiebreak so that
// consecutive pages never overlap.
func (q FilmQuery) ordered(db *gorm.DB) *gorm.DB {
	key := q.SortBy
	if !key.Valid() {
		key = SortByID
	}
	desc := q.SortOrder == Descending

	db = db.Order(clause.OrderByColumn{
		Column: clause.Column{Table: "films", Name: string(key)},
		Desc:   desc,
	})
	if key != SortByID {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Table: "films", Name: "id"}})
	}
	return db
}

func (q FilmQuery) paginate(perPage int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.Page == AllPages {
			return db
		}
		return db.Offset(pageOffset(q.Page, perPage)).Limit(perPage)
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
