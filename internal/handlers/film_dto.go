package handlers

import (
	"strings"
	"time"

	"film-backend/internal/models"
)

const unknownDirector = "unknown"

type FilmRequest struct {
	Title        *string `json:"title" example:"Terminator 2"`
	PremiereDate *string `json:"premiere_date" example:"1991-07-01"`
	DirectorID   *uint   `json:"director_id" example:"1"`
	Description  *string `json:"description" example:"Judgment Day"`
	Rating       *int    `json:"rating" example:"9"`
	PosterURL    *string `json:"poster_url" example:"http://localhost:9000/posters/t2.jpg"`
	GenreIDs     []uint  `json:"genres_ids" example:"1,2"`
}

// FilmUpdateRequest is a partial update. Omitted fields are kept, explicit
// nulls clear optional fields.
type FilmUpdateRequest struct {
	Title        models.Optional[string] `json:"title" swaggertype:"string"`
	PremiereDate models.Optional[string] `json:"premiere_date" swaggertype:"string"`
	DirectorID   models.Optional[uint]   `json:"director_id" swaggertype:"integer"`
	Description  models.Optional[string] `json:"description" swaggertype:"string"`
	Rating       models.Optional[int]    `json:"rating" swaggertype:"integer"`
	PosterURL    models.Optional[string] `json:"poster_url" swaggertype:"string"`
	GenreIDs     models.Optional[[]uint] `json:"genres_ids" swaggertype:"array,integer"`
}

func (r *FilmRequest) toInput() (models.FilmInput, error) {
	var in models.FilmInput

	if r.Title == nil || strings.TrimSpace(*r.Title) == "" {
		return in, invalid("title", reasonRequired)
	}
	in.Title = strings.TrimSpace(*r.Title)

	if r.Rating == nil {
		return in, invalid("rating", reasonRating)
	}
	if err := parseRating("rating", *r.Rating); err != nil {
		return in, err
	}
	in.Rating = *r.Rating

	if r.PremiereDate != nil {
		d, err := parseDate("premiere_date", *r.PremiereDate)
		if err != nil {
			return in, err
		}
		in.PremiereDate = &d
	}

	in.Description = r.Description
	in.PosterURL = r.PosterURL
	in.DirectorID = r.DirectorID
	in.GenreIDs = models.UniqueIDs(r.GenreIDs)
	return in, nil
}

func (r *FilmUpdateRequest) toUpdate() (models.FilmUpdate, error) {
	var up models.FilmUpdate

	if r.Title.Set {
		if r.Title.Null {
			return up, invalid("title", reasonNotNull)
		}
		title := strings.TrimSpace(r.Title.Value)
		if title == "" {
			return up, invalid("title", reasonRequired)
		}
		up.Title = models.Some(title)
	}

	if r.Rating.Set {
		if r.Rating.Null {
			return up, invalid("rating", reasonNotNull)
		}
		if err := parseRating("rating", r.Rating.Value); err != nil {
			return up, err
		}
		up.Rating = r.Rating
	}

	if r.PremiereDate.Set {
		if r.PremiereDate.Null {
			up.PremiereDate = models.Null[time.Time]()
		} else {
			d, err := parseDate("premiere_date", r.PremiereDate.Value)
			if err != nil {
				return up, err
			}
			up.PremiereDate = models.Some(d)
		}
	}

	up.Description = r.Description
	up.PosterURL = r.PosterURL
	up.DirectorID = r.DirectorID
	up.GenreIDs = r.GenreIDs
	return up, nil
}

type DirectorResponse struct {
	ID        uint   `json:"id" example:"1"`
	FirstName string `json:"first_name" example:"James"`
	LastName  string `json:"last_name" example:"Cameron"`
}

type GenreResponse struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Action"`
}

type UserSummary struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"moviegoer"`
}

type FilmResponse struct {
	ID           uint    `json:"id" example:"1"`
	Title        string  `json:"title" example:"Terminator 2"`
	PremiereDate *string `json:"premiere_date" example:"1991-07-01"`
	Description  *string `json:"description"`
	Rating       int     `json:"rating" example:"9"`
	PosterURL    *string `json:"poster_url"`
	// Director is a DirectorResponse, or the string "unknown".
	Director any             `json:"director" swaggertype:"object"`
	User     *UserSummary    `json:"user"`
	Genres   []GenreResponse `json:"genres"`
}

func newDirectorResponse(d *models.Director) DirectorResponse {
	return DirectorResponse{ID: d.ID, FirstName: d.FirstName, LastName: d.LastName}
}

func newGenreResponse(g *models.Genre) GenreResponse {
	return GenreResponse{ID: g.ID, Name: g.Name}
}

func newFilmResponse(f *models.Film) FilmResponse {
	resp := FilmResponse{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		Rating:      f.Rating,
		PosterURL:   f.PosterURL,
		Director:    unknownDirector,
		Genres:      make([]GenreResponse, 0, len(f.Genres)),
	}
	if f.PremiereDate != nil {
		d := f.PremiereDate.Format("2006-01-02")
		resp.PremiereDate = &d
	}
	if f.Director != nil {
		resp.Director = newDirectorResponse(f.Director)
	}
	if f.User != nil {
		resp.User = &UserSummary{ID: f.User.ID, Username: f.User.Username}
	}
	for i := range f.Genres {
		resp.Genres = append(resp.Genres, newGenreResponse(&f.Genres[i]))
	}
	return resp
}

func newFilmResponses(films []models.Film) []FilmResponse {
	out := make([]FilmResponse, 0, len(films))
	for i := range films {
		out = append(out, newFilmResponse(&films[i]))
	}
	return out
}
