package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"film-backend/internal/models"
)

func TestFilmCreateRejectsUnknownDirector(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	before := f.countFilms(t)
	_, err := f.films.Create(ctx, models.FilmInput{
		Title:      "Ghost",
		Rating:     5,
		UserID:     f.owner.ID,
		DirectorID: ptr(uint(999999)),
	})

	var refErr *ReferenceError
	if !errors.As(err, &refErr) || refErr.Field != "director_id" || refErr.ID != 999999 {
		t.Fatalf("error: got %v, want director ReferenceError", err)
	}
	if after := f.countFilms(t); after != before {
		t.Errorf("films: got %d, want %d", after, before)
	}
}

func TestFilmCreateRollsBackOnFirstUnknownGenre(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	drama := f.genre(t, "Drama")

	_, err := f.films.Create(ctx, models.FilmInput{
		Title:    "Partial",
		Rating:   5,
		UserID:   f.owner.ID,
		GenreIDs: []uint{drama.ID, 4242, 4343},
	})

	var refErr *ReferenceError
	if !errors.As(err, &refErr) || refErr.Field != "genres_ids" || refErr.ID != 4242 {
		t.Fatalf("error: got %v, want genre ReferenceError for 4242", err)
	}
	if n := f.countFilms(t); n != 0 {
		t.Errorf("films: got %d, want 0", n)
	}

	var links int64
	f.db.Model(&models.FilmGenre{}).Count(&links)
	if links != 0 {
		t.Errorf("film_genres: got %d, want 0", links)
	}
}

func TestFilmCreateCollapsesDuplicateGenres(t *testing.T) {
	f := newFixture(t)
	drama := f.genre(t, "Drama")
	action := f.genre(t, "Action")

	film := f.film(t, models.FilmInput{
		Title:    "Heat",
		Rating:   8,
		GenreIDs: []uint{drama.ID, action.ID, drama.ID},
	})

	if len(film.Genres) != 2 {
		t.Fatalf("genres: got %+v, want 2 distinct", film.Genres)
	}
	if film.User == nil || film.User.ID != f.owner.ID {
		t.Errorf("owner: got %+v", film.User)
	}
}

func TestFilmUpdatePartial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	director := f.director(t, "Ridley", "Scott")
	scifi := f.genre(t, "Sci-Fi")
	horror := f.genre(t, "Horror")
	description := "In space no one can hear you scream."

	film := f.film(t, models.FilmInput{
		Title:        "Alien",
		Rating:       8,
		Description:  &description,
		PremiereDate: date("1979-05-25"),
		DirectorID:   &director.ID,
		GenreIDs:     []uint{scifi.ID},
	})

	tests := []struct {
		name  string
		in    models.FilmUpdate
		check func(t *testing.T, got *models.Film)
	}{
		{
			name: "omitted fields are kept",
			in:   models.FilmUpdate{Title: models.Some("Alien (1979)")},
			check: func(t *testing.T, got *models.Film) {
				if got.Title != "Alien (1979)" {
					t.Errorf("title: got %q", got.Title)
				}
				if got.Rating != 8 || got.Description == nil || got.DirectorID == nil || len(got.Genres) != 1 {
					t.Errorf("untouched fields changed: %+v", got)
				}
			},
		},
		{
			name: "explicit zero rating is applied",
			in:   models.FilmUpdate{Rating: models.Some(0)},
			check: func(t *testing.T, got *models.Film) {
				if got.Rating != 0 {
					t.Errorf("rating: got %d, want 0", got.Rating)
				}
			},
		},
		{
			name: "explicit null clears optional fields",
			in: models.FilmUpdate{
				Description:  models.Null[string](),
				PremiereDate: models.Null[time.Time](),
				DirectorID:   models.Null[uint](),
			},
			check: func(t *testing.T, got *models.Film) {
				if got.Description != nil || got.PremiereDate != nil || got.DirectorID != nil || got.Director != nil {
					t.Errorf("fields not cleared: %+v", got)
				}
			},
		},
		{
			name: "genres are replaced",
			in:   models.FilmUpdate{GenreIDs: models.Some([]uint{horror.ID, scifi.ID, horror.ID})},
			check: func(t *testing.T, got *models.Film) {
				if len(got.Genres) != 2 {
					t.Errorf("genres: got %+v, want 2", got.Genres)
				}
			},
		},
		{
			name: "empty genre list clears associations",
			in:   models.FilmUpdate{GenreIDs: models.Some([]uint{})},
			check: func(t *testing.T, got *models.Film) {
				if len(got.Genres) != 0 {
					t.Errorf("genres: got %+v, want none", got.Genres)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.films.Update(ctx, film.ID, tt.in)
			if err != nil {
				t.Fatalf("Update: %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestFilmUpdateRejectsUnknownReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	drama := f.genre(t, "Drama")
	film := f.film(t, models.FilmInput{Title: "Fargo", Rating: 8, GenreIDs: []uint{drama.ID}})

	_, err := f.films.Update(ctx, film.ID, models.FilmUpdate{
		Title:    models.Some("Changed"),
		GenreIDs: models.Some([]uint{drama.ID, 777}),
	})
	var refErr *ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("error: got %v, want ReferenceError", err)
	}

	got, err := f.films.FindByID(ctx, film.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Title != "Fargo" || len(got.Genres) != 1 {
		t.Errorf("film changed after failed update: %+v", got)
	}

	_, err = f.films.Update(ctx, film.ID, models.FilmUpdate{DirectorID: models.Some(uint(31337))})
	if !errors.As(err, &refErr) || refErr.Field != "director_id" {
		t.Errorf("error: got %v, want director ReferenceError", err)
	}
}

func TestFilmNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.films.FindByID(ctx, 404); !IsNotFound(err) {
		t.Errorf("FindByID: got %v, want NotFoundError", err)
	}
	if _, err := f.films.Update(ctx, 404, models.FilmUpdate{Title: models.Some("x")}); !IsNotFound(err) {
		t.Errorf("Update: got %v, want NotFoundError", err)
	}
	if _, err := f.films.Delete(ctx, 404); !IsNotFound(err) {
		t.Errorf("Delete: got %v, want NotFoundError", err)
	}
	if _, err := f.films.OwnerOf(ctx, 404); !IsNotFound(err) {
		t.Errorf("OwnerOf: got %v, want NotFoundError", err)
	}
}

func TestFilmDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	drama := f.genre(t, "Drama")
	film := f.film(t, models.FilmInput{Title: "Gone", Rating: 3, GenreIDs: []uint{drama.ID}})

	deleted, err := f.films.Delete(ctx, film.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.Title != "Gone" {
		t.Errorf("deleted: got %+v", deleted)
	}
	if n := f.countFilms(t); n != 0 {
		t.Errorf("films: got %d, want 0", n)
	}
	if _, err := f.genres.FindByID(ctx, drama.ID); err != nil {
		t.Errorf("genre should survive film delete: %v", err)
	}
}

func TestFilmOwnerOf(t *testing.T) {
	f := newFixture(t)
	film := f.film(t, models.FilmInput{Title: "Mine", Rating: 6})

	owner, err := f.films.OwnerOf(context.Background(), film.ID)
	if err != nil {
		t.Fatalf("OwnerOf: %v", err)
	}
	if owner != f.owner.ID {
		t.Errorf("owner: got %d, want %d", owner, f.owner.ID)
	}
}
