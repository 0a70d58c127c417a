package repository

import (
	"context"
	"testing"
	"time"

	"film-backend/internal/database"
	"film-backend/internal/database/dbtest"
	"film-backend/internal/models"
)

type fixture struct {
	db        *database.Database
	films     FilmRepository
	directors DirectorRepository
	genres    GenreRepository
	users     UserRepository
	owner     *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := dbtest.New(t)
	f := &fixture{
		db:        db,
		films:     NewFilmRepository(db, 3),
		directors: NewDirectorRepository(db),
		genres:    NewGenreRepository(db),
		users:     NewUserRepository(db),
	}

	owner, err := f.users.Create(context.Background(), "owner", "hash", models.RoleUser)
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}
	f.owner = owner
	return f
}

func (f *fixture) director(t *testing.T, first, last string) *models.Director {
	t.Helper()
	d, err := f.directors.Create(context.Background(), models.DirectorInput{FirstName: first, LastName: last})
	if err != nil {
		t.Fatalf("create director: %v", err)
	}
	return d
}

func (f *fixture) genre(t *testing.T, name string) *models.Genre {
	t.Helper()
	g, err := f.genres.Create(context.Background(), models.GenreInput{Name: name})
	if err != nil {
		t.Fatalf("create genre %q: %v", name, err)
	}
	return g
}

func (f *fixture) film(t *testing.T, in models.FilmInput) *models.Film {
	t.Helper()
	if in.UserID == 0 {
		in.UserID = f.owner.ID
	}
	film, err := f.films.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create film %q: %v", in.Title, err)
	}
	return film
}

func (f *fixture) countFilms(t *testing.T) int64 {
	t.Helper()
	n, err := f.films.Count(context.Background())
	if err != nil {
		t.Fatalf("count films: %v", err)
	}
	return n
}

func date(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}

func ptr[T any](v T) *T {
	return &v
}

func filmIDs(films []models.Film) []uint {
	ids := make([]uint, 0, len(films))
	for _, f := range films {
		ids = append(ids, f.ID)
	}
	return ids
}

func sameIDs(got, want []uint) bool {
	if len(got) != len(want) {
		return false
	}
	seen := make(map[uint]int, len(got))
	for _, id := range got {
		seen[id]++
	}
	for _, id := range want {
		if seen[id] == 0 {
			return false
		}
		seen[id]--
	}
	return true
}
