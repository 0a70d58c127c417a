package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"film-backend/internal/auth"
	"film-backend/internal/models"
	"film-backend/internal/repository"
	"film-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"validation", invalid("rating", reasonRating), 400, "rating: Integer in range [0, 10]."},
		{"reference", &repository.ReferenceError{Field: "director_id", ID: 7}, 400, "Director with id 7 does not exist."},
		{"duplicate user", &repository.DuplicateError{Entity: "User", Field: "username", Value: "a"}, 400, "Username is already used."},
		{"not found", fmt.Errorf("load: %w", &repository.NotFoundError{Entity: "Film", ID: 3}), 404, (&repository.NotFoundError{Entity: "Film", ID: 3}).Error()},
		{"credentials", services.ErrInvalidCredentials, 400, "Incorrect username or password."},
		{"unauthenticated", fmt.Errorf("%w: expired", auth.ErrUnauthenticated), 401, "Unauthenticated."},
		{"forbidden", auth.ErrForbidden, 401, "Access denied."},
		{"route not found", fiber.ErrNotFound, 404, "Not found."},
		{"fiber error", fiber.NewError(fiber.StatusTooManyRequests, "slow down"), 429, "slow down"},
		{"unexpected", errors.New("connection reset"), 500, "Internal server error."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := classify(tt.err)
			if code != tt.wantCode || msg != tt.wantMsg {
				t.Errorf("got %d %q, want %d %q", code, msg, tt.wantCode, tt.wantMsg)
			}
		})
	}
}

func TestBodyError(t *testing.T) {
	var req FilmRequest
	err := json.Unmarshal([]byte(`{"rating": "nine"}`), &req)
	if err == nil {
		t.Fatal("expected decode error")
	}

	var validation *ValidationError
	if !errors.As(bodyError(err), &validation) {
		t.Fatalf("expected ValidationError, got %v", bodyError(err))
	}
	if validation.Field != "rating" || validation.Reason != "Should be of type integer." {
		t.Errorf("got %q %q", validation.Field, validation.Reason)
	}

	err = json.Unmarshal([]byte(`{"title":`), &req)
	if got := bodyError(err).Error(); got != "body: Malformed JSON." {
		t.Errorf("syntax: got %q", got)
	}
}

func TestParseGenreIDs(t *testing.T) {
	tests := []struct {
		in      string
		want    []uint
		wantErr bool
	}{
		{"1,2,3", []uint{1, 2, 3}, false},
		{" 3 , 1,3 ", []uint{3, 1}, false},
		{"1,,2", []uint{1, 2}, false},
		{"1,a", nil, true},
		{"0", nil, true},
		{"-2", nil, true},
		{",", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseGenreIDs(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err: got %v, wantErr %v", err, tt.wantErr)
			}
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"3", 3, false},
		{"922337203685477582", repository.MaxPage, false},
		{"0", 0, true},
		{"-4", 0, true},
		{"two", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePage(tt.in)
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Errorf("got %d %v, want %d wantErr %v", got, err, tt.want, tt.wantErr)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2020-01-02", "2020-1-2"} {
		d, err := parseDate("premiere_date", in)
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if !d.Equal(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("%s: got %v", in, d)
		}
	}
	if _, err := parseDate("premiere_date", "02.01.2020"); err == nil || err.Error() != "premiere_date: "+reasonDate {
		t.Errorf("bad layout: got %v", err)
	}
}

func TestFilmRequestToInput(t *testing.T) {
	title, rating, zero, date := "  Alien ", 8, 0, "1979-5-25"

	in, err := (&FilmRequest{Title: &title, Rating: &rating, PremiereDate: &date, GenreIDs: []uint{2, 2, 1}}).toInput()
	if err != nil {
		t.Fatal(err)
	}
	if in.Title != "Alien" || in.Rating != 8 || in.PremiereDate == nil || fmt.Sprint(in.GenreIDs) != "[2 1]" {
		t.Errorf("unexpected input %+v", in)
	}

	if _, err := (&FilmRequest{Title: &title, Rating: &zero}).toInput(); err != nil {
		t.Errorf("rating 0 must be accepted: %v", err)
	}

	over := 11
	tests := []struct {
		name  string
		req   FilmRequest
		field string
	}{
		{"no title", FilmRequest{Rating: &rating}, "title"},
		{"no rating", FilmRequest{Title: &title}, "rating"},
		{"rating over range", FilmRequest{Title: &title, Rating: &over}, "rating"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.toInput()
			var validation *ValidationError
			if !errors.As(err, &validation) || validation.Field != tt.field {
				t.Errorf("got %v, want error on %s", err, tt.field)
			}
		})
	}
}

func TestFilmUpdateRequestToUpdate(t *testing.T) {
	var req FilmUpdateRequest
	if err := json.Unmarshal([]byte(`{"rating": 0, "description": null, "premiere_date": "2001-9-11"}`), &req); err != nil {
		t.Fatal(err)
	}

	up, err := req.toUpdate()
	if err != nil {
		t.Fatal(err)
	}
	if !up.Rating.Present() || up.Rating.Value != 0 {
		t.Errorf("rating: got %+v", up.Rating)
	}
	if !up.Description.Set || !up.Description.Null {
		t.Errorf("description: got %+v", up.Description)
	}
	if up.Title.Set {
		t.Errorf("title should be omitted: %+v", up.Title)
	}
	if !up.PremiereDate.Present() || up.PremiereDate.Value.Day() != 11 {
		t.Errorf("premiere_date: got %+v", up.PremiereDate)
	}

	for _, body := range []string{`{"title": null}`, `{"rating": null}`, `{"rating": 42}`, `{"title": " "}`} {
		var req FilmUpdateRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatal(err)
		}
		if _, err := req.toUpdate(); err == nil {
			t.Errorf("%s: expected validation error", body)
		}
	}
}

func TestNewFilmResponseUnknownDirector(t *testing.T) {
	film := &models.Film{ID: 1, Title: "Alien", Rating: 8, Genres: []models.Genre{{ID: 2, Name: "Horror"}}}

	resp := newFilmResponse(film)
	if resp.Director != unknownDirector {
		t.Errorf("director: got %v", resp.Director)
	}
	if len(resp.Genres) != 1 || resp.Genres[0].Name != "Horror" {
		t.Errorf("genres: got %v", resp.Genres)
	}

	film.Director = &models.Director{ID: 3, FirstName: "Ridley", LastName: "Scott"}
	if d, ok := newFilmResponse(film).Director.(DirectorResponse); !ok || d.ID != 3 {
		t.Errorf("director: got %v", newFilmResponse(film).Director)
	}
}

func TestNameField(t *testing.T) {
	if _, err := nameField("name", models.Optional[string]{}, true); err != nil {
		t.Errorf("omitted on update: %v", err)
	}
	if _, err := nameField("name", models.Optional[string]{}, false); err == nil {
		t.Error("omitted on create must fail")
	}
	if _, err := nameField("name", models.Null[string](), true); err == nil {
		t.Error("null must fail")
	}
	got, err := nameField("name", models.Some("  Drama "), false)
	if err != nil || got.Value != "Drama" {
		t.Errorf("got %+v %v", got, err)
	}
}
