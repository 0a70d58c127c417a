package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"film-backend/internal/auth"
	"film-backend/internal/database/dbtest"
	"film-backend/internal/events"
	"film-backend/internal/models"
	"film-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

const testPublicURL = "http://cdn.test/posters"

type fakePosters struct {
	deleted []string
}

func (f *fakePosters) GeneratePresignedURL(_ context.Context, filename string) (string, string, error) {
	return "http://upload.test/" + filename, testPublicURL + "/" + filename, nil
}

func (f *fakePosters) ObjectName(posterURL string) (string, bool) {
	return objectNameUnder(testPublicURL, posterURL)
}

func (f *fakePosters) DeleteFile(_ context.Context, name string) error {
	f.deleted = append(f.deleted, name)
	return nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type env struct {
	films     FilmService
	directors DirectorService
	genres    GenreService
	auth      AuthService
	sessions  *auth.MemorySessionStore
	publisher *recordingPublisher
	posters   *fakePosters
	owner     auth.Principal
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := dbtest.New(t)
	logger := quietLogger()

	e := &env{
		sessions:  auth.NewMemorySessionStore(),
		publisher: &recordingPublisher{},
		posters:   &fakePosters{},
	}
	users := repository.NewUserRepository(db)
	e.films = NewFilmService(repository.NewFilmRepository(db, 10), e.posters, e.publisher, logger)
	e.directors = NewDirectorService(repository.NewDirectorRepository(db), e.publisher, logger)
	e.genres = NewGenreService(repository.NewGenreRepository(db), e.publisher, logger)
	e.auth = NewAuthService(users, repository.NewRoleRepository(db), e.sessions,
		auth.NewTokenIssuer("test-secret", time.Hour), bcrypt.MinCost, logger)

	owner, err := e.auth.Register(context.Background(), "owner", "pw")
	if err != nil {
		t.Fatalf("register owner: %v", err)
	}
	e.owner = auth.PrincipalFromUser(owner)
	return e
}

func TestFilmServiceLifecycleEvents(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	film, err := e.films.Create(ctx, e.owner, models.FilmInput{Title: "Heat", Rating: 8, UserID: 9999})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if film.UserID != e.owner.UserID {
		t.Errorf("owner: got %d, want caller %d", film.UserID, e.owner.UserID)
	}
	if _, err := e.films.Update(ctx, e.owner, film.ID, models.FilmUpdate{Rating: models.Some(9)}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, err := e.films.Delete(ctx, e.owner, film.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	want := []events.Type{events.FilmCreated, events.FilmUpdated, events.FilmDeleted}
	got := e.publisher.types()
	if len(got) != len(want) {
		t.Fatalf("events: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestFilmServiceFailedWriteDoesNotPublish(t *testing.T) {
	e := newEnv(t)

	_, err := e.films.Create(context.Background(), e.owner, models.FilmInput{
		Title: "Ghost", Rating: 5, DirectorID: ptr(uint(999999)),
	})
	var refErr *repository.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("Create: got %v, want ReferenceError", err)
	}
	if got := e.publisher.types(); len(got) != 0 {
		t.Errorf("events: got %v, want none", got)
	}
}

func TestFilmServicePublishFailureIsIgnored(t *testing.T) {
	e := newEnv(t)
	e.publisher.err = errors.New("broker down")

	if _, err := e.films.Create(context.Background(), e.owner, models.FilmInput{Title: "Heat", Rating: 8}); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestFilmServicePosterCleanup(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	managed := testPublicURL + "/old_1234.jpg"
	film, err := e.films.Create(ctx, e.owner, models.FilmInput{Title: "Heat", Rating: 8, PosterURL: &managed})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	external := "https://example.com/poster.jpg"
	if _, err := e.films.Update(ctx, e.owner, film.ID, models.FilmUpdate{PosterURL: models.Some(external)}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(e.posters.deleted) != 1 || e.posters.deleted[0] != "old_1234.jpg" {
		t.Fatalf("deleted after replace: got %v", e.posters.deleted)
	}

	if _, err := e.films.Delete(ctx, e.owner, film.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(e.posters.deleted) != 1 {
		t.Errorf("external poster must not be deleted: got %v", e.posters.deleted)
	}
}

func TestCatalogServicesPublish(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	d, err := e.directors.Create(ctx, e.owner, models.DirectorInput{FirstName: "Michael", LastName: "Mann"})
	if err != nil {
		t.Fatalf("director Create: %v", err)
	}
	if _, err := e.directors.Delete(ctx, e.owner, d.ID); err != nil {
		t.Fatalf("director Delete: %v", err)
	}
	g, err := e.genres.Create(ctx, e.owner, models.GenreInput{Name: "Crime"})
	if err != nil {
		t.Fatalf("genre Create: %v", err)
	}
	if _, err := e.genres.Update(ctx, e.owner, g.ID, models.GenreUpdate{Name: models.Some("Heist")}); err != nil {
		t.Fatalf("genre Update: %v", err)
	}

	want := []events.Type{events.DirectorCreated, events.DirectorDeleted, events.GenreCreated, events.GenreUpdated}
	got := e.publisher.types()
	if len(got) != len(want) {
		t.Fatalf("events: got %v, want %v", got, want)
	}
}

func TestAuthServiceLoginAndLogout(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if _, _, err := e.auth.Login(ctx, "owner", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
	if _, _, err := e.auth.Login(ctx, "ghost", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: got %v", err)
	}

	user, token, err := e.auth.Login(ctx, "owner", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	p, err := e.auth.Authenticate(ctx, token.Raw)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if p.UserID != user.ID || p.Role != models.RoleUser || p.SessionID != token.SessionID {
		t.Errorf("principal: got %+v", p)
	}

	if err := e.auth.Logout(ctx, *p); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := e.auth.Authenticate(ctx, token.Raw); !errors.Is(err, auth.ErrUnauthenticated) {
		t.Errorf("after logout: got %v, want ErrUnauthenticated", err)
	}
}

func TestAuthServiceRegisterDuplicate(t *testing.T) {
	e := newEnv(t)

	_, err := e.auth.Register(context.Background(), "owner", "other")
	var dup *repository.DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("got %v, want DuplicateError", err)
	}
}

func TestAuthServiceEnsureAdmin(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if err := e.auth.EnsureAdmin(ctx, "root", "pw"); err != nil {
		t.Fatalf("EnsureAdmin create: %v", err)
	}
	if err := e.auth.EnsureAdmin(ctx, "root", "pw"); err != nil {
		t.Fatalf("EnsureAdmin again: %v", err)
	}
	if err := e.auth.EnsureAdmin(ctx, "owner", "ignored"); err != nil {
		t.Fatalf("EnsureAdmin promote: %v", err)
	}

	_, token, err := e.auth.Login(ctx, "owner", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	p, err := e.auth.Authenticate(ctx, token.Raw)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if !p.IsAdmin() {
		t.Errorf("promoted user role: got %q, want admin", p.Role)
	}
}

func TestPosterObjectName(t *testing.T) {
	name, err := posterObjectName("My Poster!.PNG")
	if err != nil {
		t.Fatalf("posterObjectName: %v", err)
	}
	if !strings.HasPrefix(name, "My-Poster-_") || !strings.HasSuffix(name, ".png") {
		t.Errorf("name: got %q", name)
	}
	if _, err := posterObjectName("script.sh"); !errors.Is(err, ErrUnsupportedPoster) {
		t.Errorf("expected ErrUnsupportedPoster, got %v", err)
	}
}

func TestObjectNameUnder(t *testing.T) {
	tests := []struct {
		url    string
		want   string
		wantOK bool
	}{
		{testPublicURL + "/a_1.jpg", "a_1.jpg", true},
		{testPublicURL + "/a_1.jpg?x=1", "a_1.jpg", true},
		{"http://cdn.test/postersX/a.jpg", "", false},
		{"https://example.com/a.jpg", "", false},
	}
	for _, tt := range tests {
		got, ok := objectNameUnder(testPublicURL, tt.url)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("objectNameUnder(%q): got %q, %v, want %q, %v", tt.url, got, ok, tt.want, tt.wantOK)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
