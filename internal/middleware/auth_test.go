package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"film-backend/internal/auth"
	"film-backend/internal/models"
	"film-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type fakeAuthenticator map[string]*auth.Principal

func (f fakeAuthenticator) Authenticate(_ context.Context, raw string) (*auth.Principal, error) {
	if p, ok := f[raw]; ok {
		return p, nil
	}
	return nil, auth.ErrUnauthenticated
}

type fakeOwners map[uint]uint

func (f fakeOwners) OwnerOf(_ context.Context, id uint) (uint, error) {
	if owner, ok := f[id]; ok {
		return owner, nil
	}
	return 0, &repository.NotFoundError{Entity: "Film", ID: id}
}

func statusOf(err error) int {
	var notFound *repository.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrUnauthenticated), errors.Is(err, auth.ErrForbidden):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func newTestApp() *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.SendStatus(statusOf(err))
		},
	})

	principals := fakeAuthenticator{
		"owner-token": {UserID: 1, Username: "owner", Role: models.RoleUser},
		"other-token": {UserID: 2, Username: "other", Role: models.RoleUser},
		"admin-token": {UserID: 3, Username: "admin", Role: models.RoleAdmin},
	}
	app.Use(LoadPrincipal(principals, "session", logger))

	ok := func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) }
	app.Put("/films/:id", RequireFilmAccess(fakeOwners{10: 1}, logger), ok)
	app.Post("/genres", RequireAdmin(logger), ok)
	app.Get("/me", RequireAuth(), ok)
	return app
}

func TestGuards(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"owner edits own film", http.MethodPut, "/films/10", "owner-token", http.StatusOK},
		{"admin edits any film", http.MethodPut, "/films/10", "admin-token", http.StatusOK},
		{"other user is denied", http.MethodPut, "/films/10", "other-token", http.StatusUnauthorized},
		{"anonymous is denied", http.MethodPut, "/films/10", "", http.StatusUnauthorized},
		{"revoked token is anonymous", http.MethodPut, "/films/10", "stale", http.StatusUnauthorized},
		{"missing film", http.MethodPut, "/films/11", "owner-token", http.StatusNotFound},
		{"anonymous missing film", http.MethodPut, "/films/11", "", http.StatusUnauthorized},
		{"user creates genre", http.MethodPost, "/genres", "owner-token", http.StatusUnauthorized},
		{"admin creates genre", http.MethodPost, "/genres", "admin-token", http.StatusOK},
		{"authenticated", http.MethodGet, "/me", "other-token", http.StatusOK},
		{"unauthenticated", http.MethodGet, "/me", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("got %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestSessionTokenPrefersCookie(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(SessionToken(c, "session"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer from-header")
	req.AddCookie(&http.Cookie{Name: "session", Value: "from-cookie"})

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "from-cookie" {
		t.Errorf("got %q", body)
	}
}
