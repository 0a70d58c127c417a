package routes

import (
	"time"

	"film-backend/internal/handlers"
	"film-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/sirupsen/logrus"
)

type Handlers struct {
	Film     *handlers.FilmHandler
	Director *handlers.DirectorHandler
	Genre    *handlers.GenreHandler
	Auth     *handlers.AuthHandler
	Upload   *handlers.UploadHandler
}

// Guards configures how callers are identified and throttled.
type Guards struct {
	Authenticator middleware.Authenticator
	Films         middleware.FilmOwners
	CookieName    string
	LoginLimit    int
	LoginWindow   time.Duration
}

func Setup(app *fiber.App, h Handlers, g Guards, logger *logrus.Logger) {
	app.Use(middleware.LoadPrincipal(g.Authenticator, g.CookieName, logger))

	loginLimiter := limiter.New(limiter.Config{
		Max:        g.LoginLimit,
		Expiration: g.LoginWindow,
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many login attempts, try again later.")
		},
	})

	// Same routes at the root and under the versioned prefix
	mount(app, h, g, loginLimiter, logger)
	mount(app.Group("/api/v1"), h, g, loginLimiter, logger)
}

func mount(r fiber.Router, h Handlers, g Guards, loginLimiter fiber.Handler, logger *logrus.Logger) {
	authenticated := middleware.RequireAuth()
	admin := middleware.RequireAdmin(logger)
	filmAccess := middleware.RequireFilmAccess(g.Films, logger)

	films := r.Group("/films")
	{
		films.Get("/", h.Film.GetAllFilms)
		films.Get("/:id<int>", h.Film.GetFilmByID)
		films.Post("/", authenticated, h.Film.CreateFilm)
		films.Put("/:id<int>", filmAccess, h.Film.UpdateFilm)
		films.Delete("/:id<int>", filmAccess, h.Film.DeleteFilm)
	}

	directors := r.Group("/directors")
	{
		directors.Get("/", h.Director.GetAllDirectors)
		directors.Get("/:id<int>", h.Director.GetDirectorByID)
		directors.Post("/", admin, h.Director.CreateDirector)
		directors.Put("/:id<int>", admin, h.Director.UpdateDirector)
		directors.Delete("/:id<int>", admin, h.Director.DeleteDirector)
	}

	genres := r.Group("/genres")
	{
		genres.Get("/", h.Genre.GetAllGenres)
		genres.Get("/:id<int>", h.Genre.GetGenreByID)
		genres.Post("/", admin, h.Genre.CreateGenre)
		genres.Put("/:id<int>", admin, h.Genre.UpdateGenre)
		genres.Delete("/:id<int>", admin, h.Genre.DeleteGenre)
	}

	auth := r.Group("/auth")
	{
		auth.Post("/register", h.Auth.Register)
		auth.Post("/login", loginLimiter, h.Auth.Login)
		auth.Post("/logout", authenticated, h.Auth.Logout)
		auth.Get("/user", authenticated, h.Auth.CurrentUser)
	}

	uploads := r.Group("/uploads")
	{
		uploads.Get("/posters/presign", authenticated, h.Upload.GetPresignedURL)
	}
}
