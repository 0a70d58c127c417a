package middleware

import (
	"context"
	"errors"
	"strings"

	"film-backend/internal/auth"
	"film-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const principalKey = "principal"

// Authenticator resolves a raw session token into a principal.
type Authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (*auth.Principal, error)
}

// FilmOwners looks up the owning user of a film.
type FilmOwners interface {
	OwnerOf(ctx context.Context, id uint) (uint, error)
}

// PrincipalFrom returns the caller loaded by LoadPrincipal, or nil for anonymous requests.
func PrincipalFrom(c *fiber.Ctx) *auth.Principal {
	p, _ := c.Locals(principalKey).(*auth.Principal)
	return p
}

// SessionToken reads the token from the session cookie, falling back to a
// bearer Authorization header.
func SessionToken(c *fiber.Ctx, cookieName string) string {
	if raw := c.Cookies(cookieName); raw != "" {
		return raw
	}
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

// LoadPrincipal attaches the caller to the request. Invalid or revoked tokens
// leave the request anonymous.
func LoadPrincipal(authenticator Authenticator, cookieName string, logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := SessionToken(c, cookieName)
		if raw == "" {
			return c.Next()
		}

		p, err := authenticator.Authenticate(c.Context(), raw)
		switch {
		case err == nil:
			c.Locals(principalKey, p)
		case errors.Is(err, auth.ErrUnauthenticated):
			logger.WithError(err).Debug("Ignoring session token")
		default:
			return err
		}
		return c.Next()
	}
}

// RequireAuth rejects anonymous callers.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := auth.RequireAuthenticated(PrincipalFrom(c)); err != nil {
			return err
		}
		return c.Next()
	}
}

// RequireAdmin rejects callers without the admin role.
func RequireAdmin(logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := PrincipalFrom(c)
		if err := auth.RequireAdmin(p); err != nil {
			logDenied(logger, c, p, err)
			return err
		}
		return c.Next()
	}
}

// RequireFilmAccess lets the film owner and admins through. The film id is
// read from the :id route parameter; a missing film is reported as not found
// only to authenticated callers.
func RequireFilmAccess(films FilmOwners, logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := PrincipalFrom(c)
		if err := auth.RequireAuthenticated(p); err != nil {
			return err
		}

		id, err := ParamID(c, "Film")
		if err != nil {
			return err
		}
		owner, err := films.OwnerOf(c.Context(), id)
		if err != nil {
			return err
		}

		if err := auth.RequireOwnerOrAdmin(p, owner); err != nil {
			logDenied(logger, c, p, err)
			return err
		}
		return c.Next()
	}
}

// ParamID parses the :id route parameter. Non-positive ids cannot exist and
// are reported as not found.
func ParamID(c *fiber.Ctx, entity string) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, &repository.NotFoundError{Entity: entity, ID: 0}
	}
	return uint(id), nil
}

func logDenied(logger *logrus.Logger, c *fiber.Ctx, p *auth.Principal, err error) {
	if !errors.Is(err, auth.ErrForbidden) || p == nil {
		return
	}
	logger.WithFields(logrus.Fields{
		"username": p.Username,
		"method":   c.Method(),
		"path":     c.Path(),
	}).Info("Mutation denied for principal without access")
}
