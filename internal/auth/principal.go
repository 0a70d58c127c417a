package auth

import (
	"errors"

	"film-backend/internal/models"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("access denied")
)

// Principal is the authenticated caller. A nil *Principal is anonymous.
type Principal struct {
	UserID    uint
	Username  string
	Role      string
	SessionID string
}

func PrincipalFromUser(u *models.User) Principal {
	return Principal{UserID: u.ID, Username: u.Username, Role: u.RoleName()}
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == models.RoleAdmin
}

func RequireAuthenticated(p *Principal) error {
	if p == nil {
		return ErrUnauthenticated
	}
	return nil
}

// RequireAdmin guards director and genre mutations.
func RequireAdmin(p *Principal) error {
	if err := RequireAuthenticated(p); err != nil {
		return err
	}
	if !p.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// RequireOwnerOrAdmin guards film update and delete.
func RequireOwnerOrAdmin(p *Principal, ownerID uint) error {
	if err := RequireAuthenticated(p); err != nil {
		return err
	}
	if p.UserID != ownerID && !p.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
