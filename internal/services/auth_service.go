package services

import (
	"context"
	"errors"
	"fmt"

	"film-backend/internal/auth"
	"film-backend/internal/models"
	"film-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	// Login verifies the credentials and opens a session.
	Login(ctx context.Context, username, password string) (*models.User, *auth.Token, error)
	Logout(ctx context.Context, p auth.Principal) error
	// Authenticate resolves a raw session token into a principal. Unknown,
	// expired or revoked sessions yield auth.ErrUnauthenticated.
	Authenticate(ctx context.Context, rawToken string) (*auth.Principal, error)
	CurrentUser(ctx context.Context, p auth.Principal) (*models.User, error)
	// EnsureAdmin creates the admin user, or promotes an existing one.
	EnsureAdmin(ctx context.Context, username, password string) error
}

type authService struct {
	users      repository.UserRepository
	roles      repository.RoleRepository
	sessions   auth.SessionStore
	tokens     *auth.TokenIssuer
	bcryptCost int
	logger     *logrus.Logger
}

func NewAuthService(
	users repository.UserRepository,
	roles repository.RoleRepository,
	sessions auth.SessionStore,
	tokens *auth.TokenIssuer,
	bcryptCost int,
	logger *logrus.Logger,
) AuthService {
	return &authService{
		users:      users,
		roles:      roles,
		sessions:   sessions,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *authService) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, username, hash, models.RoleUser)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":       user.ID,
		"username": user.Username,
	}).Info("Registered user")
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, *auth.Token, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		s.logger.WithField("username", username).Info("Failed login: unknown user")
		return nil, nil, ErrInvalidCredentials
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		s.logger.WithField("username", username).Info("Failed login: wrong password")
		return nil, nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(auth.PrincipalFromUser(user))
	if err != nil {
		return nil, nil, err
	}
	if err := s.sessions.Register(ctx, token.SessionID, user.ID, s.tokens.TTL()); err != nil {
		return nil, nil, err
	}

	s.logger.WithField("username", user.Username).Info("User logged in")
	return user, token, nil
}

func (s *authService) Logout(ctx context.Context, p auth.Principal) error {
	if err := s.sessions.Revoke(ctx, p.SessionID); err != nil {
		return err
	}
	s.logger.WithField("username", p.Username).Info("User logged out")
	return nil
}

func (s *authService) Authenticate(ctx context.Context, rawToken string) (*auth.Principal, error) {
	claims, err := s.tokens.Parse(rawToken)
	if err != nil {
		return nil, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrUnauthenticated, err)
	}

	owner, ok, err := s.sessions.Lookup(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !ok || owner != userID {
		return nil, fmt.Errorf("%w: session is not active", auth.ErrUnauthenticated)
	}

	// Role comes from the store so that promotions apply to live sessions.
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user no longer exists", auth.ErrUnauthenticated)
		}
		return nil, err
	}

	p := auth.PrincipalFromUser(user)
	p.SessionID = claims.ID
	return &p, nil
}

func (s *authService) CurrentUser(ctx context.Context, p auth.Principal) (*models.User, error) {
	return s.users.FindByID(ctx, p.UserID)
}

func (s *authService) EnsureAdmin(ctx context.Context, username, password string) error {
	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.IsAdmin() {
			return nil
		}
		if err := s.roles.Promote(ctx, existing.ID, models.RoleAdmin); err != nil {
			return err
		}
		s.logger.WithField("username", username).Info("Promoted bootstrap admin")
		return nil
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	if _, err := s.users.Create(ctx, username, hash, models.RoleAdmin); err != nil {
		return err
	}
	s.logger.WithField("username", username).Info("Created bootstrap admin")
	return nil
}
