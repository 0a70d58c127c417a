package handlers

import (
	"strings"
	"time"

	"film-backend/internal/auth"
	"film-backend/internal/config"
	"film-backend/internal/middleware"
	"film-backend/internal/models"
	"film-backend/internal/services"
	"film-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	reasonCredentials  = "Username and password is required fields."
	reasonPasswordSize = "At most 72 bytes."
)

type CredentialsRequest struct {
	Username string `json:"username" example:"moviegoer"`
	Password string `json:"password" example:"secret"`
}

type RoleResponse struct {
	ID   uint   `json:"id" example:"2"`
	Name string `json:"name" example:"user"`
}

type UserResponse struct {
	ID       uint          `json:"id" example:"1"`
	Username string        `json:"username" example:"moviegoer"`
	Role     *RoleResponse `json:"role"`
}

type LoginResponse struct {
	Message   string       `json:"message" example:"Authentication done successfully."`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type AuthHandler struct {
	service services.AuthService
	cookie  config.AuthConfig
	logger  *logrus.Logger
}

func NewAuthHandler(service services.AuthService, cookie config.AuthConfig, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}

func newUserResponse(u *models.User) UserResponse {
	resp := UserResponse{ID: u.ID, Username: u.Username}
	if u.Role != nil {
		resp.Role = &RoleResponse{ID: u.Role.ID, Name: u.Role.Name}
	}
	return resp
}

// credentials parses a username and password body. Any missing or blank
// field is rejected with the same message. Passwords bcrypt cannot hash are
// rejected here rather than failing in the service.
func credentials(c *fiber.Ctx) (string, string, error) {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, reasonCredentials)
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return "", "", fiber.NewError(fiber.StatusBadRequest, reasonCredentials)
	}
	if len(req.Password) > auth.MaxPasswordBytes {
		return "", "", invalid("password", reasonPasswordSize)
	}
	return username, req.Password, nil
}

// Register godoc
// @Summary Register a user
// @Description New users get the user role
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Credentials"
// @Success 200 {object} utils.ResultResponse{result=UserResponse}
// @Failure 400 {object} utils.MessageResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	username, password, err := credentials(c)
	if err != nil {
		return err
	}

	user, err := h.service.Register(c.Context(), username, password)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Registered successfully.", newUserResponse(user))
}

// Login godoc
// @Summary Log in
// @Description Opens a session. The token is set as an HttpOnly cookie and returned in the body for bearer use.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} utils.MessageResponse
// @Failure 429 {object} utils.MessageResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username, password, err := credentials(c)
	if err != nil {
		return err
	}

	user, token, err := h.service.Login(c.Context(), username, password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.CookieName,
		Value:    token.Raw,
		Path:     "/",
		Expires:  token.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.cookie.SecureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(LoginResponse{
		Message:   "Authentication done successfully.",
		Token:     token.Raw,
		ExpiresAt: token.ExpiresAt,
		User:      newUserResponse(user),
	})
}

// Logout godoc
// @Summary Log out
// @Description Revokes the current session
// @Tags auth
// @Produce json
// @Success 200 {object} utils.MessageResponse
// @Failure 401 {object} utils.MessageResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.service.Logout(c.Context(), *middleware.PrincipalFrom(c)); err != nil {
		return err
	}

	c.ClearCookie(h.cookie.CookieName)
	return c.JSON(utils.MessageResponse{Message: "Logout done successfully."})
}

// CurrentUser godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} utils.MessageResponse
// @Security BearerAuth
// @Router /auth/user [get]
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	user, err := h.service.CurrentUser(c.Context(), *middleware.PrincipalFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(newUserResponse(user))
}
