package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"film-backend/internal/auth"
	"film-backend/internal/repository"
	"film-backend/internal/services"
	"film-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ValidationError rejects a malformed request before it reaches a service.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ErrorHandler is the only place errors are turned into HTTP responses.
// Handlers and middleware return errors and fiber routes them here.
func ErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, message := classify(err)

		entry := logger.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		})
		if code >= fiber.StatusInternalServerError {
			entry.Error("Request failed")
		} else {
			entry.Debug("Request rejected")
		}

		return utils.ErrorResponse(c, code, message)
	}
}

func classify(err error) (int, string) {
	var (
		validation *ValidationError
		notFound   *repository.NotFoundError
		reference  *repository.ReferenceError
		duplicate  *repository.DuplicateError
		fiberErr   *fiber.Error
	)

	switch {
	case errors.As(err, &validation):
		return fiber.StatusBadRequest, validation.Error()
	case errors.As(err, &reference):
		return fiber.StatusBadRequest, reference.Error()
	case errors.As(err, &duplicate):
		return fiber.StatusBadRequest, duplicate.Error()
	case errors.As(err, &notFound):
		return fiber.StatusNotFound, notFound.Error()
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusBadRequest, "Incorrect username or password."
	case errors.Is(err, auth.ErrUnauthenticated):
		return fiber.StatusUnauthorized, "Unauthenticated."
	case errors.Is(err, auth.ErrForbidden):
		return fiber.StatusUnauthorized, "Access denied."
	case errors.As(err, &fiberErr):
		if fiberErr.Code == fiber.StatusNotFound {
			return fiberErr.Code, "Not found."
		}
		return fiberErr.Code, fiberErr.Message
	}
	return fiber.StatusInternalServerError, "Internal server error."
}

// bodyError converts a JSON decoding failure into a ValidationError.
func bodyError(err error) error {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return invalid(field, fmt.Sprintf("Should be of type %s.", jsonTypeName(typeErr.Type.Kind().String())))
	case errors.As(err, &syntaxErr):
		return invalid("body", "Malformed JSON.")
	case errors.Is(err, fiber.ErrUnprocessableEntity):
		return invalid("body", "Content-Type must be application/json.")
	}
	return invalid("body", "Invalid request body.")
}

func jsonTypeName(kind string) string {
	switch kind {
	case "int", "int8", "int16", "int32", "int64":
		return "integer"
	case "uint", "uint8", "uint16", "uint32", "uint64":
		return "non-negative integer"
	case "slice":
		return "list"
	case "struct", "map":
		return "object"
	}
	return kind
}
