package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// NotFoundError reports a missing entity for read-one, update or delete.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found.", e.Entity, e.ID)
}

// ReferenceError reports a write that points at a row which does not exist.
type ReferenceError struct {
	Field string
	ID    uint
}

func (e *ReferenceError) Error() string {
	switch e.Field {
	case "director_id":
		return fmt.Sprintf("Director with id %d does not exist.", e.ID)
	case "genres_ids":
		return fmt.Sprintf("Genre with id %d does not exist.", e.ID)
	}
	return fmt.Sprintf("%s: %d does not exist.", e.Field, e.ID)
}

// DuplicateError reports a violated uniqueness rule.
type DuplicateError struct {
	Entity string
	Field  string
	Value  string
}

func (e *DuplicateError) Error() string {
	if e.Entity == "User" && e.Field == "username" {
		return "Username is already used."
	}
	return fmt.Sprintf("%s with %s %q already exists.", e.Entity, e.Field, e.Value)
}

func notFound(err error, entity string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return err
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
