// Package apperrors defines the domain error taxonomy shared by the services
// and mapped to HTTP statuses by the handlers. Anything that is not one of
// these kinds is an infrastructure failure and passes through untouched.
package apperrors

import (
	"errors"
	"fmt"
)

// NotFoundError reports a missing referenced entity, naming which one.
// Lookups by identifier set ID; lookups by handle set Name.
type NotFoundError struct {
	Entity string
	ID     uint
	Name   string
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s not found: %s", e.Entity, e.Name)
	}
	return fmt.Sprintf("%s not found: id=%d", e.Entity, e.ID)
}

// ConflictError reports an edge or record that already exists, including the
// case where a store-level uniqueness constraint fired under a race.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// InvalidOperationError reports a request rejected before any store access,
// such as a self-follow.
type InvalidOperationError struct {
	Message string
}

func (e *InvalidOperationError) Error() string {
	return e.Message
}

// NewNotFound builds a NotFoundError for the given entity and identifier.
func NewNotFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// NewNotFoundByName builds a NotFoundError for a handle-based lookup.
func NewNotFoundByName(entity, name string) error {
	return &NotFoundError{Entity: entity, Name: name}
}

// NewConflict builds a ConflictError with a formatted detail message.
func NewConflict(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// NewInvalidOperation builds an InvalidOperationError with a formatted detail message.
func NewInvalidOperation(format string, args ...any) error {
	return &InvalidOperationError{Message: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// IsInvalidOperation reports whether err is an InvalidOperationError.
func IsInvalidOperation(err error) bool {
	var io *InvalidOperationError
	return errors.As(err, &io)
}
