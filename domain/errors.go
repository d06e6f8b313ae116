package domain

import (
	"errors"
	"fmt"
)

var (
	errTaskNotFound       error = errors.New("task not found")
	errUserNotFound       error = errors.New("user not found")
	errInvalidID          error = errors.New("invalid id format")
	errNotTaskOwner       error = errors.New("you can only update the status of tasks assigned to you")
	errInvalidStatus      error = errors.New("invalid status value provided")
	errInvalidTransition  error = errors.New("invalid status change")
	errStatusConflict     error = errors.New("task status changed concurrently, please retry")
	errInvalidCredentials error = errors.New("incorrect email or password")
	errInvalidToken       error = errors.New("token invalid")
	errUnauthenticated    error = errors.New("not authorized")
	errForbidden          error = errors.New("forbidden")
	errUserAlreadyExists  error = errors.New("user with the given email already exists")
	errInvalidRole        error = errors.New("role must be Manager or Employee")
)

func ErrTaskNotFound() error {
	return errTaskNotFound
}

func ErrUserNotFound() error {
	return errUserNotFound
}

func ErrInvalidID() error {
	return errInvalidID
}

func ErrNotTaskOwner() error {
	return errNotTaskOwner
}

// ErrInvalidStatus wraps errInvalidStatus with the rejected literal.
func ErrInvalidStatus(value string) error {
	return fmt.Errorf("%w: %q", errInvalidStatus, value)
}

func IsInvalidStatus(err error) bool {
	return errors.Is(err, errInvalidStatus)
}

// ErrInvalidTransition names both ends of the rejected change, matching
// the message existing clients parse.
func ErrInvalidTransition(current, requested Status) error {
	return fmt.Errorf("%w: cannot change task status from %s to %s", errInvalidTransition, current, requested)
}

func IsInvalidTransition(err error) bool {
	return errors.Is(err, errInvalidTransition)
}

func ErrStatusConflict() error {
	return errStatusConflict
}

func ErrInvalidCredentials() error {
	return errInvalidCredentials
}

func ErrInvalidToken() error {
	return errInvalidToken
}

func ErrUnauthenticated() error {
	return errUnauthenticated
}

func ErrForbidden() error {
	return errForbidden
}

func ErrUserAlreadyExists() error {
	return errUserAlreadyExists
}

func ErrInvalidRole() error {
	return errInvalidRole
}
