package app_error

import (
	"errors"
	"fmt"
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

func New(status int, format string, args ...any) error {
	return statusError{error: fmt.Errorf(format, args...), status: status}
}

func BadRequest(format string, args ...any) error {
	return New(400, format, args...)
}

func Unauthorized(format string, args ...any) error {
	return New(401, format, args...)
}

func Forbidden(format string, args ...any) error {
	return New(403, format, args...)
}

func NotFound(format string, args ...any) error {
	return New(404, format, args...)
}

// HTTPStatus returns the status carried by err, or 500 for errors that
// were never classified.
func HTTPStatus(err error) int {
	var se statusError
	if errors.As(err, &se) {
		return se.status
	}
	return 500
}
