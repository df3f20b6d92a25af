package apperrors

import (
	"errors"
	"net/http"
)

// Sentinel errors for the three kinds the core contract exposes. Callers
// branch with errors.Is regardless of the message attached.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
)

// Error carries an HTTP status alongside a user-actionable message.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

func NotFound(message string) *Error {
	return &Error{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// Conflict reports a uniqueness violation, typically a second payment row
// for the same renter and period racing the first.
func Conflict(message string) *Error {
	return &Error{Code: http.StatusConflict, Message: message, Err: ErrConflict}
}

// HTTPStatus maps any error to the status a handler should write.
func HTTPStatus(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
