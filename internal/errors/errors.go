package errors

import "errors"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func New(status int, message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: status}
}

// StatusCode returns the status carried by err, or fallback when err does
// not wrap an *ErrorWithStatusCode.
func StatusCode(err error, fallback int) int {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return fallback
}
