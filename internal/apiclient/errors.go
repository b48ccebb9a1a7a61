package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
)

// Kind classifies a failed backend call.
type Kind int

const (
	KindApplication Kind = iota // non-2xx response not related to authentication
	KindTimeout
	KindNetwork
	KindCORS
	KindAuth // session no longer valid; already cleared by the client
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindNetwork:
		return "network"
	case KindCORS:
		return "cors"
	case KindAuth:
		return "auth"
	default:
		return "application"
	}
}

const (
	MsgTimeout = "Request timeout. Please try again."
	MsgNetwork = "Network error. Please check your connection."
	MsgCORS    = "CORS error. Please check your connection."
)

// ErrSessionExpired matches every KindAuth error via errors.Is.
var ErrSessionExpired = errors.New("session expired")

type Error struct {
	Kind       Kind
	Message    string
	StatusCode int // zero for transport failures
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrSessionExpired && e.Kind == KindAuth
}

// KindOf returns the classification of err, or KindApplication when err did
// not come from the client.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindApplication
}

// IsAuth reports whether err means the session was invalidated.
func IsAuth(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}

var authMarkers = []string{"unauthorized", "forbidden", "invalid token", "token expired"}

func isAuthFailure(status int, message string) bool {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return true
	}
	lower := strings.ToLower(message)
	for _, marker := range authMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func classifyTransport(err error) *Error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return &Error{Kind: KindTimeout, Message: MsgTimeout, Err: err}
	case strings.Contains(strings.ToLower(err.Error()), "cors"):
		return &Error{Kind: KindCORS, Message: MsgCORS, Err: err}
	default:
		return &Error{Kind: KindNetwork, Message: MsgNetwork, Err: err}
	}
}

// errorMessage extracts a human readable message from an error body,
// falling back to the status text.
func errorMessage(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return http.StatusText(status)
}

// withFallback gives an error an operation specific message when the
// underlying one is empty. Auth errors pass through untouched.
func withFallback(err error, fallback string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Kind == KindAuth || e.Message != "" {
			return e
		}
		wrapped := *e
		wrapped.Message = fallback
		return &wrapped
	}
	if err.Error() == "" {
		return &Error{Kind: KindApplication, Message: fallback, Err: err}
	}
	return err
}
