package apiclient

import (
	"context"
	"errors"
	"net/http"

	"github.com/indigo-rhapsody/indigo-admin/internal/api"
	"github.com/indigo-rhapsody/indigo-admin/internal/session"
)

// AdminLogin exchanges credentials for an access token and stores the
// resulting session. A rejected login is reported as an application error so
// the login form can show the backend's message.
func (c *APIClient) AdminLogin(ctx context.Context, store session.Store, creds api.LoginRequest) (session.Session, error) {
	resp, err := fetch[api.LoginResponse](ctx, c, store, "/auth/admin-login", Request{
		Method: http.MethodPost,
		Body:   creds,
	}, "Login failed")
	if err != nil {
		var e *Error
		if errors.As(err, &e) && e.Kind == KindAuth {
			return session.Session{}, &Error{Kind: KindApplication, Message: e.Message, StatusCode: e.StatusCode}
		}
		return session.Session{}, err
	}
	if resp.AccessToken == "" || resp.User.Id == "" {
		return session.Session{}, &Error{Kind: KindApplication, Message: "Login failed: incomplete response from server."}
	}

	s := session.Session{
		AccessToken: resp.AccessToken,
		UserID:      resp.User.Id,
		Role:        session.ParseRole(resp.User.Role),
		Email:       resp.User.Email,
	}
	if err := store.Set(s); err != nil {
		return session.Session{}, err
	}
	return s, nil
}

// Logout drops the local session. The backend keeps no server side session
// for admin tokens.
func (c *APIClient) Logout(store session.Store) error {
	return store.Clear()
}
