package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/indigo-rhapsody/indigo-admin/internal/jwt"
	"github.com/indigo-rhapsody/indigo-admin/internal/logger"
	"github.com/indigo-rhapsody/indigo-admin/internal/session"
)

type sessionContextKey struct{}

// Auth binds the cookie session to each request and guards protected routes.
type Auth struct {
	sessions *session.CookieStore
	now      func() time.Time
}

func NewAuth(sessions *session.CookieStore) *Auth {
	return &Auth{sessions: sessions, now: time.Now}
}

// LoadSession makes the request's session available via Session.
func (a *Auth) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := a.sessions.Load(w, r)
		ctx := context.WithValue(r.Context(), sessionContextKey{}, session.Store(s))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Session returns the store bound by LoadSession, or an empty in-memory
// store when the request did not pass through it.
func Session(r *http.Request) session.Store {
	if s, ok := r.Context().Value(sessionContextKey{}).(session.Store); ok {
		return s
	}
	return session.NewMemory()
}

// WithSession binds s to ctx. Used by tests and by LoadSession.
func WithSession(ctx context.Context, s session.Store) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// NeedAuth lets a request through only with an authenticated session whose
// token has not visibly expired. Pages are redirected to /login; API routes
// get a bare 401.
func (a *Auth) NeedAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := Session(r)
		if !s.IsAuthenticated() {
			denied(w, r)
			return
		}
		if jwt.Expired(s.Token(), a.now()) {
			logger.Log.InfoContext(r.Context(), "access token expired, clearing session", "user_id", s.UserID())
			if err := s.Clear(); err != nil {
				logger.Log.ErrorContext(r.Context(), "clearing expired session", "error", err)
			}
			denied(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func denied(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
