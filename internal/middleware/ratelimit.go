package middleware

import (
	"fmt"
	"net"
	"net/http"

	"github.com/indigo-rhapsody/indigo-admin/internal/logger"
	"github.com/indigo-rhapsody/indigo-admin/internal/middleware/ratelimiter"
)

// RateLimit throttles requests per identity. onLimit renders the rejection;
// nil sends a plain 429.
func RateLimit(rl *ratelimiter.UserRateLimiter, getIdentity func(r *http.Request) (string, error), onLimit http.HandlerFunc) func(http.Handler) http.Handler {
	if onLimit == nil {
		onLimit = func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Rate limit exceeded, try again later", http.StatusTooManyRequests)
		}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				logger.Log.WarnContext(r.Context(), "rate limit identity", "error", err)
				http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
				return
			}
			if !rl.Allow(identity) {
				logger.Log.WarnContext(r.Context(), "rate limit exceeded", "identity", identity, "path", r.URL.Path)
				onLimit(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetIP extracts the client IP from RemoteAddr. Forwarding headers are not
// trusted; run chi's RealIP in front when deployed behind a proxy.
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid IP address: %s", ip)
	}
	return ip, nil
}
