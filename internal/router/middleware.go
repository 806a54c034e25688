package router

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const sessionContextKey contextKey = "adminkit.session"

// SessionMiddleware ensures every request carries an admin session. A
// request without the session cookie gets a fresh one issued on the
// response; either way the session ID is placed on the request context for
// downstream handlers and the guard.
func SessionMiddleware(cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID string
			if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
				sessionID = cookie.Value
			} else {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx := context.WithValue(r.Context(), sessionContextKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID returns the session identifier placed on the context by
// SessionMiddleware, or empty when none exists.
func SessionID(ctx context.Context) string {
	if v, ok := ctx.Value(sessionContextKey).(string); ok {
		return v
	}
	return ""
}

// GuardMiddleware rejects admin-section requests that carry no session.
// Requests outside the admin prefix pass through untouched.
func GuardMiddleware(adminPrefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !underPrefix(r.URL.Path, adminPrefix) {
				next.ServeHTTP(w, r)
				return
			}
			if SessionID(r.Context()) == "" {
				http.Error(w, "session required", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// underPrefix reports whether path sits at or below prefix
func underPrefix(path, prefix string) bool {
	if prefix == "" || prefix == "/" {
		return true
	}
	if path == prefix {
		return true
	}
	return len(path) > len(prefix) && path[:len(prefix)] == prefix && path[len(prefix)] == '/'
}
