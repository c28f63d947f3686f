package session

import (
	"context"
	"net/http"
	"time"
)

// CookieName is the session cookie issued to browsers.
const CookieName = "portfolio_session"

type contextKey struct{}

// WithID returns a context carrying the session ID.
func WithID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, contextKey{}, sessionID)
}

// IDFromContext returns the session ID placed in the context by the session
// middleware, or "" if none is present.
func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// SetCookie issues the session cookie to the client.
func SetCookie(w http.ResponseWriter, sessionID string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie removes the session cookie from the client.
func ClearCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
