package middleware

import (
	"net/http"
	"time"

	"github.com/jayramanidev/portfolio/internal/config"
	"github.com/jayramanidev/portfolio/internal/session"

	"github.com/rs/zerolog"
)

// Session ensures every request carries a session: it reads the session
// cookie, issuing a fresh ID and cookie when absent, and places the ID into
// the request context.
func Session(cfg config.SessionConfig, logger zerolog.Logger) func(http.Handler) http.Handler {
	ttl := time.Duration(cfg.TTLMinutes) * time.Minute

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID string

			if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" {
				sessionID = cookie.Value
			} else {
				id, err := session.GenerateID()
				if err != nil {
					logger.Error().Err(err).Msg("failed to generate session id")
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
				sessionID = id
				session.SetCookie(w, sessionID, ttl, cfg.CookieSecure)
			}

			next.ServeHTTP(w, r.WithContext(session.WithID(r.Context(), sessionID)))
		})
	}
}

// Logging logs HTTP requests with timing information.
func Logging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Create a response writer wrapper to capture status code
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.statusCode).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg("http request")
		})
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error().
						Interface("panic", err).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error": "internal server error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code.
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
