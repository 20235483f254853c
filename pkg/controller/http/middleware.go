package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trackboard/pkg/domain/interfaces"
	"github.com/secmon-lab/trackboard/pkg/domain/model"
)

const (
	sessionIDCookie     = "session_id"
	sessionSecretCookie = "session_secret"
)

// Middleware provides the access gate middleware
type Middleware struct {
	authUC interfaces.Auth
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(authUC interfaces.Auth) *Middleware {
	return &Middleware{
		authUC: authUC,
	}
}

// AuthContext resolves the session cookies of every request into an
// AuthContext. Requests without a valid session get an unauthenticated one.
func (m *Middleware) AuthContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authCtx := model.NewAuthContext()

		idCookie, idErr := r.Cookie(sessionIDCookie)
		secretCookie, secretErr := r.Cookie(sessionSecretCookie)
		if idErr == nil && secretErr == nil {
			session, err := m.authUC.ValidateSession(r.Context(), idCookie.Value, secretCookie.Value)
			if err != nil {
				ctxlog.From(r.Context()).Debug("Session validation failed",
					"error", err,
					"sessionID", idCookie.Value,
				)
			} else {
				authCtx = model.NewSessionAuthContext(session)
			}
		}

		next.ServeHTTP(w, r.WithContext(model.WithAuthContext(r.Context(), authCtx)))
	})
}

// RequireAuth rejects requests that did not pass the gate. Pages redirect to
// the login form; API calls get a JSON 401.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !model.IsAuthenticated(r.Context()) {
			if strings.HasPrefix(r.URL.Path, "/api/") {
				writeError(r.Context(), w, goerr.New("unauthorized"), http.StatusUnauthorized)
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		authCtx := model.GetOrCreateAuthContext(r.Context())
		ctxlog.From(r.Context()).Debug("Authenticated request",
			"sessionID", authCtx.SessionID,
		)

		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware creates a chi-compatible logging middleware
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Embed logger from the initial context into request context
			logger := ctxlog.From(ctx)
			if reqID := middleware.GetReqID(r.Context()); reqID != "" {
				logger = logger.With("requestID", reqID)
			}
			r = r.WithContext(ctxlog.With(r.Context(), logger))

			start := time.Now()

			// Wrap response writer to capture status
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			// Process request
			next.ServeHTTP(ww, r)

			// Log request
			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.Query(),
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		})
	}
}
