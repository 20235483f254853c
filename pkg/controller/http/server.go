package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/trackboard/frontend"
	"github.com/secmon-lab/trackboard/pkg/domain/interfaces"
	"github.com/secmon-lab/trackboard/pkg/utils/apperr"
)

// UseCases bundles the use cases served over HTTP
type UseCases struct {
	auth      interfaces.Auth
	dashboard interfaces.Dashboard
	report    interfaces.Report
}

// NewUseCases creates a new UseCases. report may be nil when Slack is not
// configured.
func NewUseCases(auth interfaces.Auth, dashboard interfaces.Dashboard, report interfaces.Report) *UseCases {
	return &UseCases{
		auth:      auth,
		dashboard: dashboard,
		report:    report,
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, useCases *UseCases, frontendURL string) (*Server, error) {
	if useCases == nil || useCases.auth == nil || useCases.dashboard == nil {
		return nil, goerr.New("auth and dashboard use cases are required")
	}

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	gate := NewMiddleware(useCases.auth)

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(gate.AuthContext)
	router.Use(middleware.Recoverer)

	authHandler := NewAuthHandler(useCases.auth, renderer)
	dashboardHandler := NewDashboardHandler(useCases.dashboard, useCases.report, renderer, frontendURL)

	// Health check
	router.Get("/health", handleHealth)

	// Access gate
	router.Get("/login", authHandler.HandleLoginPage)
	router.Post("/login", authHandler.HandleLogin)
	router.Post("/logout", authHandler.HandleLogout)

	// Static assets are public so that the login page is styled
	if fs, err := frontend.GetHTTPFS(); err != nil {
		ctxlog.From(ctx).Warn("Static assets are not available", "error", err)
	} else {
		router.Handle("/static/*", http.StripPrefix("/static", NewStaticHandler(fs)))
	}

	// Dashboard (protected)
	router.Group(func(r chi.Router) {
		r.Use(gate.RequireAuth)
		r.Get("/", dashboardHandler.HandleIndex)

		r.Route("/api", func(r chi.Router) {
			r.Get("/dashboard", dashboardHandler.HandleAPIDashboard)
			r.Get("/sources/{id}", dashboardHandler.HandleAPISource)
			r.Post("/report/slack", dashboardHandler.HandleReport)
		})
	})

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "trackboard",
	})
}

// writeJSON writes a JSON response
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response. Server side failures are also
// reported through apperr.
func writeError(ctx context.Context, w http.ResponseWriter, err error, status int) {
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		apperr.Handle(ctx, err)
	}

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	writeJSON(ctx, w, status, map[string]string{
		"error": message,
	})
}
