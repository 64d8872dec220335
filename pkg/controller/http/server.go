package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/issuepulse/issuepulse/pkg/domain/model"
	"github.com/issuepulse/issuepulse/pkg/domain/types"
	"github.com/issuepulse/issuepulse/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server exposing the dashboard query
// contract consumed by the frontend
func NewServer(
	ctx context.Context,
	addr string,
	authUC *usecase.Auth,
	dashboardUC *usecase.Dashboard,
) (*Server, error) {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	authHandler := NewAuthHandler(authUC)
	dashboardHandler := NewDashboardHandler(dashboardUC)

	// Health check
	router.Get("/health", handleHealth)

	// API routes; credentials travel in the request body, never in
	// ambient server state
	router.Route("/api/jira", func(r chi.Router) {
		r.Post("/auth", authHandler.HandleAuth)
		r.Post("/test-connection", authHandler.HandleTestConnection)
		r.Post("/projects", authHandler.HandleProjects)
		r.Post("/issues", dashboardHandler.HandleIssues)
		r.Post("/my-issues", dashboardHandler.HandleMyIssues)
	})

	// The dashboard UI is served separately; keep a plain landing page
	router.Get("/*", handleFallbackHome)

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
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "issuepulse",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

// handleFallbackHome handles the root path when no frontend is deployed
func handleFallbackHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>IssuePulse</title></head>
<body>
    <h1>IssuePulse</h1>
    <p>Jira KPI dashboard service. API lives under /api/jira.</p>
</body>
</html>`)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write fallback home page", "error", err)
	}
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// errorResponse is the failure payload; clients branch on the error code,
// never on the details prose
type errorResponse struct {
	Success bool            `json:"success"`
	Error   types.ErrorCode `json:"error"`
	Details string          `json:"details,omitempty"`
}

// writeError maps the error taxonomy onto an HTTP status and a
// machine-readable code
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, r, httpStatusOf(err), errorResponse{
		Success: false,
		Error:   model.CodeOf(err),
		Details: err.Error(),
	})
}

func httpStatusOf(err error) int {
	switch {
	case goerr.HasTag(err, model.ErrTagConfig):
		return http.StatusBadRequest
	case goerr.HasTag(err, model.ErrTagAuth):
		return http.StatusUnauthorized
	case goerr.HasTag(err, model.ErrTagTransport):
		return http.StatusBadGateway
	case goerr.HasTag(err, model.ErrTagUpstream):
		if status := model.StatusOf(err); status >= 400 {
			return status
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
