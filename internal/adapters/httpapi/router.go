package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterOptions struct {
	// IdentityMiddleware guards the /api/locations routes. Tests may swap in
	// a stub; nil leaves the routes unguarded.
	IdentityMiddleware func(http.Handler) http.Handler
}

// NewRouter constructs the API HTTP router with the real identity middleware.
func NewRouter(s *Server) http.Handler {
	return NewRouterWithOptions(s, RouterOptions{IdentityMiddleware: NewIdentityMiddleware()})
}

func NewRouterWithOptions(s *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	// Baseline production-safe middleware (minimal but useful).
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Health endpoint is deliberately unauthenticated (used for infra checks).
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/locations", func(r chi.Router) {
		if opts.IdentityMiddleware != nil {
			r.Use(opts.IdentityMiddleware)
		}
		r.Get("/", s.handleListLocations)
		r.Post("/", s.handleSaveLocation)
		r.Delete("/{id}", s.handleDeleteLocation)
	})

	return r
}
