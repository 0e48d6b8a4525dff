package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the hosting router: the MCP streamable endpoint mounted at
// /mcp and a plain liveness probe at /healthz.
func NewRouter(mcpHandler http.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Handle("/mcp", mcpHandler)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return router
}
