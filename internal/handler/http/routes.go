package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Route paths served by the mock backend.
const (
	LoginPath   = "/api/auth/login"
	ItemsPath   = "/api/items"
	VersionPath = "/api/version"
	MetricsPath = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post(LoginPath, h.login)
		r.Get(VersionPath, h.getServerVersion)
		r.Method(http.MethodGet, MetricsPath, h.metrics.handler())
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get(ItemsPath, h.listItems)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
