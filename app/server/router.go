package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/urbankicks/storefront/app/catalog"
	"github.com/urbankicks/storefront/app/filters"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Config  *Config
	Catalog *catalog.CatalogHandler
	Filters *filters.FiltersHandler
}

// NewRouter constructs the chi.Router with storefront defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	limit := 120
	if params.Config != nil && params.Config.RateLimitPerMinute > 0 {
		limit = params.Config.RateLimitPerMinute
	}
	r.Use(httprate.LimitByIP(limit, time.Minute))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", params.Catalog.HandleList)
		r.Get("/products/{id}", params.Catalog.HandleGetProduct)
		r.Get("/products/{id}/reviews", params.Catalog.HandleGetReviews)
		r.Get("/products/{id}/recommendations", params.Catalog.HandleGetRecommended)
		r.Get("/filters", params.Filters.HandleGetAll)
	})

	return r
}
