package router

import (
	"net/http"

	"product-catalog/internal/auth"
	"product-catalog/internal/handler"
	"product-catalog/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
// Authentication is required on exactly the mutating product routes;
// every read route is open.
func New(
	productHandler *handler.ProductHandler,
	verifier auth.Verifier,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	// Health check endpoint (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	requireAuth := middleware.RequireAuth(verifier, logger)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.GetAll)
		r.Get("/search", productHandler.Search)
		r.Get("/categories", productHandler.Categories)
		r.Get("/category/{category}", productHandler.GetByCategory)
		r.Get("/sorted/{criteria}", productHandler.GetSorted)
		r.Get("/cart/{ids}", productHandler.GetCart)
		r.Get("/{id}", productHandler.GetByID)

		r.With(requireAuth).Post("/", productHandler.Create)
		r.With(requireAuth).Put("/{id}", productHandler.Update)
		r.With(requireAuth).Delete("/{id}", productHandler.Delete)
		r.With(requireAuth).Put("/{id}/discount", productHandler.SetDiscount)
	})

	return r
}
