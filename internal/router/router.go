package router

import (
	"net/http"

	"jewelstore/internal/handler"
	"jewelstore/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	diagHandler *handler.DiagHandler,
	productHandler *handler.ProductHandler,
	checkoutHandler *handler.CheckoutHandler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))

	// The storefront is served from a separate origin; the API is public.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/", diagHandler.Root)
	r.Get("/test", diagHandler.Test)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", productHandler.List)
		r.Get("/products/{id}", productHandler.GetByID)
		r.Post("/checkout", checkoutHandler.Create)
	})

	return r
}
