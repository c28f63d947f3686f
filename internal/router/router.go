package router

import (
	"net/http"

	"github.com/jayramanidev/portfolio/internal/config"
	"github.com/jayramanidev/portfolio/internal/handler"
	"github.com/jayramanidev/portfolio/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	products *handler.ProductHandler,
	carts *handler.CartHandler,
	checkout *handler.CheckoutHandler,
	weather *handler.WeatherHandler,
	contact *handler.ContactHandler,
	sessionCfg config.SessionConfig,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.Session(sessionCfg, logger))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", products.GetAll)
		r.Get("/products/{productID}", products.GetByID)

		r.Post("/cart", carts.Action)
		r.Get("/cart/view", carts.View)

		r.Post("/checkout", checkout.Place)

		r.Get("/weather", weather.Get)

		r.Post("/contact", contact.Submit)
	})

	return r
}
