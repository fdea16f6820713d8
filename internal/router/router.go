package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	appLogger "github.com/FACorreiaa/go-restaurant-finder/app/logger"
	"github.com/FACorreiaa/go-restaurant-finder/internal/api"
	"github.com/FACorreiaa/go-restaurant-finder/internal/api/category"
	"github.com/FACorreiaa/go-restaurant-finder/internal/api/restaurant"
	_ "github.com/FACorreiaa/go-restaurant-finder/internal/docs"
)

// Config contains dependencies needed for the router setup
type Config struct {
	Logger            *slog.Logger
	RestaurantHandler *restaurant.Handler
	CategoryHandler   *category.Handler
	// Per-IP limit on searches; zero disables it.
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RequestTimeout    time.Duration
}

// SetupRouter builds the full HTTP handler: server-wide middleware, health
// check, API docs and the versioned API.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appLogger.StructuredLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.ErrorResponse(w, r, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.ErrorResponse(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", cfg.CategoryHandler.GetCategories)

		r.Group(func(r chi.Router) {
			// Every search costs several upstream calls against a metered key.
			if cfg.RateLimitRequests > 0 && cfg.RateLimitWindow > 0 {
				r.Use(httprate.LimitByIP(cfg.RateLimitRequests, cfg.RateLimitWindow))
			}
			r.Get("/restaurants", cfg.RestaurantHandler.SearchRestaurants)
		})
	})

	return r
}
