package container

import (
	"log/slog"
	"net/http"

	"github.com/FACorreiaa/go-restaurant-finder/config"
	"github.com/FACorreiaa/go-restaurant-finder/internal/api/category"
	"github.com/FACorreiaa/go-restaurant-finder/internal/api/places"
	"github.com/FACorreiaa/go-restaurant-finder/internal/api/restaurant"
	"github.com/FACorreiaa/go-restaurant-finder/internal/router"
)

// Container holds all application dependencies
type Container struct {
	Config            *config.Config
	Logger            *slog.Logger
	PlacesClient      places.Client
	RestaurantService restaurant.Service
	RestaurantHandler *restaurant.Handler
	CategoryHandler   *category.Handler
}

// NewContainer wires the upstream client, the finder service and the HTTP
// handlers. The API key travels inside cfg; nothing is read from globals.
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Places.APIKey == "" {
		logger.Warn("No Maps API key configured, upstream calls will be denied")
	}

	placesClient := places.NewHTTPClient(cfg.Places, logger)
	return NewContainerWithClient(cfg, logger, placesClient), nil
}

// NewContainerWithClient wires everything on top of an existing places client.
func NewContainerWithClient(cfg *config.Config, logger *slog.Logger, client places.Client) *Container {
	restaurantService := restaurant.NewServiceImpl(client, cfg.Places, logger)

	return &Container{
		Config:            cfg,
		Logger:            logger,
		PlacesClient:      client,
		RestaurantService: restaurantService,
		RestaurantHandler: restaurant.NewHandler(restaurantService, logger),
		CategoryHandler:   category.NewHandler(cfg.Categories, logger),
	}
}

// Router returns the application's HTTP handler.
func (c *Container) Router() http.Handler {
	return router.SetupRouter(&router.Config{
		Logger:            c.Logger,
		RestaurantHandler: c.RestaurantHandler,
		CategoryHandler:   c.CategoryHandler,
		RateLimitRequests: c.Config.RateLimit.Requests,
		RateLimitWindow:   c.Config.RateLimit.Window,
		RequestTimeout:    c.Config.Server.Timeout,
	})
}
