package restaurant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-restaurant-finder/internal/api/places"
	"github.com/FACorreiaa/go-restaurant-finder/internal/types"
)

// LocationResolver turns a free-text place name into coordinates.
type LocationResolver struct {
	client places.Client
	logger *slog.Logger
}

func NewLocationResolver(client places.Client, logger *slog.Logger) *LocationResolver {
	return &LocationResolver{client: client, logger: logger}
}

// Resolve issues exactly one geocode request and returns the first result.
func (r *LocationResolver) Resolve(ctx context.Context, address string) (types.Coordinates, error) {
	ctx, span := otel.Tracer("RestaurantService").Start(ctx, "Resolve")
	defer span.End()

	results, err := r.client.Geocode(ctx, address)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "geocode failed")
		return types.Coordinates{}, unreachable("geocode", err)
	}
	if len(results) == 0 {
		r.logger.InfoContext(ctx, "No geocode results", slog.String("address", address))
		span.SetStatus(codes.Error, "location not found")
		return types.Coordinates{}, fmt.Errorf("%w: %q", types.ErrLocationNotFound, address)
	}

	loc := results[0].Geometry.Location
	span.SetAttributes(attribute.Float64("location.lat", loc.Lat), attribute.Float64("location.lng", loc.Lng))
	return types.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// unreachable makes sure an upstream failure carries ErrServerUnreachable,
// whatever Client implementation produced it.
func unreachable(op string, err error) error {
	if errors.Is(err, types.ErrServerUnreachable) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, types.ErrServerUnreachable, err)
}
