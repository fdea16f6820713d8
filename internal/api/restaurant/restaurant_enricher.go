package restaurant

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-restaurant-finder/internal/api/places"
	"github.com/FACorreiaa/go-restaurant-finder/internal/types"
)

var DefaultDetailFields = []string{"formatted_address", "name", "rating", "user_ratings_total"}

// DetailEnricher fetches the displayed fields for each search hit.
type DetailEnricher struct {
	client places.Client
	fields []string
	logger *slog.Logger
}

func NewDetailEnricher(client places.Client, fields []string, logger *slog.Logger) *DetailEnricher {
	if len(fields) == 0 {
		fields = DefaultDetailFields
	}
	return &DetailEnricher{client: client, fields: fields, logger: logger}
}

// Enrich looks up details one place at a time, in input order. A place without
// a result payload is skipped. Any failed lookup fails the whole batch.
func (e *DetailEnricher) Enrich(ctx context.Context, summaries []types.PlaceSummary) ([]types.RestaurantDetail, error) {
	ctx, span := otel.Tracer("RestaurantService").Start(ctx, "Enrich")
	defer span.End()

	restaurants := make([]types.RestaurantDetail, 0, len(summaries))
	skipped := 0
	for _, s := range summaries {
		res, err := e.client.PlaceDetails(ctx, s.PlaceID, e.fields)
		if err != nil {
			e.logger.WarnContext(ctx, "Place details failed, aborting enrichment",
				slog.String("place_id", s.PlaceID),
				slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "place details failed")
			return nil, unreachable(fmt.Sprintf("details for %s", s.PlaceID), err)
		}
		if res == nil {
			skipped++
			e.logger.DebugContext(ctx, "Place details had no result, skipping", slog.String("place_id", s.PlaceID))
			continue
		}

		restaurants = append(restaurants, types.RestaurantDetail{
			FormattedAddress: res.FormattedAddress,
			Name:             res.Name,
			Rating:           res.Rating,
			UserRatingsTotal: res.UserRatingsTotal,
		})
	}

	span.SetAttributes(attribute.Int("enrich.results", len(restaurants)), attribute.Int("enrich.skipped", skipped))
	return restaurants, nil
}
