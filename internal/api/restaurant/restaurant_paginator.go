package restaurant

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-restaurant-finder/internal/api/places"
	"github.com/FACorreiaa/go-restaurant-finder/internal/types"
)

const (
	DefaultMaxResults = 60
	DefaultPageDelay  = 200 * time.Millisecond
)

// PlaceSearchPaginator walks the pages of a nearby search.
type PlaceSearchPaginator struct {
	client     places.Client
	pageDelay  time.Duration
	maxResults int
	logger     *slog.Logger
}

func NewPlaceSearchPaginator(client places.Client, pageDelay time.Duration, maxResults int, logger *slog.Logger) *PlaceSearchPaginator {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if pageDelay < 0 {
		pageDelay = DefaultPageDelay
	}
	return &PlaceSearchPaginator{
		client:     client,
		pageDelay:  pageDelay,
		maxResults: maxResults,
		logger:     logger,
	}
}

// Search accumulates results until maxResults is reached or the upstream stops
// handing out page tokens. The last page is kept whole, so the result may
// exceed maxResults. A failing page discards everything gathered so far.
//
// A page token only becomes valid a short while after it is issued, so every
// paged request waits pageDelay first.
func (p *PlaceSearchPaginator) Search(ctx context.Context, coords types.Coordinates, keyword string, radiusMeters int) ([]types.PlaceSummary, error) {
	ctx, span := otel.Tracer("RestaurantService").Start(ctx, "Search")
	defer span.End()

	params := places.NearbySearchParams{
		Keyword:      keyword,
		Location:     coords,
		RadiusMeters: radiusMeters,
		OpenNow:      true,
	}

	var summaries []types.PlaceSummary
	token := ""
	pages := 0
	for len(summaries) < p.maxResults {
		if token != "" {
			if err := wait(ctx, p.pageDelay); err != nil {
				span.RecordError(err)
				return nil, err
			}
		}

		page, err := p.client.NearbySearch(ctx, params, token)
		if err != nil {
			p.logger.WarnContext(ctx, "Nearby search page failed, discarding accumulated results",
				slog.Int("page", pages+1),
				slog.Int("discarded", len(summaries)),
				slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "nearby search failed")
			return nil, unreachable(fmt.Sprintf("nearby search page %d", pages+1), err)
		}
		pages++

		for _, r := range page.Results {
			summaries = append(summaries, types.PlaceSummary{PlaceID: r.PlaceID, Name: r.Name})
		}

		if page.NextPageToken == "" {
			break
		}
		token = page.NextPageToken
	}

	span.SetAttributes(attribute.Int("search.pages", pages), attribute.Int("search.results", len(summaries)))
	p.logger.DebugContext(ctx, "Nearby search finished",
		slog.Int("pages", pages),
		slog.Int("results", len(summaries)))
	return summaries, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
