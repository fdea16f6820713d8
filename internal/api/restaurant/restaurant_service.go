package restaurant

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-restaurant-finder/app/observability/metrics"
	"github.com/FACorreiaa/go-restaurant-finder/config"
	"github.com/FACorreiaa/go-restaurant-finder/internal/api/places"
	"github.com/FACorreiaa/go-restaurant-finder/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service is the restaurant search contract used by the presentation adapters.
type Service interface {
	// FindRestaurants validates raw user input (radius in kilometres) and runs a search.
	FindRestaurants(ctx context.Context, address, keyword, radiusKm string) ([]types.RestaurantDetail, error)
	Find(ctx context.Context, req types.SearchRequest) (*types.SearchResult, error)
}

// ServiceImpl runs geocode, paginated search and detail enrichment strictly in
// sequence. It holds no per-search state, so concurrent searches are independent.
type ServiceImpl struct {
	logger     *slog.Logger
	resolver   *LocationResolver
	paginator  *PlaceSearchPaginator
	enricher   *DetailEnricher
	maxResults int
}

func NewServiceImpl(client places.Client, cfg config.PlacesConfig, logger *slog.Logger) *ServiceImpl {
	paginator := NewPlaceSearchPaginator(client, cfg.PageDelay, cfg.MaxResults, logger)
	return &ServiceImpl{
		logger:     logger,
		resolver:   NewLocationResolver(client, logger),
		paginator:  paginator,
		enricher:   NewDetailEnricher(client, cfg.DetailFields, logger),
		maxResults: paginator.maxResults,
	}
}

func (s *ServiceImpl) FindRestaurants(ctx context.Context, address, keyword, radiusKm string) ([]types.RestaurantDetail, error) {
	req, err := types.NewSearchRequest(address, keyword, radiusKm)
	if err != nil {
		s.recordSearch(ctx, time.Now(), 0, err)
		return nil, err
	}
	result, err := s.Find(ctx, req)
	if err != nil {
		return nil, err
	}
	return result.Restaurants, nil
}

func (s *ServiceImpl) Find(ctx context.Context, req types.SearchRequest) (result *types.SearchResult, err error) {
	searchID := uuid.New()
	ctx, span := otel.Tracer("RestaurantService").Start(ctx, "Find", trace.WithAttributes(
		attribute.String("search.id", searchID.String()),
		attribute.String("search.keyword", req.Keyword),
		attribute.Int("search.radius_meters", req.RadiusMeters),
	))
	defer span.End()

	start := time.Now()
	l := s.logger.With(slog.String("method", "Find"), slog.String("search_id", searchID.String()))
	defer func() {
		n := 0
		if result != nil {
			n = len(result.Restaurants)
		}
		s.recordSearch(ctx, start, n, err)
	}()

	if req.Address == "" || req.Keyword == "" || req.RadiusMeters < 0 {
		err = fmt.Errorf("%w: address, keyword and a non-negative radius are required", types.ErrInvalidInput)
		span.SetStatus(codes.Error, "invalid input")
		return nil, err
	}

	l.InfoContext(ctx, "Searching restaurants",
		slog.String("address", req.Address),
		slog.String("keyword", req.Keyword),
		slog.Int("radius_meters", req.RadiusMeters))

	coords, err := s.resolver.Resolve(ctx, req.Address)
	if err != nil {
		l.WarnContext(ctx, "Location resolution failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, types.ErrorKind(err))
		return nil, err
	}

	summaries, err := s.paginator.Search(ctx, coords, req.Keyword, req.RadiusMeters)
	if err != nil {
		l.WarnContext(ctx, "Nearby search failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, types.ErrorKind(err))
		return nil, err
	}

	restaurants, err := s.enricher.Enrich(ctx, uniquePlaces(summaries, s.maxResults))
	if err != nil {
		l.WarnContext(ctx, "Detail enrichment failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, types.ErrorKind(err))
		return nil, err
	}

	l.InfoContext(ctx, "Search completed",
		slog.Int("summaries", len(summaries)),
		slog.Int("restaurants", len(restaurants)),
		slog.Duration("latency", time.Since(start)))
	span.SetStatus(codes.Ok, "Restaurants found")

	return &types.SearchResult{
		SearchID:    searchID,
		Request:     req,
		Location:    coords,
		Restaurants: restaurants,
	}, nil
}

// uniquePlaces drops summaries without a place id and repeated place ids,
// keeping the first occurrence, and caps the list at limit.
func uniquePlaces(summaries []types.PlaceSummary, limit int) []types.PlaceSummary {
	seen := make(map[string]struct{}, len(summaries))
	out := make([]types.PlaceSummary, 0, min(len(summaries), limit))
	for _, s := range summaries {
		if len(out) == limit {
			break
		}
		if s.PlaceID == "" {
			continue
		}
		if _, ok := seen[s.PlaceID]; ok {
			continue
		}
		seen[s.PlaceID] = struct{}{}
		out = append(out, s)
	}
	return out
}

func (s *ServiceImpl) recordSearch(ctx context.Context, start time.Time, results int, err error) {
	outcome := "ok"
	if err != nil {
		outcome = types.ErrorKind(err)
	}
	m := metrics.Get()
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.SearchesTotal.Add(ctx, 1, attrs)
	m.SearchDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
	if err == nil {
		m.SearchResultsCount.Record(ctx, int64(results))
	}
}
