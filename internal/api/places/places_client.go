package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-restaurant-finder/app/observability/metrics"
	"github.com/FACorreiaa/go-restaurant-finder/config"
	"github.com/FACorreiaa/go-restaurant-finder/internal/types"
)

var _ Client = (*HTTPClient)(nil)

// Client is the upstream Maps web services contract the finder depends on.
// Every call is a single attempt; failures wrap types.ErrServerUnreachable.
type Client interface {
	Geocode(ctx context.Context, address string) ([]GeocodeResult, error)
	NearbySearch(ctx context.Context, params NearbySearchParams, pageToken string) (*NearbySearchPage, error)
	// PlaceDetails returns a nil result when the upstream has no payload for placeID.
	PlaceDetails(ctx context.Context, placeID string, fields []string) (*PlaceDetailsResult, error)
}

type HTTPClient struct {
	apiKey          string
	geocodeURL      string
	nearbySearchURL string
	detailsURL      string
	httpClient      *http.Client
	logger          *slog.Logger
}

func NewHTTPClient(cfg config.PlacesConfig, logger *slog.Logger) *HTTPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		apiKey:          cfg.APIKey,
		geocodeURL:      cfg.GeocodeURL,
		nearbySearchURL: cfg.NearbySearchURL,
		detailsURL:      cfg.DetailsURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

func (c *HTTPClient) Geocode(ctx context.Context, address string) ([]GeocodeResult, error) {
	ctx, span := otel.Tracer("PlacesClient").Start(ctx, "Geocode")
	defer span.End()

	params := url.Values{}
	params.Set("address", address)

	var resp GeocodeResponse
	if err := c.doRequest(ctx, "geocode", c.geocodeURL, params, &resp); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "geocode request failed")
		return nil, err
	}
	if err := checkStatus("geocode", resp.Status, resp.ErrorMessage); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "geocode rejected")
		return nil, err
	}

	span.SetAttributes(attribute.Int("geocode.results", len(resp.Results)))
	return resp.Results, nil
}

func (c *HTTPClient) NearbySearch(ctx context.Context, p NearbySearchParams, pageToken string) (*NearbySearchPage, error) {
	ctx, span := otel.Tracer("PlacesClient").Start(ctx, "NearbySearch", trace.WithAttributes(
		attribute.String("search.keyword", p.Keyword),
		attribute.Int("search.radius_meters", p.RadiusMeters),
		attribute.Bool("search.paged", pageToken != ""),
	))
	defer span.End()

	params := url.Values{}
	params.Set("keyword", p.Keyword)
	params.Set("location", p.Location.String())
	params.Set("opennow", strconv.FormatBool(p.OpenNow))
	params.Set("radius", strconv.Itoa(p.RadiusMeters))
	if pageToken != "" {
		params.Set("pagetoken", pageToken)
	}

	var page NearbySearchPage
	if err := c.doRequest(ctx, "nearbysearch", c.nearbySearchURL, params, &page); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "nearby search request failed")
		return nil, err
	}
	if pageToken != "" && page.Status == "INVALID_REQUEST" {
		// A token that is not valid (yet) ends the listing; earlier pages stand.
		c.logger.WarnContext(ctx, "Page token rejected, treating as last page",
			slog.String("error_message", page.ErrorMessage))
		span.SetAttributes(attribute.Bool("search.token_rejected", true))
		return &NearbySearchPage{Status: page.Status}, nil
	}
	if err := checkStatus("nearbysearch", page.Status, page.ErrorMessage); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "nearby search rejected")
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("search.page_results", len(page.Results)),
		attribute.Bool("search.has_next_page", page.NextPageToken != ""),
	)
	return &page, nil
}

func (c *HTTPClient) PlaceDetails(ctx context.Context, placeID string, fields []string) (*PlaceDetailsResult, error) {
	ctx, span := otel.Tracer("PlacesClient").Start(ctx, "PlaceDetails", trace.WithAttributes(
		attribute.String("place.id", placeID),
	))
	defer span.End()

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", strings.Join(fields, ","))

	var resp PlaceDetailsResponse
	if err := c.doRequest(ctx, "details", c.detailsURL, params, &resp); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "details request failed")
		return nil, err
	}
	if isFatalStatus(resp.Status) {
		err := statusError("details", resp.Status, resp.ErrorMessage)
		span.RecordError(err)
		span.SetStatus(codes.Error, "details rejected")
		return nil, err
	}
	if resp.Result == nil && resp.Status != "" && resp.Status != "OK" {
		c.logger.DebugContext(ctx, "Details returned no payload",
			slog.String("place_id", placeID),
			slog.String("status", resp.Status))
	}

	span.SetAttributes(attribute.Bool("place.has_result", resp.Result != nil))
	return resp.Result, nil
}

// doRequest issues one GET against endpoint and decodes the JSON body into v.
// The API key is added here so it never appears in callers' params or logs.
func (c *HTTPClient) doRequest(ctx context.Context, op, endpoint string, params url.Values, v any) (err error) {
	start := time.Now()
	outcome := "ok"
	defer func() {
		if err != nil && outcome == "ok" {
			outcome = "error"
		}
		m := metrics.Get()
		attrs := metric.WithAttributes(
			attribute.String("operation", op),
			attribute.String("outcome", outcome),
		)
		m.UpstreamRequestsTotal.Add(ctx, 1, attrs)
		m.UpstreamDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
	}()

	q := url.Values{}
	for k, vs := range params {
		q[k] = vs
	}
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: building %s request: %w", types.ErrServerUnreachable, op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		outcome = "transport_error"
		c.logger.WarnContext(ctx, "Upstream request failed",
			slog.String("operation", op), slog.Any("error", err))
		return fmt.Errorf("%w: %s request: %w", types.ErrServerUnreachable, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = "http_" + strconv.Itoa(resp.StatusCode)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.WarnContext(ctx, "Upstream returned non-2xx status",
			slog.String("operation", op),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))
		return fmt.Errorf("%w: %s returned status %d", types.ErrServerUnreachable, op, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		outcome = "decode_error"
		return fmt.Errorf("%w: decoding %s response: %w", types.ErrServerUnreachable, op, err)
	}

	c.logger.DebugContext(ctx, "Upstream request completed",
		slog.String("operation", op),
		slog.Duration("latency", time.Since(start)))
	return nil
}

// checkStatus maps the upstream body status onto the error taxonomy. Any
// status other than a successful one is treated as an unreachable server.
func checkStatus(op, status, message string) error {
	switch status {
	case "", "OK", "ZERO_RESULTS":
		return nil
	}
	return statusError(op, status, message)
}

// isFatalStatus reports whether status means no further call can succeed
// (rejected key or exhausted quota).
func isFatalStatus(status string) bool {
	return status == "REQUEST_DENIED" || status == "OVER_QUERY_LIMIT"
}

func statusError(op, status, message string) error {
	if message != "" {
		return fmt.Errorf("%w: %s status %s: %s", types.ErrServerUnreachable, op, status, message)
	}
	return fmt.Errorf("%w: %s status %s", types.ErrServerUnreachable, op, status)
}
