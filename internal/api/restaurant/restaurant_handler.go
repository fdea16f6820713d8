package restaurant

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-restaurant-finder/internal/api"
	"github.com/FACorreiaa/go-restaurant-finder/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// SearchRestaurants godoc
// @Summary      Search nearby restaurants
// @Description  Geocodes the address, pages through open places matching the keyword within the radius and returns their details.
// @Tags         Restaurants
// @Produce      json
// @Param        address  query     string  true  "City or address"
// @Param        keyword  query     string  true  "Cuisine or place category"
// @Param        radius   query     string  true  "Search radius in whole kilometres"
// @Success      200      {object}  SearchResponse
// @Failure      400      {object}  SearchErrorResponse  "Invalid radius, address or keyword"
// @Failure      404      {object}  SearchErrorResponse  "Location not found"
// @Failure      500      {object}  SearchErrorResponse  "Unexpected error"
// @Failure      502      {object}  SearchErrorResponse  "Upstream unreachable"
// @Failure      504      {object}  SearchErrorResponse  "Search took too long"
// @Router       /restaurants [get]
func (h *Handler) SearchRestaurants(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RestaurantHandler").Start(r.Context(), "SearchRestaurants", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/restaurants"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SearchRestaurants"))

	q := r.URL.Query()
	req, err := types.NewSearchRequest(q.Get("address"), q.Get("keyword"), q.Get("radius"))
	if err != nil {
		l.InfoContext(ctx, "Rejected search input", slog.Any("error", err))
		span.SetStatus(codes.Error, "invalid input")
		h.writeSearchError(w, r, err)
		return
	}

	result, err := h.service.Find(ctx, req)
	if err != nil {
		l.ErrorContext(ctx, "Restaurant search failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, types.ErrorKind(err))
		h.writeSearchError(w, r, err)
		return
	}

	span.SetAttributes(attribute.Int("restaurants.count", len(result.Restaurants)))
	span.SetStatus(codes.Ok, "Restaurants returned")
	api.WriteJSONResponse(w, r, http.StatusOK, newSearchResponse(result))
}

func (h *Handler) writeSearchError(w http.ResponseWriter, r *http.Request, err error) {
	title, message := UserMessage(err)
	api.WriteJSONResponse(w, r, statusFor(err), SearchErrorResponse{
		Success:   false,
		Error:     message,
		Kind:      types.ErrorKind(err),
		Title:     title,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrLocationNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, types.ErrServerUnreachable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
