package category

import (
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-restaurant-finder/internal/api"
)

// Handler serves the category catalogue the client renders as its button grid.
type Handler struct {
	logger     *slog.Logger
	categories []string
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// NewHandler keeps the configured order, dropping blanks and repeats.
func NewHandler(categories []string, logger *slog.Logger) *Handler {
	seen := make(map[string]bool, len(categories))
	cleaned := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		key := strings.ToLower(c)
		if c == "" || seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, c)
	}
	return &Handler{logger: logger, categories: cleaned}
}

// GetCategories godoc
// @Summary      List search categories
// @Description  Returns the cuisine and place keywords offered to the user, in display order.
// @Tags         Categories
// @Produce      json
// @Success      200  {object}  CategoriesResponse
// @Router       /categories [get]
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CategoryHandler").Start(r.Context(), "GetCategories")
	defer span.End()

	h.logger.DebugContext(ctx, "Returning categories", slog.Int("count", len(h.categories)))
	span.SetStatus(codes.Ok, "Categories returned")
	api.WriteJSONResponse(w, r, http.StatusOK, CategoriesResponse{Categories: h.categories})
}
