package restaurant

import (
	"github.com/google/uuid"

	"github.com/FACorreiaa/go-restaurant-finder/internal/types"
)

// SearchResponse is the JSON body of a successful restaurant search.
type SearchResponse struct {
	SearchID     uuid.UUID                `json:"search_id"`
	Address      string                   `json:"address" example:"Springfield"`
	Keyword      string                   `json:"keyword" example:"pizza"`
	RadiusMeters int                      `json:"radius_meters" example:"5000"`
	Location     types.Coordinates        `json:"location"`
	Restaurants  []types.RestaurantDetail `json:"restaurants"`
	Listing      []string                 `json:"listing"` // Display lines, one per fully-populated restaurant.
}

// SearchErrorResponse is the JSON body of a failed restaurant search.
type SearchErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error" example:"Can not access the server"`
	Kind      string `json:"kind" example:"server_unreachable"`
	Title     string `json:"title" example:"Error"`
	RequestID string `json:"request_id"`
}

func newSearchResponse(result *types.SearchResult) SearchResponse {
	return SearchResponse{
		SearchID:     result.SearchID,
		Address:      result.Request.Address,
		Keyword:      result.Request.Keyword,
		RadiusMeters: result.Request.RadiusMeters,
		Location:     result.Location,
		Restaurants:  result.Restaurants,
		Listing:      FormatListing(result.Restaurants),
	}
}
