package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// SearchRequest is one user search: where, what and how far.
type SearchRequest struct {
	Address      string `json:"address"`
	Keyword      string `json:"keyword"`
	RadiusMeters int    `json:"radius_meters"`
}

// NewSearchRequest builds a SearchRequest from raw user input. The radius is a
// whole number of kilometres and is stored in metres.
func NewSearchRequest(address, keyword, radiusKm string) (SearchRequest, error) {
	address = strings.TrimSpace(address)
	keyword = strings.TrimSpace(keyword)
	if address == "" {
		return SearchRequest{}, fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if keyword == "" {
		return SearchRequest{}, fmt.Errorf("%w: keyword is required", ErrInvalidInput)
	}

	km, err := strconv.Atoi(strings.TrimSpace(radiusKm))
	if err != nil {
		return SearchRequest{}, fmt.Errorf("%w: radius %q is not a number", ErrInvalidInput, radiusKm)
	}
	if km < 0 {
		return SearchRequest{}, fmt.Errorf("%w: radius %d must not be negative", ErrInvalidInput, km)
	}

	return SearchRequest{
		Address:      address,
		Keyword:      keyword,
		RadiusMeters: km * 1000,
	}, nil
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String renders the coordinates the way the upstream location parameter expects.
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// PlaceSummary is a raw nearby-search hit. Only PlaceID is relied upon.
type PlaceSummary struct {
	PlaceID string `json:"place_id"`
	Name    string `json:"name,omitempty"`
}

// RestaurantDetail is what gets shown to the user. Rating and UserRatingsTotal
// are nil when the upstream omits them.
type RestaurantDetail struct {
	FormattedAddress string   `json:"formatted_address"`
	Name             string   `json:"name"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
}

type SearchResult struct {
	SearchID    uuid.UUID          `json:"search_id"`
	Request     SearchRequest      `json:"request"`
	Location    Coordinates        `json:"location"`
	Restaurants []RestaurantDetail `json:"restaurants"`
}
