package places

import "github.com/FACorreiaa/go-restaurant-finder/internal/types"

// Wire types for the Maps web services JSON responses. Only the fields the
// finder reads are declared.

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Geometry struct {
	Location Location `json:"location"`
}

type GeocodeResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
	PlaceID          string   `json:"place_id"`
}

type GeocodeResponse struct {
	Results      []GeocodeResult `json:"results"`
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

type PlaceResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Geometry         Geometry `json:"geometry"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
	Vicinity         string   `json:"vicinity,omitempty"`
}

// NearbySearchPage is one page of a nearby search. NextPageToken is empty on
// the last page.
type NearbySearchPage struct {
	HTMLAttributions []string      `json:"html_attributions"`
	NextPageToken    string        `json:"next_page_token,omitempty"`
	Results          []PlaceResult `json:"results"`
	Status           string        `json:"status"`
	ErrorMessage     string        `json:"error_message,omitempty"`
}

type PlaceDetailsResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Name             string   `json:"name"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
}

type PlaceDetailsResponse struct {
	Result       *PlaceDetailsResult `json:"result,omitempty"`
	Status       string              `json:"status"`
	ErrorMessage string              `json:"error_message,omitempty"`
}

// NearbySearchParams are the filters sent with every page of a search.
type NearbySearchParams struct {
	Keyword      string
	Location     types.Coordinates
	RadiusMeters int
	OpenNow      bool
}
