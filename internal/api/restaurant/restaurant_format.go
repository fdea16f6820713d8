package restaurant

import (
	"context"
	"errors"
	"fmt"

	"github.com/FACorreiaa/go-restaurant-finder/internal/types"
)

// FormatListing renders one "<name> - rating: <r> - votes: <n>" line per
// restaurant. Restaurants missing any of the three fields are left out.
func FormatListing(restaurants []types.RestaurantDetail) []string {
	lines := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		if r.Name == "" || r.Rating == nil || r.UserRatingsTotal == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s - rating: %g - votes: %d", r.Name, *r.Rating, *r.UserRatingsTotal))
	}
	return lines
}

// UserMessage maps a search error to the title and message shown to the user.
func UserMessage(err error) (title, message string) {
	switch {
	case errors.Is(err, types.ErrInvalidInput):
		return "Wrong distance", "Please provide correct number in distance box"
	case errors.Is(err, types.ErrLocationNotFound):
		return "Wrong city error", "No results for passed city."
	case errors.Is(err, context.DeadlineExceeded):
		return "Error", "The search took too long"
	case errors.Is(err, types.ErrServerUnreachable):
		return "Error", "Can not access the server"
	default:
		return "Error", "Something went wrong"
	}
}
