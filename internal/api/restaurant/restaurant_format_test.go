package restaurant

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-restaurant-finder/internal/types"
)

func TestFormatListing(t *testing.T) {
	restaurants := []types.RestaurantDetail{
		{Name: "Luigi's", Rating: ptr(4.5), UserRatingsTotal: ptr(120)},
		{Name: "Unrated", UserRatingsTotal: ptr(3)},
		{Name: "Whole", Rating: ptr(4.0), UserRatingsTotal: ptr(9)},
		{Rating: ptr(5.0), UserRatingsTotal: ptr(1)},
		{Name: "No votes", Rating: ptr(2.5)},
	}

	assert.Equal(t, []string{
		"Luigi's - rating: 4.5 - votes: 120",
		"Whole - rating: 4 - votes: 9",
	}, FormatListing(restaurants))

	assert.Empty(t, FormatListing(nil))
}

func TestUserMessage(t *testing.T) {
	seen := map[string]bool{}
	for _, err := range []error{
		fmt.Errorf("radius: %w", types.ErrInvalidInput),
		types.ErrLocationNotFound,
		fmt.Errorf("details: %w", types.ErrServerUnreachable),
	} {
		title, message := UserMessage(err)
		assert.NotEmpty(t, title)
		assert.False(t, seen[message], "messages must be distinct per error kind")
		seen[message] = true
	}

	title, message := UserMessage(errors.New("boom"))
	assert.Equal(t, "Error", title)
	assert.Equal(t, "Something went wrong", message)
}
