package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchRequest(t *testing.T) {
	t.Run("Converts kilometres to metres", func(t *testing.T) {
		req, err := NewSearchRequest(" Springfield ", "pizza", "5")
		require.NoError(t, err)
		assert.Equal(t, SearchRequest{Address: "Springfield", Keyword: "pizza", RadiusMeters: 5000}, req)
	})

	t.Run("Zero radius is allowed", func(t *testing.T) {
		req, err := NewSearchRequest("Springfield", "pizza", "0")
		require.NoError(t, err)
		assert.Equal(t, 0, req.RadiusMeters)
	})

	tests := []struct {
		name    string
		address string
		keyword string
		radius  string
	}{
		{"Non-numeric radius", "Springfield", "pizza", "Radius (in KM)"},
		{"Fractional radius", "Springfield", "pizza", "2.5"},
		{"Negative radius", "Springfield", "pizza", "-1"},
		{"Empty radius", "Springfield", "pizza", ""},
		{"Blank address", "  ", "pizza", "5"},
		{"Blank keyword", "Springfield", "", "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSearchRequest(tt.address, tt.keyword, tt.radius)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCoordinatesString(t *testing.T) {
	assert.Equal(t, "39.1,-89.6", Coordinates{Lat: 39.1, Lng: -89.6}.String())
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "", ErrorKind(nil))
	assert.Equal(t, "invalid_input", ErrorKind(fmt.Errorf("radius: %w", ErrInvalidInput)))
	assert.Equal(t, "location_not_found", ErrorKind(ErrLocationNotFound))
	assert.Equal(t, "server_unreachable", ErrorKind(fmt.Errorf("details: %w", ErrServerUnreachable)))
	assert.Equal(t, "unknown", ErrorKind(errors.New("boom")))
}
