package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/FACorreiaa/go-restaurant-finder/config"
	"github.com/FACorreiaa/go-restaurant-finder/internal/api/places"
	"github.com/FACorreiaa/go-restaurant-finder/internal/api/restaurant"
	"github.com/FACorreiaa/go-restaurant-finder/internal/types"
)

// memoryMaps serves three full pages from memory.
type memoryMaps struct{}

func (memoryMaps) Geocode(context.Context, string) ([]places.GeocodeResult, error) {
	return []places.GeocodeResult{{Geometry: places.Geometry{Location: places.Location{Lat: 39.1, Lng: -89.6}}}}, nil
}

func (memoryMaps) NearbySearch(_ context.Context, _ places.NearbySearchParams, token string) (*places.NearbySearchPage, error) {
	next := map[string]string{"": "b", "b": "c", "c": ""}[token]
	page := &places.NearbySearchPage{Status: "OK", NextPageToken: next}
	for i := 0; i < 20; i++ {
		page.Results = append(page.Results, places.PlaceResult{PlaceID: fmt.Sprintf("%s-%d", token, i)})
	}
	return page, nil
}

func (memoryMaps) PlaceDetails(_ context.Context, placeID string, _ []string) (*places.PlaceDetailsResult, error) {
	rating, votes := 4.2, 100
	return &places.PlaceDetailsResult{Name: placeID, Rating: &rating, UserRatingsTotal: &votes}, nil
}

func BenchmarkFindRestaurants(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := restaurant.NewServiceImpl(memoryMaps{}, config.PlacesConfig{MaxResults: 60}, logger)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := svc.FindRestaurants(ctx, "Springfield", "pizza", "5")
		if err != nil || len(res) != 60 {
			b.Fatalf("unexpected result: %d restaurants, err=%v", len(res), err)
		}
	}
}

func BenchmarkFormatListing(b *testing.B) {
	rating, votes := 4.2, 100
	restaurants := make([]types.RestaurantDetail, 60)
	for i := range restaurants {
		restaurants[i] = types.RestaurantDetail{Name: fmt.Sprintf("Place %d", i), Rating: &rating, UserRatingsTotal: &votes}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = restaurant.FormatListing(restaurants)
	}
}
