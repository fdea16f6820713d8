package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/FACorreiaa/go-restaurant-finder/config"
	"github.com/FACorreiaa/go-restaurant-finder/internal/api/restaurant"
	"github.com/FACorreiaa/go-restaurant-finder/internal/container"
)

// fakeMaps imitates the geocode, nearby search and details web services.
// Springfield has 25 open pizza places over two pages; p-3 has since closed
// and p-7 has never been rated.
type fakeMaps struct {
	t           *testing.T
	detailCalls atomic.Int64
	searchCalls atomic.Int64
}

func (f *fakeMaps) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("key") != "e2e-key" {
		_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","results":[]}`))
		return
	}

	switch r.URL.Path {
	case "/geocode/json":
		if q.Get("address") != "Springfield" {
			_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":39.1,"lng":-89.6}}}]}`))

	case "/place/nearbysearch/json":
		f.searchCalls.Add(1)
		if q.Get("keyword") == "broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		assert.Equal(f.t, "true", q.Get("opennow"))
		from, to, next := 0, 20, "page-2"
		if q.Get("pagetoken") == "page-2" {
			from, to, next = 20, 25, ""
		}
		results := make([]map[string]string, 0, to-from)
		for i := from; i < to; i++ {
			results = append(results, map[string]string{"place_id": fmt.Sprintf("p-%d", i), "name": fmt.Sprintf("Place %d", i)})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "OK", "results": results, "next_page_token": next})

	case "/place/details/json":
		f.detailCalls.Add(1)
		id := q.Get("place_id")
		n, _ := strconv.Atoi(strings.TrimPrefix(id, "p-"))
		switch id {
		case "p-3":
			_, _ = w.Write([]byte(`{"status":"NOT_FOUND"}`))
		case "p-7":
			fmt.Fprintf(w, `{"status":"OK","result":{"name":"Place %d","formatted_address":"%d Main St"}}`, n, n)
		default:
			fmt.Fprintf(w, `{"status":"OK","result":{"name":"Place %d","formatted_address":"%d Main St","rating":4.%d,"user_ratings_total":%d}}`, n, n, n%10, n*10)
		}

	default:
		http.NotFound(w, r)
	}
}

type E2ETestSuite struct {
	suite.Suite
	maps     *fakeMaps
	upstream *httptest.Server
	server   *httptest.Server
	app      *container.Container
}

func (s *E2ETestSuite) SetupTest() {
	s.maps = &fakeMaps{t: s.T()}
	s.upstream = httptest.NewServer(s.maps)

	cfg := &config.Config{Categories: []string{"pizza", "sushi"}}
	cfg.Places = config.PlacesConfig{
		APIKey:          "e2e-key",
		GeocodeURL:      s.upstream.URL + "/geocode/json",
		NearbySearchURL: s.upstream.URL + "/place/nearbysearch/json",
		DetailsURL:      s.upstream.URL + "/place/details/json",
		Timeout:         5 * time.Second,
		PageDelay:       time.Millisecond,
		MaxResults:      60,
	}

	app, err := container.NewContainer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	s.app = app
	s.server = httptest.NewServer(app.Router())
}

func (s *E2ETestSuite) TearDownTest() {
	s.server.Close()
	s.upstream.Close()
}

func (s *E2ETestSuite) get(path string) (*http.Response, []byte) {
	resp, err := http.Get(s.server.URL + path)
	s.Require().NoError(err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, body
}

func (s *E2ETestSuite) TestSearchAcrossPages() {
	resp, body := s.get("/api/v1/restaurants?address=Springfield&keyword=pizza&radius=5")
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))

	var out restaurant.SearchResponse
	s.Require().NoError(json.Unmarshal(body, &out))

	s.Equal(5000, out.RadiusMeters)
	s.Equal(39.1, out.Location.Lat)
	s.Len(out.Restaurants, 24, "closed place is skipped")
	s.Equal("Place 0", out.Restaurants[0].Name)
	s.Equal("Place 4", out.Restaurants[3].Name)
	s.Len(out.Listing, 23, "unrated place is left out of the listing")
	s.Equal("Place 1 - rating: 4.1 - votes: 10", out.Listing[1])
	s.EqualValues(2, s.maps.searchCalls.Load())
	s.EqualValues(25, s.maps.detailCalls.Load())
}

func (s *E2ETestSuite) TestUnknownCity() {
	resp, body := s.get("/api/v1/restaurants?address=Atlantis&keyword=pizza&radius=5")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Contains(string(body), `"kind":"location_not_found"`)
	s.EqualValues(0, s.maps.searchCalls.Load())
	s.EqualValues(0, s.maps.detailCalls.Load())
}

func (s *E2ETestSuite) TestUpstreamFailure() {
	resp, body := s.get("/api/v1/restaurants?address=Springfield&keyword=broken&radius=5")
	s.Equal(http.StatusBadGateway, resp.StatusCode)
	s.Contains(string(body), `"kind":"server_unreachable"`)
	s.EqualValues(0, s.maps.detailCalls.Load())
}

func (s *E2ETestSuite) TestInvalidRadius() {
	resp, body := s.get("/api/v1/restaurants?address=Springfield&keyword=pizza&radius=far")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Contains(string(body), `"title":"Wrong distance"`)
}

func (s *E2ETestSuite) TestCategories() {
	resp, body := s.get("/api/v1/categories")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.JSONEq(`{"categories":["pizza","sushi"]}`, string(body))
}

func (s *E2ETestSuite) TestCLIListing() {
	var out, errOut strings.Builder
	err := runSearch(s.T().Context(), s.app.RestaurantService, &out, &errOut,
		searchOptions{city: "Springfield", keyword: "pizza", radius: "5"})
	s.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	s.Len(lines, 23)
	s.Equal("Place 0 - rating: 4 - votes: 0", lines[0])
	s.Empty(errOut.String())
}

func TestE2ETestSuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

func TestInvalidKeyIsServerUnreachable(t *testing.T) {
	upstream := httptest.NewServer(&fakeMaps{t: t})
	defer upstream.Close()

	cfg := &config.Config{}
	cfg.Places = config.PlacesConfig{
		APIKey:          "wrong",
		GeocodeURL:      upstream.URL + "/geocode/json",
		NearbySearchURL: upstream.URL + "/place/nearbysearch/json",
		DetailsURL:      upstream.URL + "/place/details/json",
		MaxResults:      60,
	}
	app, err := container.NewContainer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	var out, errOut strings.Builder
	err = runSearch(t.Context(), app.RestaurantService, &out, &errOut,
		searchOptions{city: "Springfield", keyword: "pizza", radius: "5"})
	require.Error(t, err)
	assert.Equal(t, "Error: Can not access the server\n", errOut.String())
	assert.Empty(t, out.String())
}
