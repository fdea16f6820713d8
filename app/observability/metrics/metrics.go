package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	UpstreamRequestsTotal   metric.Int64Counter
	UpstreamDurationSeconds metric.Float64Histogram
	SearchesTotal           metric.Int64Counter
	SearchDurationSeconds   metric.Float64Histogram
	SearchResultsCount      metric.Int64Histogram
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider, so call it
// after the provider is installed.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("RestaurantFinder")
		var err error
		m := &AppMetrics{}

		m.UpstreamRequestsTotal, err = meter.Int64Counter(
			"upstream_requests_total",
			metric.WithDescription("Total number of Maps web service calls, by operation and outcome"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create upstream_requests_total: %v", err)
		}

		m.UpstreamDurationSeconds, err = meter.Float64Histogram(
			"upstream_duration_seconds",
			metric.WithDescription("Duration of Maps web service calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create upstream_duration_seconds: %v", err)
		}

		m.SearchesTotal, err = meter.Int64Counter(
			"restaurant_searches_total",
			metric.WithDescription("Total number of restaurant searches completed, by outcome"),
			metric.WithUnit("{search}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create restaurant_searches_total: %v", err)
		}

		m.SearchDurationSeconds, err = meter.Float64Histogram(
			"restaurant_search_duration_seconds",
			metric.WithDescription("End-to-end duration of restaurant searches in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create restaurant_search_duration_seconds: %v", err)
		}

		m.SearchResultsCount, err = meter.Int64Histogram(
			"restaurant_search_results",
			metric.WithDescription("Number of restaurants returned per search"),
			metric.WithUnit("{restaurant}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create restaurant_search_results: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the global AppMetrics, initializing it against the current
// MeterProvider on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
