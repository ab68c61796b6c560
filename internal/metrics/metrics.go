package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GeocodeLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherapp_geocode_lookups_total",
			Help: "Total geocoding provider lookups",
		},
		[]string{"provider", "status"},
	)

	GeocodeCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "weatherapp_geocode_cache_hits_total",
			Help: "Geocode cache hits",
		},
	)

	GeocodeCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "weatherapp_geocode_cache_misses_total",
			Help: "Geocode cache misses",
		},
	)

	ForecastFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherapp_forecast_fetches_total",
			Help: "Total forecast provider fetches",
		},
		[]string{"status"},
	)

	AutocompleteQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherapp_autocomplete_queries_total",
			Help: "Total autocomplete provider queries",
		},
		[]string{"status"},
	)

	SearchesRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "weatherapp_searches_recorded_total",
			Help: "Total city searches recorded in the ledger",
		},
	)
)
