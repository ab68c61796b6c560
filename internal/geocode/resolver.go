package geocode

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Andrew25Egorov/weather-app/internal/metrics"
	"github.com/Andrew25Egorov/weather-app/internal/models"
)

// ErrNotFound means no geocoding provider produced a match for the city.
var ErrNotFound = errors.New("city not found")

// Provider resolves a free-text city name to coordinates. Any error counts
// as "no result": the resolver degrades to the next provider rather than
// failing the request.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, city string) (models.CityCoordinates, error)
}

// Resolver walks an ordered provider chain, consulting and populating a
// shared coordinate cache. The first provider to yield a result wins.
type Resolver struct {
	providers []Provider
	cache     *Cache
	ttl       time.Duration
}

func NewResolver(cache *Cache, providers ...Provider) *Resolver {
	return &Resolver{
		providers: providers,
		cache:     cache,
		ttl:       DefaultTTL,
	}
}

// SplitCityCountry splits a comma-separated input like "Paris, France" into
// the city to geocode and an optional country override.
func SplitCityCountry(input string) (city, country string) {
	parts := strings.SplitN(input, ",", 2)
	city = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		country = strings.TrimSpace(parts[1])
	}
	return city, country
}

// Resolve turns free-text city input into coordinates. A country given in
// the input ("City, Country") overrides whatever the geocoder returns.
// Returns ErrNotFound once the provider chain is exhausted.
func (r *Resolver) Resolve(ctx context.Context, cityText string) (models.CityCoordinates, error) {
	city, country := SplitCityCountry(cityText)
	if city == "" {
		return models.CityCoordinates{}, ErrNotFound
	}

	key := CacheKey(city)
	if coords, ok := r.cache.Get(key); ok {
		metrics.GeocodeCacheHits.Inc()
		return overrideCountry(coords, country), nil
	}
	metrics.GeocodeCacheMisses.Inc()

	for _, p := range r.providers {
		coords, err := p.Lookup(ctx, city)
		if err != nil {
			metrics.GeocodeLookupsTotal.WithLabelValues(p.Name(), "error").Inc()
			log.Printf("geocode: %s: %v", p.Name(), err)
			continue
		}
		metrics.GeocodeLookupsTotal.WithLabelValues(p.Name(), "ok").Inc()

		// Cache the provider result as-is; the override is per-request.
		r.cache.Put(key, coords, r.ttl)
		return overrideCountry(coords, country), nil
	}

	return models.CityCoordinates{}, ErrNotFound
}

func overrideCountry(coords models.CityCoordinates, country string) models.CityCoordinates {
	if country != "" {
		coords.Country = country
	}
	return coords
}
