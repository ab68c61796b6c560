package forecast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Andrew25Egorov/weather-app/internal/httputil"
	"github.com/Andrew25Egorov/weather-app/internal/metrics"
	"github.com/Andrew25Egorov/weather-app/internal/models"
)

// ErrUnavailable means the forecast provider could not produce a usable
// response. There is no retry and no fallback provider; the caller surfaces
// a user-facing error.
var ErrUnavailable = errors.New("forecast provider unavailable")

const openMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"

// Client fetches current + hourly weather from Open-Meteo in a single call.
// A circuit breaker fails fast while the provider is down; it never retries.
type Client struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewClient() *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo-forecast",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		baseURL: openMeteoBaseURL,
		client:  httputil.NewClient(),
		breaker: cb,
	}
}

// Fetch retrieves the raw forecast for coordinates. Wind speeds are
// requested in m/s so downstream consumers need no unit conversion.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (*models.RawForecast, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, lat, lon)
	})
	if err != nil {
		metrics.ForecastFetchesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	metrics.ForecastFetchesTotal.WithLabelValues("ok").Inc()
	return result.(*models.RawForecast), nil
}

func (c *Client) fetch(ctx context.Context, lat, lon float64) (*models.RawForecast, error) {
	params := url.Values{
		"latitude":        {strconv.FormatFloat(lat, 'f', -1, 64)},
		"longitude":       {strconv.FormatFloat(lon, 'f', -1, 64)},
		"current_weather": {"true"},
		"hourly":          {"temperature_2m,windspeed_10m,winddirection_10m"},
		"windspeed_unit":  {"ms"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch forecast: status %d: %s", resp.StatusCode, string(b))
	}

	var raw models.RawForecast
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("unmarshal forecast: %w", err)
	}
	return &raw, nil
}
