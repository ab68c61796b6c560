package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Andrew25Egorov/weather-app/internal/httputil"
	"github.com/Andrew25Egorov/weather-app/internal/models"
)

const openMeteoBaseURL = "https://geocoding-api.open-meteo.com/v1/search"

// OpenMeteoClient resolves city names via the Open-Meteo geocoding API.
// No API key required.
type OpenMeteoClient struct {
	baseURL string
	client  *http.Client
}

func NewOpenMeteoClient() *OpenMeteoClient {
	return &OpenMeteoClient{
		baseURL: openMeteoBaseURL,
		client:  httputil.NewClient(),
	}
}

func (c *OpenMeteoClient) Name() string { return "openmeteo" }

func (c *OpenMeteoClient) Lookup(ctx context.Context, city string) (models.CityCoordinates, error) {
	params := url.Values{
		"name":  {city},
		"count": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return models.CityCoordinates{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return models.CityCoordinates{}, fmt.Errorf("geocode %q: %w", city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return models.CityCoordinates{}, fmt.Errorf("geocode %q: status %d: %s", city, resp.StatusCode, string(b))
	}

	var payload struct {
		Results []struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Country   string  `json:"country"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.CityCoordinates{}, fmt.Errorf("geocode %q: unmarshal: %w", city, err)
	}

	if len(payload.Results) == 0 {
		return models.CityCoordinates{}, fmt.Errorf("geocode %q: no results", city)
	}

	best := payload.Results[0]
	return models.CityCoordinates{
		Latitude:  best.Latitude,
		Longitude: best.Longitude,
		Country:   best.Country,
	}, nil
}
