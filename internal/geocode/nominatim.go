package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Andrew25Egorov/weather-app/internal/httputil"
	"github.com/Andrew25Egorov/weather-app/internal/models"
)

const nominatimBaseURL = "https://nominatim.openstreetmap.org/search"

// Place is one Nominatim candidate with its address breakdown.
type Place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		Municipality string `json:"municipality"`
		Country      string `json:"country"`
	} `json:"address"`
}

// Locality returns the most specific locality label available, falling back
// to the first segment of the display name.
func (p Place) Locality() string {
	for _, s := range []string{p.Address.City, p.Address.Town, p.Address.Village, p.Address.Municipality} {
		if s != "" {
			return s
		}
	}
	if i := strings.Index(p.DisplayName, ","); i >= 0 {
		return strings.TrimSpace(p.DisplayName[:i])
	}
	return strings.TrimSpace(p.DisplayName)
}

// Country returns the address country, falling back to the last segment of
// the display name.
func (p Place) Country() string {
	if p.Address.Country != "" {
		return p.Address.Country
	}
	parts := strings.Split(p.DisplayName, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}

// NominatimClient queries the OpenStreetMap Nominatim API. It serves both as
// the fallback geocoder and as the autocomplete candidate source. Nominatim's
// usage policy requires an identifying User-Agent on every request.
type NominatimClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewNominatimClient creates a client. contact (an email or URL) is appended
// to the User-Agent when provided.
func NewNominatimClient(contact string) *NominatimClient {
	ua := "weather-app/1.0"
	if contact != "" {
		ua += " (" + contact + ")"
	}
	return &NominatimClient{
		baseURL:   nominatimBaseURL,
		userAgent: ua,
		client:    httputil.NewClient(),
	}
}

func (c *NominatimClient) Name() string { return "nominatim" }

// Search returns up to limit candidates for a free-text term.
func (c *NominatimClient) Search(ctx context.Context, term string, limit int) ([]Place, error) {
	params := url.Values{
		"q":              {term},
		"format":         {"json"},
		"limit":          {strconv.Itoa(limit)},
		"addressdetails": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", term, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("search %q: status %d: %s", term, resp.StatusCode, string(b))
	}

	var places []Place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("search %q: unmarshal: %w", term, err)
	}
	return places, nil
}

func (c *NominatimClient) Lookup(ctx context.Context, city string) (models.CityCoordinates, error) {
	places, err := c.Search(ctx, city, 1)
	if err != nil {
		return models.CityCoordinates{}, err
	}
	if len(places) == 0 {
		return models.CityCoordinates{}, fmt.Errorf("geocode %q: no results", city)
	}

	best := places[0]
	lat, err := strconv.ParseFloat(best.Lat, 64)
	if err != nil {
		return models.CityCoordinates{}, fmt.Errorf("geocode %q: parse lat: %w", city, err)
	}
	lon, err := strconv.ParseFloat(best.Lon, 64)
	if err != nil {
		return models.CityCoordinates{}, fmt.Errorf("geocode %q: parse lon: %w", city, err)
	}

	return models.CityCoordinates{
		Latitude:  lat,
		Longitude: lon,
		Country:   best.Country(),
	}, nil
}
