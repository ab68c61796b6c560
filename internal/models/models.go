package models

import "time"

// CityCoordinates is the result of geocoding a free-text city name.
// Immutable once returned by a provider; cached by normalized city name.
type CityCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"` // may be empty
}

// RawForecast is the Open-Meteo forecast payload: a current snapshot plus
// hourly parallel arrays of equal length, ordered by time ascending.
type RawForecast struct {
	CurrentWeather CurrentWeather `json:"current_weather"`
	Hourly         HourlySeries   `json:"hourly"`
}

type CurrentWeather struct {
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	WeatherCode   int     `json:"weathercode"`
	Time          string  `json:"time"` // ISO 8601, provider-local
}

type HourlySeries struct {
	Time          []string  `json:"time"`
	Temperature   []float64 `json:"temperature_2m"`
	WindSpeed     []float64 `json:"windspeed_10m"`
	WindDirection []float64 `json:"winddirection_10m"`
}

// FormattedWeather is the display-ready structure rendered by the results
// page and returned by the JSON API.
type FormattedWeather struct {
	City    string            `json:"city"`
	Country string            `json:"country"`
	Current CurrentConditions `json:"current"`
	Hourly  HourlyWindow      `json:"hourly"`
}

type CurrentConditions struct {
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	WindCompass   string  `json:"wind_compass"`
	Time          string  `json:"time"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
}

// HourlyWindow holds up to 12 hourly entries starting at or after the
// current-weather timestamp. All slices share length and index alignment.
type HourlyWindow struct {
	Time          []string  `json:"time"`
	Temperature   []float64 `json:"temperature"`
	WindSpeed     []float64 `json:"windspeed"`
	WindDirection []float64 `json:"winddirection"`
}

// SearchRecord is one row of the search ledger: a distinct normalized city
// with its running search count.
type SearchRecord struct {
	CityName     string    `json:"city_name"`
	Country      string    `json:"country,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	SearchCount  int64     `json:"search_count"`
	LastSearched time.Time `json:"last_searched"`
}
