package forecast

import (
	"math"

	"github.com/Andrew25Egorov/weather-app/internal/models"
)

// hourlyWindowSize caps the hourly slice shown to the user: twelve entries
// starting at or after the current-weather timestamp.
const hourlyWindowSize = 12

// Format transforms coordinates and a raw forecast payload into the
// display-ready structure. Unknown weathercodes fall back to the Unknown
// entry and a current timestamp past the hourly range yields an empty
// window; neither case errors.
func Format(city string, coords models.CityCoordinates, raw *models.RawForecast) models.FormattedWeather {
	cur := raw.CurrentWeather
	info := LookupCode(cur.WeatherCode)

	return models.FormattedWeather{
		City:    city,
		Country: coords.Country,
		Current: models.CurrentConditions{
			Temperature:   cur.Temperature,
			WindSpeed:     cur.WindSpeed,
			WindDirection: cur.WindDirection,
			WindCompass:   Compass(cur.WindDirection),
			Time:          cur.Time,
			Description:   info.Description,
			Icon:          info.Icon,
		},
		Hourly: windowHourly(raw.Hourly, cur.Time),
	}
}

// windowHourly slices the hourly parallel arrays to at most hourlyWindowSize
// entries beginning at the first timestamp >= now. Both timestamps come from
// the same payload in the same ISO 8601 format, so lexicographic comparison
// orders them correctly.
func windowHourly(h models.HourlySeries, now string) models.HourlyWindow {
	start := len(h.Time)
	for i, ts := range h.Time {
		if ts >= now {
			start = i
			break
		}
	}

	end := start + hourlyWindowSize
	if end > len(h.Time) {
		end = len(h.Time)
	}

	return models.HourlyWindow{
		Time:          h.Time[start:end],
		Temperature:   h.Temperature[start:end],
		WindSpeed:     h.WindSpeed[start:end],
		WindDirection: h.WindDirection[start:end],
	}
}

var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Compass maps wind direction in degrees to an 8-point compass label.
func Compass(degrees float64) string {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	return compassPoints[int((d+22.5)/45)%8]
}
