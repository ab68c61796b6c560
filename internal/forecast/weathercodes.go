package forecast

// CodeInfo is the human-readable rendering of a WMO weathercode.
type CodeInfo struct {
	Description string
	Icon        string
}

// unknownCode is returned for any weathercode missing from the table.
var unknownCode = CodeInfo{Description: "Unknown", Icon: "❓"}

// weatherCodes maps WMO interpretation codes (as used by Open-Meteo) to
// descriptions and icons.
var weatherCodes = map[int]CodeInfo{
	0:  {"Clear sky", "☀️"},
	1:  {"Mainly clear", "🌤️"},
	2:  {"Partly cloudy", "⛅"},
	3:  {"Overcast", "☁️"},
	45: {"Fog", "🌫️"},
	48: {"Depositing rime fog", "🌫️"},
	51: {"Light drizzle", "🌦️"},
	53: {"Moderate drizzle", "🌦️"},
	55: {"Dense drizzle", "🌧️"},
	56: {"Light freezing drizzle", "🌧️"},
	57: {"Dense freezing drizzle", "🌧️"},
	61: {"Slight rain", "🌧️"},
	63: {"Moderate rain", "🌧️"},
	65: {"Heavy rain", "🌧️"},
	66: {"Light freezing rain", "🌧️"},
	67: {"Heavy freezing rain", "🌧️"},
	71: {"Slight snowfall", "🌨️"},
	73: {"Moderate snowfall", "🌨️"},
	75: {"Heavy snowfall", "❄️"},
	77: {"Snow grains", "❄️"},
	80: {"Slight rain showers", "🌦️"},
	81: {"Moderate rain showers", "🌧️"},
	82: {"Violent rain showers", "⛈️"},
	85: {"Slight snow showers", "🌨️"},
	86: {"Heavy snow showers", "🌨️"},
	95: {"Thunderstorm", "⛈️"},
	96: {"Thunderstorm with slight hail", "⛈️"},
	99: {"Thunderstorm with heavy hail", "⛈️"},
}

// LookupCode resolves a weathercode, mapping unknown codes to the explicit
// Unknown entry rather than failing.
func LookupCode(code int) CodeInfo {
	if info, ok := weatherCodes[code]; ok {
		return info
	}
	return unknownCode
}
