package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/Andrew25Egorov/weather-app/internal/forecast"
	"github.com/Andrew25Egorov/weather-app/internal/geocode"
	"github.com/Andrew25Egorov/weather-app/internal/models"
)

const (
	recentCityCookie   = "recent_city"
	historyCookie      = "search_history"
	recentCityMaxAge   = 30 * 24 * 60 * 60
	historyLimit       = 5
	popularHomeEntries = 5
)

// HomeData feeds the search form page.
type HomeData struct {
	Error      string
	RecentCity string
	History    []string
	Popular    []models.SearchRecord
}

// ResultData feeds the results page.
type ResultData struct {
	Weather models.FormattedWeather
	History []string
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.renderHome(w, r, "")
}

func (s *Server) renderHome(w http.ResponseWriter, r *http.Request, errMsg string) {
	popular, err := s.ledger.TopSearches(popularHomeEntries)
	if err != nil {
		log.Printf("top searches: %v", err)
	}

	data := HomeData{
		Error:      errMsg,
		RecentCity: readCookie(r, recentCityCookie),
		History:    readHistory(r),
		Popular:    popular,
	}
	if err := s.tmpl.ExecuteTemplate(w, "home.html", data); err != nil {
		log.Printf("template error: %v", err)
	}
}

// handleWeather runs the lookup pipeline: resolve city text to coordinates,
// fetch the forecast, format it, and record the search. POST carries the
// search form; GET serves "recently viewed" links. Every failure re-renders
// the form with a message instead of erroring.
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	var cityText string
	switch r.Method {
	case http.MethodPost:
		cityText = strings.TrimSpace(r.FormValue("city"))
	case http.MethodGet:
		if r.URL.Query().Get("city") == "" {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		cityText = strings.TrimSpace(r.URL.Query().Get("city"))
	default:
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if cityText == "" {
		s.renderHome(w, r, "Please enter a city name")
		return
	}

	ctx := r.Context()
	city, _ := geocode.SplitCityCountry(cityText)

	coords, err := s.resolver.Resolve(ctx, cityText)
	if err != nil {
		if !errors.Is(err, geocode.ErrNotFound) {
			log.Printf("resolve %q: %v", cityText, err)
		}
		s.renderHome(w, r, fmt.Sprintf("City %q not found", city))
		return
	}

	raw, err := s.forecast.Fetch(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		log.Printf("fetch forecast for %q: %v", city, err)
		s.renderHome(w, r, "Error fetching weather data")
		return
	}

	weather := forecast.Format(city, coords, raw)

	if err := s.ledger.RecordSearch(city, coords.Country, coords.Latitude, coords.Longitude); err != nil {
		// Diagnostics only: a ledger hiccup must not fail the lookup.
		log.Printf("record search %q: %v", city, err)
	}

	label := weather.City
	if weather.Country != "" {
		label += ", " + weather.Country
	}
	history := pushHistory(readHistory(r), label)
	writeHistory(w, history)

	http.SetCookie(w, &http.Cookie{
		Name:   recentCityCookie,
		Value:  url.QueryEscape(cityText),
		Path:   "/",
		MaxAge: recentCityMaxAge,
	})

	data := ResultData{Weather: weather, History: history}
	if err := s.tmpl.ExecuteTemplate(w, "result.html", data); err != nil {
		log.Printf("template error: %v", err)
	}
}

func readCookie(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return v
}

// readHistory decodes the per-client search history cookie, a JSON string
// list kept client-side since the core has no session store.
func readHistory(r *http.Request) []string {
	raw := readCookie(r, historyCookie)
	if raw == "" {
		return nil
	}
	var history []string
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil
	}
	return history
}

// pushHistory prepends label, dropping duplicates and capping the list.
func pushHistory(history []string, label string) []string {
	out := []string{label}
	for _, h := range history {
		if h != label {
			out = append(out, h)
		}
	}
	if len(out) > historyLimit {
		out = out[:historyLimit]
	}
	return out
}

func writeHistory(w http.ResponseWriter, history []string) {
	b, err := json.Marshal(history)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:   historyCookie,
		Value:  url.QueryEscape(string(b)),
		Path:   "/",
		MaxAge: recentCityMaxAge,
	})
}
