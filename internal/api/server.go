package api

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Andrew25Egorov/weather-app/internal/models"
)

// CityResolver turns free-text city input into coordinates.
type CityResolver interface {
	Resolve(ctx context.Context, cityText string) (models.CityCoordinates, error)
}

// ForecastFetcher retrieves a raw forecast for coordinates.
type ForecastFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (*models.RawForecast, error)
}

// Suggester produces autocomplete strings for a partial term.
type Suggester interface {
	Suggest(ctx context.Context, term string) []string
}

// SearchLedger records searches and lists the most popular cities.
type SearchLedger interface {
	RecordSearch(cityName, country string, lat, lon float64) error
	TopSearches(limit int) ([]models.SearchRecord, error)
}

type Server struct {
	ledger    SearchLedger
	resolver  CityResolver
	forecast  ForecastFetcher
	suggester Suggester
	port      string
	tmpl      *template.Template
}

func NewServer(ledger SearchLedger, resolver CityResolver, forecast ForecastFetcher, suggester Suggester, port string) *Server {
	return &Server{
		ledger:    ledger,
		resolver:  resolver,
		forecast:  forecast,
		suggester: suggester,
		port:      port,
		tmpl:      newTemplates(),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc("/weather", s.handleWeather)
	mux.HandleFunc("/autocomplete", s.handleAutocomplete)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
