package main

import (
	"context"
	"database/sql"
	"log"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"
	_ "modernc.org/sqlite"

	"github.com/Andrew25Egorov/weather-app/internal/api"
	"github.com/Andrew25Egorov/weather-app/internal/forecast"
	"github.com/Andrew25Egorov/weather-app/internal/geocode"
	"github.com/Andrew25Egorov/weather-app/internal/store"
)

var cli struct {
	DB      string `name:"db" env:"DB_PATH" default:"data/weather.db" help:"Path to SQLite database."`
	Port    string `env:"PORT" default:"8080" help:"HTTP server port."`
	Contact string `env:"CONTACT" default:"" help:"Contact (email or URL) sent in the geocoder User-Agent."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("weather-app"),
		kong.Description("City weather lookup service."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)

	db, err := sql.Open("sqlite", cli.DB)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	ledger := store.New(db, nil)
	if err := ledger.Migrate(); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("database migrated")

	nominatim := geocode.NewNominatimClient(cli.Contact)
	resolver := geocode.NewResolver(geocode.NewCache(nil), geocode.NewOpenMeteoClient(), nominatim)
	suggester := geocode.NewSuggester(nominatim)
	forecaster := forecast.NewClient()

	server := api.NewServer(ledger, resolver, forecaster, suggester, cli.Port)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Printf("starting server on :%s", cli.Port)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
