package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jonboulle/clockwork"

	"github.com/Andrew25Egorov/weather-app/internal/metrics"
	"github.com/Andrew25Egorov/weather-app/internal/models"
)

// Store persists the per-city search ledger in SQLite.
type Store struct {
	db    *sql.DB
	clock clockwork.Clock
}

// New wraps db. A nil clock uses real time.
func New(db *sql.DB, clock clockwork.Clock) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store{db: db, clock: clock}
}

// normalizeCity derives the ledger key: lowercased, whitespace collapsed.
// "Paris", " paris " and "PARIS" all map to the same record.
func normalizeCity(city string) string {
	return strings.ToLower(strings.Join(strings.Fields(city), " "))
}

// RecordSearch increments the counter for a city, creating the record with
// search_count = 1 on first sight. The upsert is a single statement, so
// concurrent identical-city searches never lose increments. Writes hitting a
// momentarily locked database are retried briefly; real failures are not.
func (s *Store) RecordSearch(cityName, country string, lat, lon float64) error {
	key := normalizeCity(cityName)
	if key == "" {
		return fmt.Errorf("record search: empty city name")
	}
	now := s.clock.Now().UTC()

	operation := func() error {
		_, err := s.db.Exec(`
			INSERT INTO city_searches (city_name, display_name, country, latitude, longitude, search_count, last_searched)
			VALUES (?, ?, ?, ?, ?, 1, ?)
			ON CONFLICT(city_name) DO UPDATE SET
				search_count = search_count + 1,
				last_searched = excluded.last_searched,
				latitude = excluded.latitude,
				longitude = excluded.longitude,
				country = CASE WHEN excluded.country != '' THEN excluded.country ELSE country END
		`, key, strings.TrimSpace(cityName), country, lat, lon, now)
		if err == nil {
			return nil
		}
		if isBusy(err) {
			return err
		}
		return backoff.Permanent(err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 2 * time.Second
	if err := backoff.Retry(operation, bo); err != nil {
		return fmt.Errorf("record search: %w", err)
	}

	metrics.SearchesRecordedTotal.Inc()
	return nil
}

// isBusy reports whether err is SQLite's transient lock contention.
func isBusy(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}

// TopSearches returns up to limit records ranked by search count, ties
// broken by most recent search, then city name for determinism.
func (s *Store) TopSearches(limit int) ([]models.SearchRecord, error) {
	rows, err := s.db.Query(`
		SELECT display_name, country, latitude, longitude, search_count, last_searched
		FROM city_searches
		ORDER BY search_count DESC, last_searched DESC, city_name ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.SearchRecord
	for rows.Next() {
		var rec models.SearchRecord
		if err := rows.Scan(&rec.CityName, &rec.Country, &rec.Latitude, &rec.Longitude, &rec.SearchCount, &rec.LastSearched); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetSearch returns the record for a city name (any casing), or nil when the
// city has never been searched.
func (s *Store) GetSearch(cityName string) (*models.SearchRecord, error) {
	row := s.db.QueryRow(`
		SELECT display_name, country, latitude, longitude, search_count, last_searched
		FROM city_searches
		WHERE city_name = ?
	`, normalizeCity(cityName))

	var rec models.SearchRecord
	err := row.Scan(&rec.CityName, &rec.Country, &rec.Latitude, &rec.Longitude, &rec.SearchCount, &rec.LastSearched)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
