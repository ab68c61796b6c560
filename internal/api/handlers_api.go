package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Andrew25Egorov/weather-app/internal/models"
)

const (
	defaultStatsLimit = 10
	maxStatsLimit     = 50
)

// handleAutocomplete returns suggestion strings for a partial term. Always
// 200 with a JSON array; provider failures degrade to an empty list.
func (s *Server) handleAutocomplete(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("term"))

	suggestions := s.suggester.Suggest(r.Context(), term)
	if suggestions == nil {
		suggestions = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(suggestions)
}

// handleStats returns the ranked popular-searches list.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	limit := defaultStatsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	if limit > maxStatsLimit {
		limit = maxStatsLimit
	}

	records, err := s.ledger.TopSearches(limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []models.SearchRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
