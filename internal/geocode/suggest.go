package geocode

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/Andrew25Egorov/weather-app/internal/metrics"
)

const (
	// minSuggestTerm guards against noise queries from keystroke-level input.
	minSuggestTerm = 2
	maxSuggestions = 5
)

// PlaceSearcher queries candidate places for a partial term.
type PlaceSearcher interface {
	Search(ctx context.Context, term string, limit int) ([]Place, error)
}

// Suggester turns partial input into "City, Country" suggestion strings.
type Suggester struct {
	searcher PlaceSearcher
}

func NewSuggester(searcher PlaceSearcher) *Suggester {
	return &Suggester{searcher: searcher}
}

// Suggest returns up to maxSuggestions strings for term. Terms shorter than
// two runes return nil without a network call, and provider failures degrade
// to an empty result rather than an error.
func (s *Suggester) Suggest(ctx context.Context, term string) []string {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < minSuggestTerm {
		return nil
	}

	places, err := s.searcher.Search(ctx, term, maxSuggestions)
	if err != nil {
		metrics.AutocompleteQueriesTotal.WithLabelValues("error").Inc()
		log.Printf("autocomplete: %v", err)
		return nil
	}
	metrics.AutocompleteQueriesTotal.WithLabelValues("ok").Inc()

	var suggestions []string
	for _, p := range places {
		city := p.Locality()
		country := p.Country()
		if city == "" || country == "" {
			continue
		}
		suggestions = append(suggestions, city+", "+country)
	}
	return suggestions
}
