package geocode

import (
	"context"
	"errors"
	"testing"
)

type fakeSearcher struct {
	places   []Place
	err      error
	calls    int
	gotTerm  string
	gotLimit int
}

func (f *fakeSearcher) Search(ctx context.Context, term string, limit int) ([]Place, error) {
	f.calls++
	f.gotTerm = term
	f.gotLimit = limit
	return f.places, f.err
}

func place(city, town, village, municipality, display, country string) Place {
	var p Place
	p.Address.City = city
	p.Address.Town = town
	p.Address.Village = village
	p.Address.Municipality = municipality
	p.DisplayName = display
	p.Address.Country = country
	return p
}

func TestSuggestShortTermSkipsNetwork(t *testing.T) {
	t.Parallel()
	searcher := &fakeSearcher{}
	s := NewSuggester(searcher)

	for _, term := range []string{"", "a", " a "} {
		if got := s.Suggest(context.Background(), term); len(got) != 0 {
			t.Errorf("Suggest(%q) = %v, want empty", term, got)
		}
	}
	if searcher.calls != 0 {
		t.Errorf("searcher called %d times for short terms, want 0", searcher.calls)
	}
}

func TestSuggestTwoRunesQueries(t *testing.T) {
	t.Parallel()
	searcher := &fakeSearcher{}
	s := NewSuggester(searcher)

	s.Suggest(context.Background(), "ab")
	if searcher.calls != 1 {
		t.Fatalf("searcher called %d times, want 1", searcher.calls)
	}
	if searcher.gotLimit != maxSuggestions {
		t.Errorf("limit = %d, want %d", searcher.gotLimit, maxSuggestions)
	}
}

func TestSuggestLabelDerivation(t *testing.T) {
	t.Parallel()
	searcher := &fakeSearcher{places: []Place{
		place("London", "", "", "", "", "United Kingdom"),
		place("", "Luton", "", "", "", "United Kingdom"),
		place("", "", "Lullington", "", "", "United Kingdom"),
		place("", "", "", "Loughton District", "", "United Kingdom"),
		place("", "", "", "", "Lesser Loompton, Somewhere, Freedonia", "Freedonia"),
	}}
	s := NewSuggester(searcher)

	got := s.Suggest(context.Background(), "lo")
	want := []string{
		"London, United Kingdom",
		"Luton, United Kingdom",
		"Lullington, United Kingdom",
		"Loughton District, United Kingdom",
		"Lesser Loompton, Freedonia",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d suggestions, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("suggestion[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSuggestSkipsIncompleteCandidates(t *testing.T) {
	t.Parallel()
	searcher := &fakeSearcher{places: []Place{
		place("", "", "", "", "", "France"), // no locality
		{},                                  // nothing at all
		place("Paris", "", "", "", "", "France"),
	}}
	s := NewSuggester(searcher)

	got := s.Suggest(context.Background(), "pa")
	if len(got) != 1 || got[0] != "Paris, France" {
		t.Errorf("got %v, want [Paris, France]", got)
	}
}

func TestSuggestProviderFailure(t *testing.T) {
	t.Parallel()
	s := NewSuggester(&fakeSearcher{err: errors.New("timeout")})

	if got := s.Suggest(context.Background(), "paris"); got != nil {
		t.Errorf("got %v, want nil on provider failure", got)
	}
}
