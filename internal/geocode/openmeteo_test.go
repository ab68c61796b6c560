package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenMeteoLookup(t *testing.T) {
	t.Parallel()
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"results":[{"latitude":48.85341,"longitude":2.3488,"country":"France"}]}`))
	}))
	t.Cleanup(srv.Close)

	c := NewOpenMeteoClient()
	c.baseURL = srv.URL

	coords, err := c.Lookup(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if coords.Latitude != 48.85341 || coords.Longitude != 2.3488 {
		t.Errorf("coords = %+v", coords)
	}
	if coords.Country != "France" {
		t.Errorf("Country = %q, want France", coords.Country)
	}
	if gotQuery != "count=1&name=Paris" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestOpenMeteoLookupNoResults(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := NewOpenMeteoClient()
	c.baseURL = srv.URL

	if _, err := c.Lookup(context.Background(), "Atlantis"); err == nil {
		t.Fatal("expected error for empty results")
	}
}

func TestOpenMeteoLookupServerError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewOpenMeteoClient()
	c.baseURL = srv.URL

	if _, err := c.Lookup(context.Background(), "Paris"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestOpenMeteoLookupMalformedBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	t.Cleanup(srv.Close)

	c := NewOpenMeteoClient()
	c.baseURL = srv.URL

	if _, err := c.Lookup(context.Background(), "Paris"); err == nil {
		t.Fatal("expected error for malformed body")
	}
}
