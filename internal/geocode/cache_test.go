package geocode

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Andrew25Egorov/weather-app/internal/models"
)

func TestCachePutGet(t *testing.T) {
	t.Parallel()
	c := NewCache(clockwork.NewFakeClock())

	coords := models.CityCoordinates{Latitude: 48.85, Longitude: 2.35, Country: "France"}
	c.Put("paris", coords, DefaultTTL)

	got, ok := c.Get("paris")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != coords {
		t.Errorf("got %+v, want %+v", got, coords)
	}
}

func TestCacheMiss(t *testing.T) {
	t.Parallel()
	c := NewCache(clockwork.NewFakeClock())

	if _, ok := c.Get("nowhere"); ok {
		t.Error("expected cache miss for unknown key")
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	t.Parallel()
	clk := clockwork.NewFakeClock()
	c := NewCache(clk)

	c.Put("paris", models.CityCoordinates{Latitude: 48.85}, DefaultTTL)

	clk.Advance(DefaultTTL - time.Minute)
	if _, ok := c.Get("paris"); !ok {
		t.Error("entry expired before TTL elapsed")
	}

	clk.Advance(2 * time.Minute)
	if _, ok := c.Get("paris"); ok {
		t.Error("entry survived past TTL")
	}
}

func TestCachePutOverwrites(t *testing.T) {
	t.Parallel()
	c := NewCache(clockwork.NewFakeClock())

	c.Put("paris", models.CityCoordinates{Latitude: 1}, DefaultTTL)
	c.Put("paris", models.CityCoordinates{Latitude: 2}, DefaultTTL)

	got, ok := c.Get("paris")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.Latitude != 2 {
		t.Errorf("Latitude = %v, want 2 (last write wins)", got.Latitude)
	}
}

func TestCacheKey(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in, want string
	}{
		{"Paris", "paris"},
		{"  New   York  ", "new york"},
		{"SÃO PAULO", "são paulo"},
		{"rio de janeiro", "rio de janeiro"},
	}
	for _, c := range cases {
		if got := CacheKey(c.in); got != c.want {
			t.Errorf("CacheKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
