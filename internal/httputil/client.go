package httputil

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds every outbound provider call so a stalled provider
// cannot stall the request pipeline.
const DefaultTimeout = 5 * time.Second

// NewClient returns an HTTP client with standard timeout configuration.
func NewClient() *http.Client {
	return &http.Client{
		Timeout: DefaultTimeout,
	}
}
