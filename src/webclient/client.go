package webclient

import (
	"net/http"
	"time"
)

// NewDefault returns an HTTP client with a bounded timeout. Provider calls
// are never retried; a timeout is treated like any other transport failure.
func NewDefault(timeout time.Duration) *http.Client {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
