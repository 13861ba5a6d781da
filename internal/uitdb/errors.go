package uitdb

import (
	"fmt"
	"net/http"
)

const maxErrorBody = 512

// NetworkError reports a request that never produced an upstream response.
type NetworkError struct {
	Endpoint Endpoint
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("uitdb %s: request failed: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UpstreamError carries a non-2xx response. Body is kept exactly as received.
type UpstreamError struct {
	Endpoint Endpoint
	Status   int
	Body     []byte
}

func (e *UpstreamError) Error() string {
	body := string(e.Body)
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	msg := fmt.Sprintf("uitdb %s: upstream returned %d %s", e.Endpoint, e.Status, http.StatusText(e.Status))
	if body != "" {
		msg += ": " + body
	}
	return msg
}

// Unauthorized reports whether the upstream rejected the client identifier.
func (e *UpstreamError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}
