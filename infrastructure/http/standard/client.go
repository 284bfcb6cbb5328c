// ABOUTME: Standard HTTP client used as the transport for outbound AI calls
// ABOUTME: Sets the service User-Agent on every request and bounds each request with a timeout

package standard

import (
	"net/http"
	"time"
)

// UserAgent identifies this service to remote APIs
const UserAgent = "TeleScout/1.0"

// userAgentTransport sets the User-Agent header unless the caller already did
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

// RoundTrip implements http.RoundTripper
func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(req)
}

// NewStandardHTTPClient creates an HTTP client with the specified timeout.
// A zero timeout leaves deadlines to the request context.
func NewStandardHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &userAgentTransport{
			base:      http.DefaultTransport,
			userAgent: UserAgent,
		},
	}
}
