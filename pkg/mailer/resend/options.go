package resend

import (
	"net/http"
	"net/url"
)

// Option configures the Resend sender.
type Option func(*Sender)

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Sender) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// WithBaseURL points the client at a different API endpoint.
// Invalid URLs are ignored.
func WithBaseURL(raw string) Option {
	return func(s *Sender) {
		if u, err := url.Parse(raw); err == nil && u.Host != "" {
			s.baseURL = u
		}
	}
}
