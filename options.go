package musicbrainz

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

type clientConfig struct {
	baseURL  string
	app      string
	version  string
	contact  string
	username string
	password string

	httpClient *http.Client
	timeout    time.Duration
	logger     zerolog.Logger

	rateLimit     bool
	limitInterval time.Duration
	limitRequests int
}

// WithUserAgent sets the application identity sent in the User-Agent header.
// App and version are required; contact may be empty. The web service
// mandates a meaningful identity on every request, so NewClient fails
// without one.
func WithUserAgent(app, version, contact string) ClientOption {
	return func(c *clientConfig) {
		c.app = app
		c.version = version
		c.contact = contact
	}
}

// WithCredentials sets the account used for operations requiring
// authentication.
func WithCredentials(username, password string) ClientOption {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithHostname overrides the web service hostname, e.g. to point at a
// mirror. Defaults to musicbrainz.org.
func WithHostname(hostname string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = "https://" + hostname
	}
}

// WithBaseURL overrides the full service base URL including scheme. Mostly
// useful for tests.
func WithBaseURL(url string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout.
// Note: This option is ignored when WithHTTPClient is used;
// set the timeout directly on the provided client instead.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithRateLimit allows at most requests calls per interval. Both values
// must be positive or NewClient fails with ErrInvalidRateLimit. The default
// is one request per second, matching the service's policy for anonymous
// clients.
func WithRateLimit(interval time.Duration, requests int) ClientOption {
	return func(c *clientConfig) {
		c.rateLimit = true
		c.limitInterval = interval
		c.limitRequests = requests
	}
}

// WithoutRateLimit disables client-side rate limiting entirely.
func WithoutRateLimit() ClientOption {
	return func(c *clientConfig) {
		c.rateLimit = false
	}
}

// WithLogger sets a zerolog logger for request/response debug logging.
// Logging is disabled by default.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
