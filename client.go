package musicbrainz

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tsieber/go-musicbrainz/internal/api"
	"github.com/tsieber/go-musicbrainz/internal/auth"
	"github.com/tsieber/go-musicbrainz/internal/ratelimit"
)

// DefaultHostname is the canonical web service host.
const DefaultHostname = "musicbrainz.org"

// Default configuration values.
const (
	defaultTimeout       = 30 * time.Second
	defaultLimitInterval = time.Second
	defaultLimitRequests = 1
)

// Client is the MusicBrainz web service client. It holds the shared
// configuration (host, identity, credentials, rate limit) and exposes one
// service per entity. Configuration is immutable after NewClient, so a
// single Client is safe for concurrent use.
type Client struct {
	// Per-entity services.
	Artists       ArtistService
	Labels        LabelService
	Recordings    RecordingService
	Releases      ReleaseService
	ReleaseGroups ReleaseGroupService
	Works         WorkService
	URLs          URLService
	Annotations   AnnotationService

	transport *api.Transport
	limiter   *ratelimit.Limiter
	log       zerolog.Logger
}

// NewClient creates a new client with the given options. WithUserAgent is
// mandatory; everything else has defaults (musicbrainz.org, one request per
// second, 30s timeout, no credentials, no logging).
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := &clientConfig{
		baseURL:       "https://" + DefaultHostname,
		timeout:       defaultTimeout,
		logger:        zerolog.Nop(),
		rateLimit:     true,
		limitInterval: defaultLimitInterval,
		limitRequests: defaultLimitRequests,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.app == "" || cfg.version == "" {
		return nil, ErrNoUserAgent
	}

	limiter := ratelimit.Disabled()
	if cfg.rateLimit {
		var err error
		limiter, err = ratelimit.New(cfg.limitInterval, cfg.limitRequests)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRateLimit, err)
		}
	}

	var creds *auth.Credentials
	if cfg.username != "" || cfg.password != "" {
		creds = &auth.Credentials{
			Username: cfg.username,
			Password: cfg.password,
		}
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
	}

	transport, err := api.NewTransport(cfg.baseURL, creds, httpClient)
	if err != nil {
		return nil, err
	}
	transport.UserAgent = userAgent(cfg.app, cfg.version, cfg.contact)
	transport.ClientID = cfg.app + "-" + cfg.version

	client := &Client{
		transport: transport,
		limiter:   limiter,
		log:       cfg.logger,
	}

	// Initialize services
	client.Artists = &artistService{client: client}
	client.Labels = &labelService{client: client}
	client.Recordings = &recordingService{client: client}
	client.Releases = &releaseService{client: client}
	client.ReleaseGroups = &releaseGroupService{client: client}
	client.Works = &workService{client: client}
	client.URLs = &urlService{client: client}
	client.Annotations = &annotationService{client: client}

	return client, nil
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string {
	return c.transport.BaseURL.String()
}

// UserAgent returns the composed User-Agent string.
func (c *Client) UserAgent() string {
	return c.transport.UserAgent
}

// userAgent composes the identifying header value from the application
// identity and the library version.
func userAgent(app, version, contact string) string {
	ua := fmt.Sprintf("%s/%s go-musicbrainz/%s", app, version, Version)
	if contact != "" {
		ua += " ( " + contact + " )"
	}
	return ua
}
