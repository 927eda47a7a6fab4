// Package api provides low-level HTTP transport for MusicBrainz web service
// calls.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tsieber/go-musicbrainz/internal/auth"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	defaultMaxBodySize = 10 * 1024 * 1024 // 10MB
)

// wsRoot is the path prefix of web service version 2.
const wsRoot = "/ws/2"

// Transport handles HTTP communication with the web service.
type Transport struct {
	BaseURL     *url.URL
	HTTPClient  *http.Client
	Credentials *auth.Credentials
	UserAgent   string

	// ClientID names the calling application on write operations, as
	// "<app>-<version>".
	ClientID string
}

// NewTransport creates a Transport for the given base URL.
func NewTransport(baseURL string, creds *auth.Credentials, httpClient *http.Client) (*Transport, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultHTTPTimeout,
		}
	}

	return &Transport{
		BaseURL:     u,
		HTTPClient:  httpClient,
		Credentials: creds,
	}, nil
}

// Request represents one web service request.
type Request struct {
	Method string
	Path   string // relative to /ws/2, e.g. "artist/<mbid>"
	Query  url.Values
	Body   []byte

	// Auth attaches credentials. Client adds the client query parameter
	// naming the calling application; the service requires it on write
	// operations.
	Auth   bool
	Client bool
}

// Response represents a web service response.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Do executes a request and returns the raw response. Errors from Do are
// transport-level; HTTP error statuses are returned in the Response for the
// caller to interpret.
func (t *Transport) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := t.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	httpResp, err := t.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	// Limit response body size to prevent memory exhaustion
	limitedReader := io.LimitReader(httpResp.Body, defaultMaxBodySize+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if int64(len(body)) > defaultMaxBodySize {
		return nil, fmt.Errorf("response too large: exceeds %d bytes", defaultMaxBodySize)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Body:       body,
		Headers:    httpResp.Header,
	}, nil
}

func (t *Transport) buildRequest(ctx context.Context, req *Request) (*http.Request, error) {
	u := t.BaseURL.JoinPath(wsRoot, req.Path)

	query := url.Values{}
	for k, vs := range req.Query {
		query[k] = vs
	}
	if req.Client {
		query.Set("client", t.ClientID)
	}
	u.RawQuery = query.Encode()

	var bodyReader io.Reader
	if req.Body != nil {
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/xml; charset=utf-8")
	}
	httpReq.Header.Set("Accept", "application/xml")
	httpReq.Header.Set("User-Agent", t.UserAgent)

	if req.Auth {
		t.Credentials.Apply(httpReq)
	}

	return httpReq, nil
}
