package musicbrainz

import (
	"context"
	"net/http"

	"github.com/tsieber/go-musicbrainz/internal/api"
)

// Mutation passthroughs. The library forwards write operations as opaque
// HTTP verbs against a caller-supplied web service path (e.g.
// "release/<mbid>/..."); it does not implement the write-side business
// logic itself. All of them require credentials and carry the client query
// parameter naming the calling application.

// Post submits an XML body to the given path.
func (c *Client) Post(ctx context.Context, path string, body []byte) (Result, error) {
	return c.do(ctx, &api.Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
		Auth:   true,
		Client: true,
	})
}

// Put sends a PUT request for the given path.
func (c *Client) Put(ctx context.Context, path string) (Result, error) {
	return c.do(ctx, &api.Request{
		Method: http.MethodPut,
		Path:   path,
		Auth:   true,
		Client: true,
	})
}

// Delete sends a DELETE request for the given path.
func (c *Client) Delete(ctx context.Context, path string) (Result, error) {
	return c.do(ctx, &api.Request{
		Method: http.MethodDelete,
		Path:   path,
		Auth:   true,
		Client: true,
	})
}
