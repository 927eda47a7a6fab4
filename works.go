package musicbrainz

import "context"

// WorkService provides operations on works.
type WorkService interface {
	// Get retrieves the work with the given MBID under the "work" key.
	Get(ctx context.Context, mbid string, opts *LookupOptions) (Result, error)

	// Search queries the work index; matches arrive under "work-list".
	Search(ctx context.Context, query string, fields Fields, opts *SearchOptions) (Result, error)
}

type workService struct {
	client *Client
}

func (s *workService) Get(ctx context.Context, mbid string, opts *LookupOptions) (Result, error) {
	return s.client.lookup(ctx, "work", mbid, opts)
}

func (s *workService) Search(ctx context.Context, query string, fields Fields, opts *SearchOptions) (Result, error) {
	return s.client.search(ctx, "work", query, fields, opts)
}
