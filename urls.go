package musicbrainz

import (
	"context"
	"iter"
)

// URLService provides operations on URL entities.
type URLService interface {
	// Get retrieves the URL entity with the given MBID under the "url"
	// key.
	Get(ctx context.Context, mbid string, opts *LookupOptions) (Result, error)

	// Browse looks up URL entities by the actual URL string they point
	// to.
	Browse(ctx context.Context, links URLLinks, opts *BrowseOptions) (Result, error)

	// BrowseAll iterates over all browse pages, fetching them lazily.
	BrowseAll(ctx context.Context, links URLLinks, opts *BrowseOptions) iter.Seq2[Result, error]
}

// URLLinks anchors a URL browse to a resource: the URL string itself.
type URLLinks struct {
	Resource string
}

func (l URLLinks) params() map[string]string {
	return map[string]string{
		"resource": l.Resource,
	}
}

type urlService struct {
	client *Client
}

func (s *urlService) Get(ctx context.Context, mbid string, opts *LookupOptions) (Result, error) {
	return s.client.lookup(ctx, "url", mbid, opts)
}

func (s *urlService) Browse(ctx context.Context, links URLLinks, opts *BrowseOptions) (Result, error) {
	return s.client.browse(ctx, "url", links.params(), opts)
}

func (s *urlService) BrowseAll(ctx context.Context, links URLLinks, opts *BrowseOptions) iter.Seq2[Result, error] {
	return s.client.browseSeq(ctx, "url", links.params(), opts)
}
