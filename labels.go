package musicbrainz

import (
	"context"
	"iter"
)

// LabelService provides operations on labels.
type LabelService interface {
	// Get retrieves the label with the given MBID under the "label" key.
	Get(ctx context.Context, mbid string, opts *LookupOptions) (Result, error)

	// Search queries the label index; matches arrive under "label-list".
	Search(ctx context.Context, query string, fields Fields, opts *SearchOptions) (Result, error)

	// Browse lists all labels linked to a release.
	Browse(ctx context.Context, links LabelLinks, opts *BrowseOptions) (Result, error)

	// BrowseAll iterates over all browse pages, fetching them lazily.
	BrowseAll(ctx context.Context, links LabelLinks, opts *BrowseOptions) iter.Seq2[Result, error]
}

// LabelLinks selects the reference entity a label browse is anchored to.
type LabelLinks struct {
	Release string
}

func (l LabelLinks) params() map[string]string {
	return map[string]string{
		"release": l.Release,
	}
}

type labelService struct {
	client *Client
}

func (s *labelService) Get(ctx context.Context, mbid string, opts *LookupOptions) (Result, error) {
	return s.client.lookup(ctx, "label", mbid, opts)
}

func (s *labelService) Search(ctx context.Context, query string, fields Fields, opts *SearchOptions) (Result, error) {
	return s.client.search(ctx, "label", query, fields, opts)
}

func (s *labelService) Browse(ctx context.Context, links LabelLinks, opts *BrowseOptions) (Result, error) {
	return s.client.browse(ctx, "label", links.params(), opts)
}

func (s *labelService) BrowseAll(ctx context.Context, links LabelLinks, opts *BrowseOptions) iter.Seq2[Result, error] {
	return s.client.browseSeq(ctx, "label", links.params(), opts)
}
