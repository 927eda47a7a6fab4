package musicbrainz

import (
	"context"
	"iter"
)

// ReleaseService provides operations on releases.
type ReleaseService interface {
	// Get retrieves the release with the given MBID under the "release"
	// key.
	Get(ctx context.Context, mbid string, opts *LookupOptions) (Result, error)

	// Search queries the release index; matches arrive under
	// "release-list".
	Search(ctx context.Context, query string, fields Fields, opts *SearchOptions) (Result, error)

	// Browse lists all releases linked to an artist, a label, a recording
	// or a release group. Results can be narrowed with the release status
	// and type filters in opts.
	Browse(ctx context.Context, links ReleaseLinks, opts *BrowseOptions) (Result, error)

	// BrowseAll iterates over all browse pages, fetching them lazily.
	BrowseAll(ctx context.Context, links ReleaseLinks, opts *BrowseOptions) iter.Seq2[Result, error]
}

// ReleaseLinks selects the reference entity a release browse is anchored to.
// Exactly one field must be set.
type ReleaseLinks struct {
	Artist       string
	Label        string
	Recording    string
	ReleaseGroup string
}

func (l ReleaseLinks) params() map[string]string {
	return map[string]string{
		"artist":        l.Artist,
		"label":         l.Label,
		"recording":     l.Recording,
		"release-group": l.ReleaseGroup,
	}
}

type releaseService struct {
	client *Client
}

func (s *releaseService) Get(ctx context.Context, mbid string, opts *LookupOptions) (Result, error) {
	return s.client.lookup(ctx, "release", mbid, opts)
}

func (s *releaseService) Search(ctx context.Context, query string, fields Fields, opts *SearchOptions) (Result, error) {
	return s.client.search(ctx, "release", query, fields, opts)
}

func (s *releaseService) Browse(ctx context.Context, links ReleaseLinks, opts *BrowseOptions) (Result, error) {
	return s.client.browse(ctx, "release", links.params(), opts)
}

func (s *releaseService) BrowseAll(ctx context.Context, links ReleaseLinks, opts *BrowseOptions) iter.Seq2[Result, error] {
	return s.client.browseSeq(ctx, "release", links.params(), opts)
}
