package musicbrainz

import (
	"context"
	"iter"
)

// ReleaseGroupService provides operations on release groups.
type ReleaseGroupService interface {
	// Get retrieves the release group with the given MBID under the
	// "release-group" key.
	Get(ctx context.Context, mbid string, opts *LookupOptions) (Result, error)

	// Search queries the release group index; matches arrive under
	// "release-group-list".
	Search(ctx context.Context, query string, fields Fields, opts *SearchOptions) (Result, error)

	// Browse lists all release groups linked to an artist or a release.
	// Results can be narrowed with the release type filter in opts.
	Browse(ctx context.Context, links ReleaseGroupLinks, opts *BrowseOptions) (Result, error)

	// BrowseAll iterates over all browse pages, fetching them lazily.
	BrowseAll(ctx context.Context, links ReleaseGroupLinks, opts *BrowseOptions) iter.Seq2[Result, error]
}

// ReleaseGroupLinks selects the reference entity a release group browse is
// anchored to. Exactly one field must be set.
type ReleaseGroupLinks struct {
	Artist  string
	Release string
}

func (l ReleaseGroupLinks) params() map[string]string {
	return map[string]string{
		"artist":  l.Artist,
		"release": l.Release,
	}
}

type releaseGroupService struct {
	client *Client
}

func (s *releaseGroupService) Get(ctx context.Context, mbid string, opts *LookupOptions) (Result, error) {
	return s.client.lookup(ctx, "release-group", mbid, opts)
}

func (s *releaseGroupService) Search(ctx context.Context, query string, fields Fields, opts *SearchOptions) (Result, error) {
	return s.client.search(ctx, "release-group", query, fields, opts)
}

func (s *releaseGroupService) Browse(ctx context.Context, links ReleaseGroupLinks, opts *BrowseOptions) (Result, error) {
	return s.client.browse(ctx, "release-group", links.params(), opts)
}

func (s *releaseGroupService) BrowseAll(ctx context.Context, links ReleaseGroupLinks, opts *BrowseOptions) iter.Seq2[Result, error] {
	return s.client.browseSeq(ctx, "release-group", links.params(), opts)
}
