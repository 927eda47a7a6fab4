package musicbrainz

import (
	"context"
	"iter"
)

// ArtistService provides operations on artists.
type ArtistService interface {
	// Get retrieves the artist with the given MBID. The result holds the
	// artist under the "artist" key.
	Get(ctx context.Context, mbid string, opts *LookupOptions) (Result, error)

	// Search queries the artist index. The result holds matches under the
	// "artist-list" key.
	Search(ctx context.Context, query string, fields Fields, opts *SearchOptions) (Result, error)

	// Browse lists all artists linked to the reference entity in links.
	Browse(ctx context.Context, links ArtistLinks, opts *BrowseOptions) (Result, error)

	// BrowseAll iterates over all browse pages, fetching them lazily.
	BrowseAll(ctx context.Context, links ArtistLinks, opts *BrowseOptions) iter.Seq2[Result, error]
}

// ArtistLinks selects the reference entity an artist browse is anchored to.
// Exactly one field must be set.
type ArtistLinks struct {
	Recording    string
	Release      string
	ReleaseGroup string
}

func (l ArtistLinks) params() map[string]string {
	return map[string]string{
		"recording":     l.Recording,
		"release":       l.Release,
		"release-group": l.ReleaseGroup,
	}
}

type artistService struct {
	client *Client
}

func (s *artistService) Get(ctx context.Context, mbid string, opts *LookupOptions) (Result, error) {
	return s.client.lookup(ctx, "artist", mbid, opts)
}

func (s *artistService) Search(ctx context.Context, query string, fields Fields, opts *SearchOptions) (Result, error) {
	return s.client.search(ctx, "artist", query, fields, opts)
}

func (s *artistService) Browse(ctx context.Context, links ArtistLinks, opts *BrowseOptions) (Result, error) {
	return s.client.browse(ctx, "artist", links.params(), opts)
}

func (s *artistService) BrowseAll(ctx context.Context, links ArtistLinks, opts *BrowseOptions) iter.Seq2[Result, error] {
	return s.client.browseSeq(ctx, "artist", links.params(), opts)
}
