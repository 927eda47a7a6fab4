package musicbrainz

import (
	"context"
	"iter"
)

// RecordingService provides operations on recordings.
type RecordingService interface {
	// Get retrieves the recording with the given MBID under the
	// "recording" key.
	Get(ctx context.Context, mbid string, opts *LookupOptions) (Result, error)

	// Search queries the recording index; matches arrive under
	// "recording-list".
	Search(ctx context.Context, query string, fields Fields, opts *SearchOptions) (Result, error)

	// Browse lists all recordings linked to an artist or a release.
	Browse(ctx context.Context, links RecordingLinks, opts *BrowseOptions) (Result, error)

	// BrowseAll iterates over all browse pages, fetching them lazily.
	BrowseAll(ctx context.Context, links RecordingLinks, opts *BrowseOptions) iter.Seq2[Result, error]
}

// RecordingLinks selects the reference entity a recording browse is anchored
// to. Exactly one field must be set.
type RecordingLinks struct {
	Artist  string
	Release string
}

func (l RecordingLinks) params() map[string]string {
	return map[string]string{
		"artist":  l.Artist,
		"release": l.Release,
	}
}

type recordingService struct {
	client *Client
}

func (s *recordingService) Get(ctx context.Context, mbid string, opts *LookupOptions) (Result, error) {
	return s.client.lookup(ctx, "recording", mbid, opts)
}

func (s *recordingService) Search(ctx context.Context, query string, fields Fields, opts *SearchOptions) (Result, error) {
	return s.client.search(ctx, "recording", query, fields, opts)
}

func (s *recordingService) Browse(ctx context.Context, links RecordingLinks, opts *BrowseOptions) (Result, error) {
	return s.client.browse(ctx, "recording", links.params(), opts)
}

func (s *recordingService) BrowseAll(ctx context.Context, links RecordingLinks, opts *BrowseOptions) iter.Seq2[Result, error] {
	return s.client.browseSeq(ctx, "recording", links.params(), opts)
}
