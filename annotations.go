package musicbrainz

import "context"

// AnnotationService provides search over annotations.
type AnnotationService interface {
	// Search queries the annotation index; matches arrive under
	// "annotation-list".
	Search(ctx context.Context, query string, fields Fields, opts *SearchOptions) (Result, error)
}

type annotationService struct {
	client *Client
}

func (s *annotationService) Search(ctx context.Context, query string, fields Fields, opts *SearchOptions) (Result, error) {
	return s.client.search(ctx, "annotation", query, fields, opts)
}
