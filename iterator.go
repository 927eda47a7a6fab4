package musicbrainz

import "iter"

// Collect gathers all pages from a BrowseAll iterator into a slice.
// It stops on the first error and returns the pages collected so far along
// with the error.
func Collect(seq iter.Seq2[Result, error]) ([]Result, error) {
	result := make([]Result, 0)
	for page, err := range seq {
		if err != nil {
			return result, err
		}
		result = append(result, page)
	}
	return result, nil
}

// Take returns an iterator that yields at most n pages from the source
// iterator.
func Take(seq iter.Seq2[Result, error], n int) iter.Seq2[Result, error] {
	return func(yield func(Result, error) bool) {
		count := 0
		for page, err := range seq {
			if !yield(page, err) || err != nil {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}
