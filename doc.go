// Package musicbrainz provides a Go client for the MusicBrainz XML web
// service, version 2.
//
// # Features
//
//   - One service per entity (artists, releases, recordings, labels, ...)
//   - Client-side validation of includes, filters and browse parameters
//   - Built-in rate limiting honouring the MusicBrainz one-request-per-second
//     policy, configurable or disableable
//   - Typed errors for precise error handling
//   - Functional options for flexible configuration
//
// # Quick Start
//
//	client, err := musicbrainz.NewClient(
//	    musicbrainz.WithUserAgent("myapp", "0.1", "me@example.org"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	artist, err := client.Artists.Get(ctx, "c5c2ea1c-4bde-4f4d-bd0b-47b200bf99d6",
//	    &musicbrainz.LookupOptions{Includes: []string{"aliases", "tags"}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(artist["artist"])
//
// # Results
//
// Responses are decoded into nested maps mirroring the service's XML. A
// lookup yields a map keyed by the singular entity name ("artist", "release",
// ...); search and browse results arrive under the "<entity>-list" key, with
// "count" and "offset" attributes alongside the individual entries.
//
// # Error Handling
//
// Validation happens entirely client-side before any network I/O, so an
// invalid include or a conflicting browse parameter is reported immediately:
//
//	_, err := client.Artists.Get(ctx, mbid,
//	    &musicbrainz.LookupOptions{Includes: []string{"bogus"}})
//	var verr *musicbrainz.ValidationError
//	if errors.As(err, &verr) {
//	    // rejected before a request was sent
//	}
//
// Server-side failures carry the HTTP status and the service's own error
// message, with dedicated types for authentication failures and missing
// resources. Transport failures are wrapped in *NetworkError.
//
// # Browsing
//
// Browse operations list every entity linked to one reference entity and are
// paginated. Use BrowseAll to walk all pages with an iterator:
//
//	links := musicbrainz.ReleaseLinks{Artist: artistMBID}
//	for page, err := range client.Releases.BrowseAll(ctx, links, nil) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // page["release-list"] ...
//	}
//
// # Authenticated operations
//
// Operations that modify data require credentials, set with WithCredentials.
// Calling one without credentials fails with ErrNoCredentials before any
// request is made.
package musicbrainz
