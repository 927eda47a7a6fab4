package musicbrainz

import (
	"fmt"
	"net/url"
	"slices"
	"sort"
	"strings"
)

// checkIncludes verifies every requested include against the given
// whitelist and rejects duplicates. Includes have set semantics; their order
// is preserved only for the outgoing query string.
func checkIncludes(entity string, includes, valid []string) error {
	seen := make(map[string]bool, len(includes))
	for _, inc := range includes {
		if !slices.Contains(valid, inc) {
			return &ValidationError{
				Message: fmt.Sprintf("%q is not a valid include for %s", inc, entity),
			}
		}
		if seen[inc] {
			return &ValidationError{
				Message: fmt.Sprintf("duplicate include %q", inc),
			}
		}
		seen[inc] = true
	}
	return nil
}

// filterParams validates release status and type filters for the given
// entity and turns the accepted ones into query parameters.
//
// A status filter needs a release context: the entity itself is a release or
// the includes pull releases in. A type filter additionally accepts
// release-group contexts.
func filterParams(entity string, includes, status, releaseType []string) (url.Values, error) {
	for _, s := range status {
		if !slices.Contains(validReleaseStatuses, s) {
			return nil, &ValidationError{
				Message: fmt.Sprintf("%q is not a valid release status", s),
			}
		}
	}
	for _, t := range releaseType {
		if !slices.Contains(validReleaseTypes, t) {
			return nil, &ValidationError{
				Message: fmt.Sprintf("%q is not a valid release type", t),
			}
		}
	}

	if len(status) > 0 && entity != "release" && !slices.Contains(includes, "releases") {
		return nil, &ValidationError{
			Message: "a release status filter requires a release context",
		}
	}
	if len(releaseType) > 0 &&
		entity != "release" && entity != "release-group" &&
		!slices.Contains(includes, "releases") && !slices.Contains(includes, "release-groups") {
		return nil, &ValidationError{
			Message: "a release type filter requires a release or release-group context",
		}
	}

	params := url.Values{}
	if len(status) > 0 {
		params.Set("status", strings.Join(status, ","))
	}
	if len(releaseType) > 0 {
		params.Set("type", strings.Join(releaseType, ","))
	}
	return params, nil
}

// linkParams reduces a set of browse linking parameters to query values,
// enforcing that at most one is set. Browse operations list entities linked
// to exactly one reference entity.
func linkParams(links map[string]string) (url.Values, error) {
	params := url.Values{}
	for name, value := range links {
		if value != "" {
			params.Set(name, value)
		}
	}
	if len(params) > 1 {
		names := make([]string, 0, len(links))
		for name := range links {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, &ValidationError{
			Message: "at most one of " + strings.Join(names, ", ") + " may be given",
		}
	}
	return params, nil
}

// checkMBID rejects empty identifiers before a request is built.
func checkMBID(entity, mbid string) error {
	if mbid == "" {
		return &ValidationError{
			Message: entity + " MBID cannot be empty",
		}
	}
	return nil
}
