package musicbrainz

import (
	"regexp"
	"sort"
	"strings"
)

// Fields maps search field names to values, e.g. {"arid": "...",
// "country": "gb"}. Empty values are ignored.
type Fields map[string]string

// luceneSpecials matches the characters the search index treats as query
// syntax.
var luceneSpecials = regexp.MustCompile(`([+\-&|!(){}\[\]^"~*?:\\/])`)

func escapeLucene(s string) string {
	return luceneSpecials.ReplaceAllString(s, `\$1`)
}

// buildSearchQuery assembles the full-text query sent as the "query"
// parameter. In fuzzy mode (the default), terms are lowercased and joined
// with spaces so any of them may match; in strict mode every clause is
// quoted and joined with AND so all of them must match exactly.
//
// Field keys are sorted, so the same inputs always produce the same string.
func buildSearchQuery(query string, fields Fields, strict bool) (string, error) {
	var parts []string

	if q := strings.TrimSpace(query); q != "" {
		if len(fields) > 0 {
			q = escapeLucene(q)
			if strict {
				q = `"` + q + `"`
			} else {
				q = strings.ToLower(q)
			}
		}
		parts = append(parts, q)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if fields[k] != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := escapeLucene(fields[key])
		if strict {
			parts = append(parts, key+`:"`+value+`"`)
		} else {
			parts = append(parts, key+":("+strings.ToLower(value)+")")
		}
	}

	sep := " "
	if strict {
		sep = " AND "
	}
	full := strings.TrimSpace(strings.Join(parts, sep))
	if full == "" {
		return "", &ValidationError{Message: "at least one query term is required"}
	}
	return full, nil
}
