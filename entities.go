package musicbrainz

// Static per-entity validation tables. These mirror the web service's own
// rules so invalid requests are rejected client-side with a precise error
// instead of a delayed server-side rejection.

// relationIncludes are accepted by every entity that supports relationship
// subqueries.
var relationIncludes = []string{
	"area-rels",
	"artist-rels",
	"label-rels",
	"place-rels",
	"event-rels",
	"recording-rels",
	"release-rels",
	"release-group-rels",
	"series-rels",
	"url-rels",
	"work-rels",
	"instrument-rels",
}

var tagIncludes = []string{"tags", "user-tags", "ratings", "user-ratings"}

// entityInfo describes one entity's valid include options. Browse includes
// are a subset of the lookup includes; the web service accepts fewer
// subqueries when listing linked entities.
type entityInfo struct {
	lookupIncludes []string
	browseIncludes []string
}

var entities = map[string]entityInfo{
	"annotation": {},
	"artist": {
		lookupIncludes: withRels(
			"recordings", "releases", "release-groups", "works",
			"various-artists", "discids", "media", "isrcs",
			"aliases", "annotation", "tags", "user-tags", "ratings", "user-ratings",
		),
		browseIncludes: []string{"aliases", "tags", "ratings", "user-tags", "user-ratings"},
	},
	"label": {
		lookupIncludes: withRels(
			"releases", "discids", "media",
			"aliases", "annotation", "tags", "user-tags", "ratings", "user-ratings",
		),
		browseIncludes: []string{"aliases", "tags", "ratings", "user-tags", "user-ratings"},
	},
	"recording": {
		lookupIncludes: withRels(
			"artists", "releases", "discids", "media", "artist-credits", "isrcs",
			"annotation", "aliases", "tags", "user-tags", "ratings", "user-ratings",
		),
		browseIncludes: []string{"artist-credits", "isrcs", "tags", "ratings", "user-tags", "user-ratings"},
	},
	"release": {
		lookupIncludes: withRels(append([]string{
			"artists", "labels", "recordings", "release-groups", "media",
			"artist-credits", "discids", "puids", "isrcs",
			"recording-level-rels", "work-level-rels", "annotation", "aliases",
		}, tagIncludes...)...),
		browseIncludes: []string{"artist-credits", "labels", "recordings", "isrcs", "release-groups", "media", "discids"},
	},
	"release-group": {
		lookupIncludes: withRels(
			"artists", "releases", "discids", "media", "artist-credits",
			"annotation", "aliases", "tags", "user-tags", "ratings", "user-ratings",
		),
		browseIncludes: []string{"artist-credits", "tags", "ratings", "user-tags", "user-ratings"},
	},
	"work": {
		lookupIncludes: withRels(
			"artists", "aliases", "annotation",
			"tags", "user-tags", "ratings", "user-ratings",
		),
	},
	"url": {
		lookupIncludes: withRels(),
	},
}

func withRels(includes ...string) []string {
	return append(includes, relationIncludes...)
}

// Release filter dimensions. Only entities with a release context accept
// them; see filterParams.
var (
	validReleaseStatuses = []string{
		"official", "promotion", "bootleg", "pseudo-release",
	}

	validReleaseTypes = []string{
		"nat", "album", "single", "ep", "broadcast", "compilation",
		"soundtrack", "spokenword", "interview", "audiobook", "live",
		"remix", "dj-mix", "mixtape/street", "other",
	}
)
