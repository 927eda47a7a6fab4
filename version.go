package musicbrainz

// Version is the library version reported in the User-Agent string.
const Version = "1.0.0"
