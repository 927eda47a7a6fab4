package musicbrainz_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsieber/go-musicbrainz"
)

const artistMBID = "c5c2ea1c-4bde-4f4d-bd0b-47b200bf99d6"

const artistXML = `<?xml version="1.0" encoding="UTF-8"?>
<metadata xmlns="http://musicbrainz.org/ns/mmd-2.0#">
  <artist id="c5c2ea1c-4bde-4f4d-bd0b-47b200bf99d6" type="Group">
    <name>The Example Band</name>
    <sort-name>Example Band, The</sort-name>
    <country>GB</country>
  </artist>
</metadata>`

func setupTestServer(t *testing.T, handler http.HandlerFunc, opts ...musicbrainz.ClientOption) *musicbrainz.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]musicbrainz.ClientOption{
		musicbrainz.WithUserAgent("testapp", "0.1", ""),
		musicbrainz.WithBaseURL(server.URL),
		musicbrainz.WithoutRateLimit(),
	}, opts...)

	client, err := musicbrainz.NewClient(opts...)
	require.NoError(t, err)

	return client
}

func TestArtistService_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/ws/2/artist/"+artistMBID, r.URL.Path)
			assert.Equal(t, "aliases,tags", r.URL.Query().Get("inc"))
			assert.Contains(t, r.Header.Get("User-Agent"), "testapp/0.1")
			assert.Equal(t, "application/xml", r.Header.Get("Accept"))

			w.Header().Set("Content-Type", "application/xml")
			_, err := w.Write([]byte(artistXML))
			assert.NoError(t, err)
		})

		ctx := context.Background()
		result, err := client.Artists.Get(ctx, artistMBID, &musicbrainz.LookupOptions{
			Includes: []string{"aliases", "tags"},
		})
		require.NoError(t, err)

		artist, ok := result["artist"].(map[string]any)
		require.True(t, ok, "result should hold an artist map")
		assert.Equal(t, artistMBID, artist["id"])
		assert.Equal(t, "Group", artist["type"])
		assert.Equal(t, "The Example Band", artist["name"])
		assert.Equal(t, "GB", artist["country"])
	})

	t.Run("invalid include rejected before any request", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("should not make a request with an invalid include")
		})

		ctx := context.Background()
		_, err := client.Artists.Get(ctx, artistMBID, &musicbrainz.LookupOptions{
			Includes: []string{"bogus"},
		})
		require.Error(t, err)

		var validationErr *musicbrainz.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("duplicate include rejected", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("should not make a request with duplicate includes")
		})

		ctx := context.Background()
		_, err := client.Artists.Get(ctx, artistMBID, &musicbrainz.LookupOptions{
			Includes: []string{"aliases", "aliases"},
		})
		require.Error(t, err)

		var validationErr *musicbrainz.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("empty MBID returns validation error", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("should not make a request with an empty MBID")
		})

		ctx := context.Background()
		_, err := client.Artists.Get(ctx, "", nil)
		require.Error(t, err)

		var validationErr *musicbrainz.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("not found", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`<error><text>Not Found</text></error>`))
		})

		ctx := context.Background()
		_, err := client.Artists.Get(ctx, "nonexistent", nil)
		require.Error(t, err)

		var notFoundErr *musicbrainz.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "artist", notFoundErr.Entity)
		assert.Equal(t, "nonexistent", notFoundErr.MBID)
	})
}

func TestLookupFilters(t *testing.T) {
	t.Run("status and type filters produce query params", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "releases", r.URL.Query().Get("inc"))
			assert.Equal(t, "official,promotion", r.URL.Query().Get("status"))
			assert.Equal(t, "album", r.URL.Query().Get("type"))

			_, err := w.Write([]byte(artistXML))
			assert.NoError(t, err)
		})

		ctx := context.Background()
		_, err := client.Artists.Get(ctx, artistMBID, &musicbrainz.LookupOptions{
			Includes:      []string{"releases"},
			ReleaseStatus: []string{"official", "promotion"},
			ReleaseType:   []string{"album"},
		})
		require.NoError(t, err)
	})

	t.Run("status filter without release context rejected", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("should not make a request with an unsupported filter")
		})

		ctx := context.Background()
		_, err := client.Artists.Get(ctx, artistMBID, &musicbrainz.LookupOptions{
			ReleaseStatus: []string{"official"},
		})
		require.Error(t, err)

		var validationErr *musicbrainz.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("unknown status value rejected", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("should not make a request with an unknown status value")
		})

		ctx := context.Background()
		_, err := client.Artists.Get(ctx, artistMBID, &musicbrainz.LookupOptions{
			Includes:      []string{"releases"},
			ReleaseStatus: []string{"imaginary"},
		})
		require.Error(t, err)

		var validationErr *musicbrainz.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("release lookup accepts status without includes", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ws/2/release/r1", r.URL.Path)
			assert.Equal(t, "official", r.URL.Query().Get("status"))

			_, err := w.Write([]byte(`<metadata><release id="r1"><title>T</title></release></metadata>`))
			assert.NoError(t, err)
		})

		ctx := context.Background()
		result, err := client.Releases.Get(ctx, "r1", &musicbrainz.LookupOptions{
			ReleaseStatus: []string{"official"},
		})
		require.NoError(t, err)

		release, ok := result["release"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "T", release["title"])
	})
}

func TestURLEncoding(t *testing.T) {
	t.Run("escapes special characters in the MBID path segment", func(t *testing.T) {
		var receivedRawPath string
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			receivedRawPath = r.URL.EscapedPath()
			_, err := w.Write([]byte(artistXML))
			assert.NoError(t, err)
		})

		ctx := context.Background()
		_, err := client.Artists.Get(ctx, "id/with?chars", nil)
		require.NoError(t, err)

		assert.Equal(t, "/ws/2/artist/id%2Fwith%3Fchars", receivedRawPath)
	})
}
