package musicbrainz_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsieber/go-musicbrainz"
)

func TestResponseErrors(t *testing.T) {
	t.Run("authentication error", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`<error><text>Your credentials could not be verified.</text></error>`))
		})

		ctx := context.Background()
		_, err := client.Artists.Get(ctx, artistMBID, nil)
		require.Error(t, err)

		var authErr *musicbrainz.AuthenticationError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
		assert.Equal(t, "Your credentials could not be verified.", authErr.Message)

		// The concrete types also match the base response error.
		var respErr *musicbrainz.ResponseError
		require.ErrorAs(t, err, &respErr)
		assert.Equal(t, http.StatusUnauthorized, respErr.StatusCode)
	})

	t.Run("bad request carries service message", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`<error><text>Invalid mbid.</text><text>For usage, please see the documentation.</text></error>`))
		})

		ctx := context.Background()
		_, err := client.Artists.Get(ctx, "not-a-uuid", nil)
		require.Error(t, err)

		var respErr *musicbrainz.ResponseError
		require.ErrorAs(t, err, &respErr)
		assert.Equal(t, http.StatusBadRequest, respErr.StatusCode)
		assert.Contains(t, respErr.Message, "Invalid mbid.")
	})

	t.Run("non-XML error body falls back to raw text", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("rate limit exceeded"))
		})

		ctx := context.Background()
		_, err := client.Artists.Get(ctx, artistMBID, nil)
		require.Error(t, err)

		var respErr *musicbrainz.ResponseError
		require.ErrorAs(t, err, &respErr)
		assert.Equal(t, http.StatusServiceUnavailable, respErr.StatusCode)
		assert.Equal(t, "rate limit exceeded", respErr.Message)
	})

	t.Run("network failure wrapped in NetworkError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		serverURL := server.URL
		server.Close()

		client, err := musicbrainz.NewClient(
			musicbrainz.WithUserAgent("testapp", "0.1", ""),
			musicbrainz.WithBaseURL(serverURL),
			musicbrainz.WithoutRateLimit(),
		)
		require.NoError(t, err)

		ctx := context.Background()
		_, err = client.Artists.Get(ctx, artistMBID, nil)
		require.Error(t, err)

		var netErr *musicbrainz.NetworkError
		require.ErrorAs(t, err, &netErr)
		assert.NotNil(t, errors.Unwrap(netErr))
	})
}
