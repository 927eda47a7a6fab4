package musicbrainz_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsieber/go-musicbrainz"
)

func TestMutations(t *testing.T) {
	t.Run("missing credentials fail before any request", func(t *testing.T) {
		callCount := 0
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			callCount++
		})

		ctx := context.Background()
		_, err := client.Delete(ctx, "collection/c1/releases/r1")
		require.Error(t, err)
		assert.ErrorIs(t, err, musicbrainz.ErrNoCredentials)
		assert.Equal(t, 0, callCount, "no request may be sent without credentials")
	})

	t.Run("delete attaches credentials and client parameter", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/ws/2/collection/c1/releases/r1", r.URL.Path)
			assert.Equal(t, "testapp-0.1", r.URL.Query().Get("client"))

			username, password, ok := r.BasicAuth()
			assert.True(t, ok, "request should carry basic auth")
			assert.Equal(t, "alice", username)
			assert.Equal(t, "hunter2", password)

			_, _ = w.Write([]byte(`<metadata/>`))
		}, musicbrainz.WithCredentials("alice", "hunter2"))

		ctx := context.Background()
		_, err := client.Delete(ctx, "collection/c1/releases/r1")
		require.NoError(t, err)
	})

	t.Run("put passes the verb through", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			_, _ = w.Write([]byte(`<metadata/>`))
		}, musicbrainz.WithCredentials("alice", "hunter2"))

		ctx := context.Background()
		_, err := client.Put(ctx, "collection/c1/releases/r1")
		require.NoError(t, err)
	})

	t.Run("post submits the body unchanged", func(t *testing.T) {
		submission := []byte(`<metadata><recording-list/></metadata>`)
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Contains(t, r.Header.Get("Content-Type"), "application/xml")

			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.Equal(t, submission, body)

			_, _ = w.Write([]byte(`<metadata/>`))
		}, musicbrainz.WithCredentials("alice", "hunter2"))

		ctx := context.Background()
		_, err := client.Post(ctx, "recording", submission)
		require.NoError(t, err)
	})
}
