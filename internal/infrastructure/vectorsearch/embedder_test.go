package vectorsearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmbedder_RequiresModel(t *testing.T) {
	_, err := NewEmbedder(EmbedderConfig{APIKey: "k"})
	assert.Error(t, err)
}

func TestEmbedder_Embed(t *testing.T) {
	t.Run("returns the single embedding", func(t *testing.T) {
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/embeddings", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"object":"list","data":[{"object":"embedding","index":0,"embedding":[0.5,-0.25,1]}],"model":"text-embedding-004"}`))
		}))
		defer server.Close()

		e, err := NewEmbedder(EmbedderConfig{BaseURL: server.URL, APIKey: "test-key", Model: "text-embedding-004"})
		require.NoError(t, err)

		vec, err := e.Embed(context.Background(), "kit kat")
		require.NoError(t, err)

		assert.Equal(t, []float32{0.5, -0.25, 1}, vec)
		assert.Equal(t, "text-embedding-004", gotBody["model"])
		assert.Equal(t, []any{"kit kat"}, gotBody["input"])
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid key","type":"auth"}}`))
		}))
		defer server.Close()

		e, err := NewEmbedder(EmbedderConfig{BaseURL: server.URL, APIKey: "bad", Model: "m"})
		require.NoError(t, err)

		_, err = e.Embed(context.Background(), "q")
		assert.Error(t, err)
	})

	t.Run("empty data", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"object":"list","data":[]}`))
		}))
		defer server.Close()

		e, err := NewEmbedder(EmbedderConfig{BaseURL: server.URL, APIKey: "k", Model: "m"})
		require.NoError(t, err)

		_, err = e.Embed(context.Background(), "q")
		assert.Error(t, err)
	})
}
