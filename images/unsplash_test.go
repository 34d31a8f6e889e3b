package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeQuery(t *testing.T) {
	assert.Equal(t, "product analytics", SafeQuery("[Product Name] analytics"))
	assert.Equal(t, "business professional", SafeQuery(""))
	assert.Equal(t, "business professional", SafeQuery(" ai"))
	assert.Equal(t, "cloud security", SafeQuery("  cloud security  "))
}

func TestUnsplashFetchImage(t *testing.T) {
	imageBody := []byte("fake-jpeg-bytes")

	var gotAuth, gotQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("/image.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Write(imageBody)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/search/photos", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("query")
		w.Write([]byte(`{"results": [
			{"urls": {"regular": "` + server.URL + `/image.jpg"}},
			{"urls": {"regular": "` + server.URL + `/image.jpg"}}
		]}`))
	})

	c := NewUnsplashClient("test-key", nil)
	c.baseURL = server.URL
	c.pick = func(n int) int { return 0 }

	data, err := c.FetchImage(context.Background(), "[Product Name] security")
	require.NoError(t, err)
	assert.Equal(t, imageBody, data)
	assert.Equal(t, "Client-ID test-key", gotAuth)
	assert.Equal(t, "product security", gotQuery)
}

func TestUnsplashFetchImageErrors(t *testing.T) {
	t.Run("no access key", func(t *testing.T) {
		c := NewUnsplashClient("", nil)
		_, err := c.FetchImage(context.Background(), "anything")
		assert.Error(t, err)
	})

	t.Run("empty results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results": []}`))
		}))
		defer server.Close()

		c := NewUnsplashClient("key", nil)
		c.baseURL = server.URL
		_, err := c.FetchImage(context.Background(), "obscure query")
		assert.Error(t, err)
	})

	t.Run("api error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusForbidden)
		}))
		defer server.Close()

		c := NewUnsplashClient("key", nil)
		c.baseURL = server.URL
		_, err := c.FetchImage(context.Background(), "query")
		assert.ErrorContains(t, err, "403")
	})
}
