package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type usageRecord struct {
	URL  string `json:"url"`
	Used bool   `json:"used"`
}

func runStoreSuite(t *testing.T, s Store) {
	t.Run("get missing", func(t *testing.T) {
		var out usageRecord
		assert.ErrorIs(t, s.Get("nope", &out), ErrNotFound)
	})

	t.Run("set get roundtrip", func(t *testing.T) {
		in := usageRecord{URL: "https://images.example/a.jpg", Used: true}
		require.NoError(t, s.Set("images/abc", in))

		var out usageRecord
		require.NoError(t, s.Get("images/abc", &out))
		assert.Equal(t, in, out)
	})

	t.Run("set replaces", func(t *testing.T) {
		require.NoError(t, s.Set("k", usageRecord{URL: "one"}))
		require.NoError(t, s.Set("k", usageRecord{URL: "two"}))
		var out usageRecord
		require.NoError(t, s.Get("k", &out))
		assert.Equal(t, "two", out.URL)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, s.Set("gone", usageRecord{}))
		require.NoError(t, s.Delete("gone"))
		require.NoError(t, s.Delete("gone"))
		var out usageRecord
		assert.ErrorIs(t, s.Get("gone", &out), ErrNotFound)
	})

	t.Run("keys by prefix", func(t *testing.T) {
		require.NoError(t, s.Set("images/one", usageRecord{}))
		require.NoError(t, s.Set("images/two", usageRecord{}))
		require.NoError(t, s.Set("decks/one", usageRecord{}))

		keys, err := s.Keys("images/")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"images/abc", "images/one", "images/two"}, keys)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	runStoreSuite(t, s)

	t.Run("survives reopen", func(t *testing.T) {
		require.NoError(t, s.Set("persist/me", usageRecord{URL: "kept"}))
		require.NoError(t, s.Close())

		re, err := NewSQLiteStore(path)
		require.NoError(t, err)
		defer re.Close()

		var out usageRecord
		require.NoError(t, re.Get("persist/me", &out))
		assert.Equal(t, "kept", out.URL)
	})
}
