package images

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckgenie/content"
	"deckgenie/session"
)

// scriptedFetcher returns canned images per slide type, cycling through the
// script so repeated calls can produce fresh bytes.
type scriptedFetcher struct {
	script map[string][][]byte
	calls  int
}

func (s *scriptedFetcher) FetchForSlide(ctx context.Context, slideType string, bundle *content.Bundle, searchTerms []string) []byte {
	s.calls++
	queue := s.script[slideType]
	if len(queue) == 0 {
		return nil
	}
	data := queue[0]
	if len(queue) > 1 {
		s.script[slideType] = queue[1:]
	}
	return data
}

func img(tag string) []byte { return []byte("image-" + tag) }

func TestManagerAcquire(t *testing.T) {
	ctx := context.Background()

	t.Run("cached and unused is reused and marked", func(t *testing.T) {
		store := session.NewMemoryStore()
		m := NewManager(&scriptedFetcher{}, store, nil)
		m.cache(content.SlideProblem, img("cached"))

		got := m.Acquire(ctx, content.SlideProblem, nil, nil, true)
		assert.Equal(t, img("cached"), got)

		// Same image is now used; a fresh run must fetch a different one.
		_, used := m.used[contentHash(img("cached"))]
		assert.True(t, used)
	})

	t.Run("cached and used replays for cached content", func(t *testing.T) {
		store := session.NewMemoryStore()
		fetcher := &scriptedFetcher{}
		m := NewManager(fetcher, store, nil)
		m.cache(content.SlideProblem, img("cached"))
		m.used[contentHash(img("cached"))] = struct{}{}

		got := m.Acquire(ctx, content.SlideProblem, nil, nil, false)
		assert.Equal(t, img("cached"), got)
		assert.Zero(t, fetcher.calls, "replay must not hit the fetcher")
	})

	t.Run("cached and used fetches unique for fresh content", func(t *testing.T) {
		store := session.NewMemoryStore()
		fetcher := &scriptedFetcher{script: map[string][][]byte{
			content.SlideProblem: {img("new")},
		}}
		m := NewManager(fetcher, store, nil)
		m.cache(content.SlideProblem, img("cached"))
		m.used[contentHash(img("cached"))] = struct{}{}

		got := m.Acquire(ctx, content.SlideProblem, nil, nil, true)
		assert.Equal(t, img("new"), got)

		// The replacement is cached for next time.
		cached, ok := m.cachedFor(content.SlideProblem)
		require.True(t, ok)
		assert.Equal(t, img("new"), cached)
	})

	t.Run("uncached fresh content fetches and caches", func(t *testing.T) {
		store := session.NewMemoryStore()
		fetcher := &scriptedFetcher{script: map[string][][]byte{
			content.SlideSolution: {img("solution")},
		}}
		m := NewManager(fetcher, store, nil)

		got := m.Acquire(ctx, content.SlideSolution, nil, nil, true)
		assert.Equal(t, img("solution"), got)

		cached, ok := m.cachedFor(content.SlideSolution)
		require.True(t, ok)
		assert.Equal(t, img("solution"), cached)
	})

	t.Run("uncached cache replay stays imageless", func(t *testing.T) {
		fetcher := &scriptedFetcher{script: map[string][][]byte{
			content.SlideSolution: {img("solution")},
		}}
		m := NewManager(fetcher, session.NewMemoryStore(), nil)

		got := m.Acquire(ctx, content.SlideSolution, nil, nil, false)
		assert.Nil(t, got)
		assert.Zero(t, fetcher.calls)
	})

	t.Run("duplicate-only fetches give up after three tries", func(t *testing.T) {
		dup := img("duplicate")
		fetcher := &scriptedFetcher{script: map[string][][]byte{
			content.SlideMarket: {dup},
		}}
		var logged []string
		m := NewManager(fetcher, session.NewMemoryStore(), func(msg string) { logged = append(logged, msg) })
		m.used[contentHash(dup)] = struct{}{}

		got := m.Acquire(ctx, content.SlideMarket, nil, nil, true)
		assert.Nil(t, got)
		assert.Equal(t, 3, fetcher.calls)
		assert.NotEmpty(t, logged)
	})

	t.Run("one deck never repeats an image", func(t *testing.T) {
		fetcher := &scriptedFetcher{script: map[string][][]byte{}}
		slideTypes := []string{
			content.SlideProblem, content.SlideSolution, content.SlideMarket,
		}
		for i, st := range slideTypes {
			fetcher.script[st] = [][]byte{img(fmt.Sprint(i))}
		}

		m := NewManager(fetcher, session.NewMemoryStore(), nil)
		seen := make(map[string]struct{})
		for _, st := range slideTypes {
			data := m.Acquire(ctx, st, nil, nil, true)
			require.NotNil(t, data)
			hash := contentHash(data)
			_, dup := seen[hash]
			require.False(t, dup, "image repeated for %s", st)
			seen[hash] = struct{}{}
		}
	})
}
