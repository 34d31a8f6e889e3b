package images

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"deckgenie/content"
	"deckgenie/session"
)

// cacheKeyPrefix namespaces per-slide image records in the session store.
const cacheKeyPrefix = "original_images_cache/"

// slideFetcher is what the manager needs from a Fetcher.
type slideFetcher interface {
	FetchForSlide(ctx context.Context, slideType string, bundle *content.Bundle, searchTerms []string) []byte
}

// cachedImage is the stored form of one slide's image.
type cachedImage struct {
	Data string `json:"data"` // base64 PNG/JPEG bytes
}

// Manager layers session caching and in-deck deduplication over a fetcher.
// One Manager serves one deck generation run; the used set resets with it.
type Manager struct {
	fetcher slideFetcher
	store   session.Store
	used    map[string]struct{}
	log     func(string)
}

// NewManager builds a manager over a fetcher and session store. store may
// be nil for cache-less operation. log may be nil.
func NewManager(fetcher slideFetcher, store session.Store, log func(string)) *Manager {
	return &Manager{
		fetcher: fetcher,
		store:   store,
		used:    make(map[string]struct{}),
		log:     log,
	}
}

func (m *Manager) logf(format string, args ...interface{}) {
	if m.log != nil {
		m.log(fmt.Sprintf(format, args...))
	}
}

// Reset clears the in-deck used set, for reusing a manager across runs.
func (m *Manager) Reset() {
	m.used = make(map[string]struct{})
}

func contentHash(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// Acquire returns the image for a slide, observing the session cache and
// the rule that one deck never shows the same image twice.
//
// When cached and unused this run, the cached image is reused and marked.
// When cached but already used, fresh content triggers a unique fetch while
// a cache replay just repeats the image. Without a cached image, only fresh
// content fetches; cache replays render imageless.
func (m *Manager) Acquire(ctx context.Context, slideType string, bundle *content.Bundle, searchTerms []string, freshContent bool) []byte {
	if cached, ok := m.cachedFor(slideType); ok {
		hash := contentHash(cached)
		if _, usedBefore := m.used[hash]; !usedBefore {
			m.used[hash] = struct{}{}
			return cached
		}
		if !freshContent {
			// Replaying a cached deck: repeating an image beats an API call.
			return cached
		}
		return m.fetchUnique(ctx, slideType, bundle, searchTerms)
	}

	if freshContent {
		return m.fetchUnique(ctx, slideType, bundle, searchTerms)
	}
	return nil
}

// fetchUnique tries up to three times for an image this deck has not shown
// yet, caching the winner. Exhaustion returns nil and the slide goes
// imageless.
func (m *Manager) fetchUnique(ctx context.Context, slideType string, bundle *content.Bundle, searchTerms []string) []byte {
	for attempt := 0; attempt < 3; attempt++ {
		data := m.fetcher.FetchForSlide(ctx, slideType, bundle, searchTerms)
		if len(data) == 0 {
			return nil
		}
		hash := contentHash(data)
		if _, usedBefore := m.used[hash]; usedBefore {
			continue
		}
		m.used[hash] = struct{}{}
		m.cache(slideType, data)
		return data
	}
	m.logf("No unique image found for %s, leaving slide imageless", slideType)
	return nil
}

func (m *Manager) cachedFor(slideType string) ([]byte, bool) {
	if m.store == nil {
		return nil, false
	}
	var rec cachedImage
	err := m.store.Get(cacheKeyPrefix+slideType, &rec)
	if errors.Is(err, session.ErrNotFound) {
		return nil, false
	}
	if err != nil {
		m.logf("Image cache read failed for %s: %v", slideType, err)
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(rec.Data)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

func (m *Manager) cache(slideType string, data []byte) {
	if m.store == nil {
		return
	}
	rec := cachedImage{Data: base64.StdEncoding.EncodeToString(data)}
	if err := m.store.Set(cacheKeyPrefix+slideType, rec); err != nil {
		m.logf("Image cache write failed for %s: %v", slideType, err)
	}
}
