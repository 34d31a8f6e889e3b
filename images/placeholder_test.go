package images

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckgenie/content"
)

func TestPlaceholderImage(t *testing.T) {
	t.Run("renders a valid png at the expected size", func(t *testing.T) {
		data, err := PlaceholderImage(content.SlideProblem)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, placeholderWidth, img.Bounds().Dx())
		assert.Equal(t, placeholderHeight, img.Bounds().Dy())
	})

	t.Run("deterministic per slide type", func(t *testing.T) {
		a, err := PlaceholderImage(content.SlideMarket)
		require.NoError(t, err)
		b, err := PlaceholderImage(content.SlideMarket)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("distinct slide types render distinct images", func(t *testing.T) {
		a, err := PlaceholderImage(content.SlideProblem)
		require.NoError(t, err)
		b, err := PlaceholderImage(content.SlideSolution)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("unknown type uses the gray fallback without error", func(t *testing.T) {
		data, err := PlaceholderImage("mystery_slide")
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	})
}

func TestFetcherPlaceholderMode(t *testing.T) {
	f := NewFetcher(nil, nil, true, 3, nil)
	data := f.FetchForSlide(context.Background(), content.SlideProblem, nil, nil)
	assert.NotEmpty(t, data)
}

type failingSource struct{ calls int }

func (s *failingSource) FetchImage(ctx context.Context, query string) ([]byte, error) {
	s.calls++
	return nil, assert.AnError
}

func TestFetcherRetriesThenPlaceholder(t *testing.T) {
	src := &failingSource{}
	var logged []string
	f := NewFetcher(src, nil, false, 3, func(msg string) { logged = append(logged, msg) })

	data := f.FetchForSlide(context.Background(), content.SlideSolution, nil, []string{"cloud", "security"})
	assert.NotEmpty(t, data, "placeholder expected after exhausted retries")
	assert.Equal(t, 3, src.calls)
	assert.NotEmpty(t, logged)
}

type singleSource struct{ data []byte }

func (s *singleSource) FetchImage(ctx context.Context, query string) ([]byte, error) {
	return s.data, nil
}

func TestFetcherReturnsRemoteImage(t *testing.T) {
	want := []byte("remote-bytes")
	f := NewFetcher(&singleSource{data: want}, nil, false, 3, nil)
	got := f.FetchForSlide(context.Background(), content.SlideProblem, nil, nil)
	assert.Equal(t, want, got)
}
