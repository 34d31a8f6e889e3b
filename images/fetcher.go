package images

import (
	"context"
	"fmt"

	"deckgenie/content"
)

// ImageSource is the remote search backend the fetcher pulls from.
type ImageSource interface {
	FetchImage(ctx context.Context, query string) ([]byte, error)
}

// Fetcher turns a slide into image bytes: query resolution, bounded remote
// retries, then a rendered placeholder.
type Fetcher struct {
	source          ImageSource
	queries         *QueryGenerator
	usePlaceholders bool
	retries         int
	log             func(string)
}

// NewFetcher builds a fetcher. source may be nil when usePlaceholders is
// set. retries <= 0 selects 3 attempts. log may be nil.
func NewFetcher(source ImageSource, queries *QueryGenerator, usePlaceholders bool, retries int, log func(string)) *Fetcher {
	if retries <= 0 {
		retries = 3
	}
	if queries == nil {
		queries = NewQueryGenerator(nil, log)
	}
	return &Fetcher{
		source:          source,
		queries:         queries,
		usePlaceholders: usePlaceholders,
		retries:         retries,
		log:             log,
	}
}

func (f *Fetcher) logf(format string, args ...interface{}) {
	if f.log != nil {
		f.log(fmt.Sprintf(format, args...))
	}
}

// FetchForSlide returns image bytes for a slide type. A placeholder comes
// back when placeholders are forced or every remote attempt fails; the
// result is nil only when even placeholder rendering fails.
func (f *Fetcher) FetchForSlide(ctx context.Context, slideType string, bundle *content.Bundle, searchTerms []string) []byte {
	if f.usePlaceholders || f.source == nil {
		return f.placeholder(slideType)
	}

	query := f.queries.ResolveQuery(ctx, slideType, bundle, searchTerms)
	f.logf("Using image search query: %s", query)

	for attempt := 1; attempt <= f.retries; attempt++ {
		data, err := f.source.FetchImage(ctx, query)
		if err == nil && len(data) > 0 {
			return data
		}
		if err != nil {
			f.logf("Image fetch attempt %d/%d failed: %v", attempt, f.retries, err)
		}
	}

	f.logf("Using placeholder image for %s after %d failed attempts", slideType, f.retries)
	return f.placeholder(slideType)
}

func (f *Fetcher) placeholder(slideType string) []byte {
	data, err := PlaceholderImage(slideType)
	if err != nil {
		f.logf("Placeholder rendering failed for %s: %v", slideType, err)
		return nil
	}
	return data
}
