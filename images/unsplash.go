// Package images sources slide imagery: Unsplash search, LLM-assisted query
// generation, rendered placeholders, and a per-session cache that keeps one
// deck from repeating the same photo.
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	unsplashBaseURL = "https://api.unsplash.com"
	unsplashTimeout = 5 * time.Second
	unsplashPerPage = 5
)

// UnsplashClient talks to the Unsplash search API.
type UnsplashClient struct {
	accessKey string
	baseURL   string
	http      *http.Client
	pick      func(n int) int
	log       func(string)
}

// NewUnsplashClient builds a client with the standard 5 second timeout.
// log may be nil.
func NewUnsplashClient(accessKey string, log func(string)) *UnsplashClient {
	return &UnsplashClient{
		accessKey: accessKey,
		baseURL:   unsplashBaseURL,
		http:      &http.Client{Timeout: unsplashTimeout},
		pick:      rand.Intn,
		log:       log,
	}
}

type searchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// SafeQuery rewrites a raw search query so the API call is likely to
// succeed: placeholder tokens replaced, too-short queries widened.
func SafeQuery(query string) string {
	q := strings.TrimSpace(strings.ReplaceAll(query, "[Product Name]", "product"))
	if len(q) < 3 {
		return "business professional"
	}
	return q
}

// FetchImage searches Unsplash for query and downloads one of the top
// results, chosen at random for variety. Returns an error when no key is
// configured or no results match.
func (c *UnsplashClient) FetchImage(ctx context.Context, query string) ([]byte, error) {
	if c.accessKey == "" {
		return nil, fmt.Errorf("unsplash: no access key configured")
	}

	params := url.Values{}
	params.Set("query", SafeQuery(query))
	params.Set("orientation", "landscape")
	params.Set("per_page", fmt.Sprint(unsplashPerPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/search/photos?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash: search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unsplash: search status %d: %s", resp.StatusCode, body)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("unsplash: decode search: %w", err)
	}
	if len(sr.Results) == 0 {
		return nil, fmt.Errorf("unsplash: no results for %q", query)
	}

	chosen := sr.Results[c.pick(len(sr.Results))]
	return c.download(ctx, chosen.URLs.Regular)
}

func (c *UnsplashClient) download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash: download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash: download status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unsplash: read image: %w", err)
	}
	if c.log != nil {
		c.log(fmt.Sprintf("Fetched image (%d bytes) for query", len(data)))
	}
	return data, nil
}
