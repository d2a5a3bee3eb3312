// Package musicbrainz enriches artist records from the public MusicBrainz
// web service. Lookups are best effort: callers treat a miss or an error as
// "no enrichment" rather than a failure.
package musicbrainz

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBase = "https://musicbrainz.org/ws/2"
	userAgent   = "VOYO-Music/1.0 (https://voyomusic.com)"

	// MusicBrainz asks anonymous clients to stay at or under 1 req/s.
	minInterval = time.Second
)

// Artist is the subset of MusicBrainz artist metadata the enrichment
// pipeline consumes.
type Artist struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Type    string `json:"type"`
	Area    struct {
		Name string `json:"name"`
	} `json:"area"`
	LifeSpan struct {
		Begin string `json:"begin"`
		End   string `json:"end"`
	} `json:"life-span"`
	Score int `json:"score"`
}

// Client queries the artist search endpoint, one request per second.
// Safe for concurrent use; concurrent callers are serialized by the limiter.
type Client struct {
	base    string
	http    *http.Client
	limiter chan struct{}
}

// New builds a rate-limited client.
func New() *Client {
	c := &Client{
		base:    defaultBase,
		http:    &http.Client{Timeout: 15 * time.Second},
		limiter: make(chan struct{}, 1),
	}
	c.limiter <- struct{}{}
	return c
}

// SearchArtist returns the best-scoring artist match for a name, or
// (nil, nil) when MusicBrainz has no candidate.
func (c *Client) SearchArtist(ctx context.Context, name string) (*Artist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("query", "artist:"+name)
	q.Set("fmt", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/artist/?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("musicbrainz: build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("musicbrainz: search %q: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, fmt.Errorf("musicbrainz: search %q: HTTP %d", name, resp.StatusCode)
	}

	var result struct {
		Artists []Artist `json:"artists"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("musicbrainz: decode search %q: %w", name, err)
	}
	if len(result.Artists) == 0 {
		return nil, nil
	}
	return &result.Artists[0], nil
}

// wait blocks until the rate limiter grants a slot, then schedules the next
// grant one interval later.
func (c *Client) wait(ctx context.Context) error {
	select {
	case <-c.limiter:
		time.AfterFunc(minInterval, func() { c.limiter <- struct{}{} })
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
