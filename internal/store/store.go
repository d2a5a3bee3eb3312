// Package store talks to the Supabase-hosted track database over its REST
// interface: paged reads of the video intelligence table, row counts, and
// per-track tier updates.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/voyomusic/voyo-ops/internal/canon"
)

const defaultTable = "video_intelligence"

// Config carries the connection settings for a Supabase project.
type Config struct {
	URL   string
	Key   string
	Table string
}

// Client is a minimal Supabase REST client scoped to the track table.
// Safe for concurrent use.
type Client struct {
	baseURL string
	key     string
	table   string
	http    *http.Client
}

// New builds a client. The service key is sent both as the apikey header
// and as a bearer token, which is what PostgREST expects.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("store: missing Supabase URL")
	}
	if cfg.Key == "" {
		return nil, fmt.Errorf("store: missing Supabase key")
	}
	table := cfg.Table
	if table == "" {
		table = defaultTable
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		key:     cfg.Key,
		table:   table,
		http: &http.Client{
			Transport: newRetryTransport(http.DefaultTransport, defaultRetryPolicy),
			Timeout:   60 * time.Second,
		},
	}, nil
}

// trackRow mirrors one row of the track table. Older rows carry the video
// id under different column names and may have a null view count.
type trackRow struct {
	YouTubeID    string `json:"youtube_id"`
	VideoID      string `json:"video_id"`
	ID           string `json:"id"`
	Title        string `json:"title"`
	Artist       string `json:"artist"`
	ChannelTitle string `json:"channel_title"`
	ViewCount    *int64 `json:"view_count"`
}

func (row trackRow) toTrack() canon.Track {
	id := row.YouTubeID
	if id == "" {
		id = row.VideoID
	}
	if id == "" {
		id = row.ID
	}
	var views int64
	if row.ViewCount != nil {
		views = *row.ViewCount
	}
	return canon.Track{
		ID:        id,
		Title:     row.Title,
		Artist:    row.Artist,
		Channel:   row.ChannelTitle,
		ViewCount: views,
	}
}

// FetchTracks returns one page of tracks.
func (c *Client) FetchTracks(ctx context.Context, offset, limit int) ([]canon.Track, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))

	req, err := c.newRequest(ctx, http.MethodGet, q, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store: fetch tracks: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, httpError("fetch tracks", resp)
	}

	var rows []trackRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("store: decode tracks: %w", err)
	}
	tracks := make([]canon.Track, len(rows))
	for i, row := range rows {
		tracks[i] = row.toTrack()
	}
	return tracks, nil
}

// Count returns the total number of rows in the track table. It issues a
// HEAD request with exact counting and reads the Content-Range trailer,
// so no row data crosses the wire.
func (c *Client) Count(ctx context.Context) (int, error) {
	q := url.Values{}
	q.Set("select", "count")

	req, err := c.newRequest(ctx, http.MethodHead, q, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Prefer", "count=exact")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return 0, httpError("count", resp)
	}

	// Content-Range looks like "0-999/12345"; the total follows the slash.
	cr := resp.Header.Get("Content-Range")
	idx := strings.LastIndex(cr, "/")
	if idx < 0 {
		return 0, fmt.Errorf("store: count: malformed Content-Range %q", cr)
	}
	total, err := strconv.Atoi(cr[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("store: count: malformed Content-Range %q", cr)
	}
	return total, nil
}

// TierUpdate is one tier correction to push back to the database.
type TierUpdate struct {
	VideoID string
	Tier    canon.Tier
	Country string
}

// UpdateTier patches a single track row with its resolved tier and the
// canon level that tier implies for an unviewed track.
func (c *Client) UpdateTier(ctx context.Context, u TierUpdate) error {
	payload := map[string]any{
		"artist_tier": u.Tier,
		"canon_level": canon.LevelFor(u.Tier, 0),
	}
	if u.Country != "" {
		payload["artist_country"] = u.Country
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("store: encode tier update: %w", err)
	}

	q := url.Values{}
	q.Set("youtube_id", "eq."+u.VideoID)

	req, err := c.newRequest(ctx, http.MethodPatch, q, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("store: update tier %s: %w", u.VideoID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return httpError("update tier "+u.VideoID, resp)
	}
	io.Copy(io.Discard, resp.Body) //nolint:errcheck
	return nil
}

func (c *Client) newRequest(ctx context.Context, method string, q url.Values, body io.Reader) (*http.Request, error) {
	endpoint := c.baseURL + "/rest/v1/" + c.table + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("store: build request: %w", err)
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	return req, nil
}

func httpError(op string, resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := strings.TrimSpace(string(snippet))
	if msg == "" {
		return fmt.Errorf("store: %s: HTTP %d", op, resp.StatusCode)
	}
	return fmt.Errorf("store: %s: HTTP %d: %s", op, resp.StatusCode, msg)
}
