// Package llm implements the external classification layer on top of the
// Anthropic messages API. The model receives a numbered batch of tracks and
// returns per-track overrides; anything malformed or missing degrades to
// pattern-only classification upstream.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/voyomusic/voyo-ops/internal/canon"
)

const (
	defaultEndpoint = "https://api.anthropic.com/v1/messages"
	apiVersion      = "2023-06-01"
	defaultModel    = "claude-3-haiku-20240307"
	maxTokens       = 4096

	// BatchSize caps how many tracks go into one model call.
	BatchSize = 10
)

// Client classifies track batches via the messages API. Implements
// canon.Backend.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	http     *http.Client
}

// Option adjusts a Client.
type Option func(*Client)

// WithModel selects a non-default model.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithEndpoint points the client at a different API host.
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// New builds a client. The API key must be non-empty; callers decide
// whether to fall back to pattern-only mode when it is not configured.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("llm: missing API key")
	}
	c := &Client{
		apiKey:   apiKey,
		model:    defaultModel,
		endpoint: defaultEndpoint,
		http:     &http.Client{Timeout: 90 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// verdict is one track's classification as returned by the model. The
// track number is 1-based and maps back onto the batch by position.
type verdict struct {
	TrackNumber int `json:"track_number"`
	canon.Override
	Reasoning string `json:"reasoning"`
}

var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// ClassifyBatch sends up to BatchSize tracks to the model and returns a
// slice aligned with the input: overrides[i] is the model's verdict for
// tracks[i], or nil when the model skipped it.
func (c *Client) ClassifyBatch(ctx context.Context, tracks []canon.Track) ([]*canon.Override, error) {
	overrides := make([]*canon.Override, len(tracks))
	if len(tracks) == 0 {
		return overrides, nil
	}
	batch := tracks
	if len(batch) > BatchSize {
		batch = batch[:BatchSize]
	}

	body, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages:  []message{{Role: "user", Content: buildPrompt(batch)}},
	})
	if err != nil {
		return nil, fmt.Errorf("llm: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("llm: build request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("llm: classify batch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("llm: classify batch: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var mr messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return nil, fmt.Errorf("llm: decode response: %w", err)
	}
	if len(mr.Content) == 0 {
		return nil, fmt.Errorf("llm: empty response")
	}

	verdicts, err := parseVerdicts(mr.Content[0].Text)
	if err != nil {
		return nil, err
	}
	for i := range verdicts {
		idx := verdicts[i].TrackNumber - 1
		if idx < 0 || idx >= len(overrides) {
			continue
		}
		ov := verdicts[i].Override
		overrides[idx] = &ov
	}
	return overrides, nil
}

// parseVerdicts extracts the JSON array from the model text, tolerating
// prose around it.
func parseVerdicts(text string) ([]verdict, error) {
	raw := jsonArrayPattern.FindString(text)
	if raw == "" {
		return nil, fmt.Errorf("llm: no JSON array in response")
	}
	var verdicts []verdict
	if err := json.Unmarshal([]byte(raw), &verdicts); err != nil {
		return nil, fmt.Errorf("llm: parse verdicts: %w", err)
	}
	return verdicts, nil
}

func buildPrompt(tracks []canon.Track) string {
	var list strings.Builder
	for i, t := range tracks {
		title, artist := t.Title, t.Artist
		if title == "" {
			title = "Unknown"
		}
		if artist == "" {
			artist = "Unknown"
		}
		fmt.Fprintf(&list, "%d. %q by %s\n", i+1, title, artist)
	}

	return `You are an expert in African and Black diaspora music with deep knowledge of:
- African genres: Afrobeats, Amapiano, Highlife, Afro-fusion, Juju, Fuji, Bongo Flava, etc.
- Historical significance: Pan-African movement, liberation music, cultural preservation
- Artists: From legends (Fela Kuti, Miriam Makeba) to current stars (Burna Boy, Wizkid)
- Cultural context: Wedding songs, protest anthems, spiritual music, street anthems

For each track below, provide a JSON classification:

` + list.String() + `
For EACH track, output a JSON object with:
{
  "track_number": 1,
  "artist_tier": "A|B|C|D",
  "canon_level": "CORE|ESSENTIAL|DEEP_CUT|ARCHIVE|ECHO",
  "cultural_significance": {"historical": 0-5, "social": 0-5, "diasporic": 0-5, "preservational": 0-5},
  "aesthetic_merit": {"innovation": 0-5, "craft": 0-5, "influence": 0-5},
  "cultural_tags": ["anthem", "diaspora", ...],
  "aesthetic_tags": ["innovative", ...],
  "reasoning": "brief explanation"
}

Cultural tags must come from: anthem, revolution, liberation, protest, tradition, roots, motherland, pan-african, diaspora, migration, homecoming, bridge, street, ghetto, survival, wedding, festival, celebration, spiritual, prayer, healing.
Aesthetic tags must come from: innovative, virtuosic, influential, production, lyricism, arrangement, timeless.

Output as a JSON array. Be honest - if you don't know an artist, classify as D/ECHO.
Only output the JSON array, no other text.`
}
