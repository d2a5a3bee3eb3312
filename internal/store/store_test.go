package store

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(t *testing.T, fn roundTripFunc) *Client {
	t.Helper()
	c, err := New(Config{URL: "https://example.supabase.co", Key: "test-key"})
	if err != nil {
		t.Fatal(err)
	}
	c.http = &http.Client{Transport: fn}
	return c
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestFetchTracks(t *testing.T) {
	var gotURL, gotKey, gotAuth string
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		gotURL = req.URL.String()
		gotKey = req.Header.Get("apikey")
		gotAuth = req.Header.Get("Authorization")
		return jsonResponse(200, `[
			{"youtube_id": "abc", "title": "Song A", "artist": "Artist A", "channel_title": "Chan", "view_count": 42},
			{"video_id": "def", "title": "Song B", "artist": "Artist B", "view_count": null},
			{"id": "ghi", "title": "Song C", "artist": "Artist C"}
		]`), nil
	})

	tracks, err := client.FetchTracks(context.Background(), 100, 50)
	if err != nil {
		t.Fatalf("FetchTracks: %v", err)
	}
	if len(tracks) != 3 {
		t.Fatalf("got %d tracks", len(tracks))
	}

	if !strings.Contains(gotURL, "/rest/v1/video_intelligence?") {
		t.Errorf("url = %q", gotURL)
	}
	if !strings.Contains(gotURL, "offset=100") || !strings.Contains(gotURL, "limit=50") {
		t.Errorf("pagination missing from url %q", gotURL)
	}
	if gotKey != "test-key" || gotAuth != "Bearer test-key" {
		t.Errorf("auth headers = %q / %q", gotKey, gotAuth)
	}

	if tracks[0].ID != "abc" || tracks[0].ViewCount != 42 || tracks[0].Channel != "Chan" {
		t.Errorf("track 0 = %+v", tracks[0])
	}
	// Fallback id columns and null view counts.
	if tracks[1].ID != "def" || tracks[1].ViewCount != 0 {
		t.Errorf("track 1 = %+v", tracks[1])
	}
	if tracks[2].ID != "ghi" {
		t.Errorf("track 2 = %+v", tracks[2])
	}
}

func TestFetchTracksHTTPError(t *testing.T) {
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(401, `{"message": "bad key"}`), nil
	})
	_, err := client.FetchTracks(context.Background(), 0, 10)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error = %v", err)
	}
}

func TestCount(t *testing.T) {
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodHead {
			t.Errorf("method = %s, want HEAD", req.Method)
		}
		if req.Header.Get("Prefer") != "count=exact" {
			t.Errorf("Prefer = %q", req.Header.Get("Prefer"))
		}
		resp := jsonResponse(206, "")
		resp.Header.Set("Content-Range", "0-999/12345")
		return resp, nil
	})

	total, err := client.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if total != 12345 {
		t.Errorf("total = %d, want 12345", total)
	}
}

func TestCountMalformedRange(t *testing.T) {
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(200, "")
		resp.Header.Set("Content-Range", "garbage")
		return resp, nil
	})
	if _, err := client.Count(context.Background()); err == nil {
		t.Fatal("expected error for malformed Content-Range")
	}
}

func TestUpdateTier(t *testing.T) {
	var gotMethod, gotQuery, gotBody, gotPrefer string
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		gotMethod = req.Method
		gotQuery = req.URL.RawQuery
		gotPrefer = req.Header.Get("Prefer")
		b, _ := io.ReadAll(req.Body)
		gotBody = string(b)
		return jsonResponse(204, ""), nil
	})

	err := client.UpdateTier(context.Background(), TierUpdate{
		VideoID: "abc123", Tier: "A", Country: "NG",
	})
	if err != nil {
		t.Fatalf("UpdateTier: %v", err)
	}
	if gotMethod != http.MethodPatch {
		t.Errorf("method = %s", gotMethod)
	}
	if !strings.Contains(gotQuery, "youtube_id=eq.abc123") {
		t.Errorf("query = %q", gotQuery)
	}
	if gotPrefer != "return=minimal" {
		t.Errorf("Prefer = %q", gotPrefer)
	}
	if !strings.Contains(gotBody, `"artist_tier":"A"`) {
		t.Errorf("body = %q", gotBody)
	}
	// A-tier with no views maps to the ESSENTIAL floor.
	if !strings.Contains(gotBody, `"canon_level":"ESSENTIAL"`) {
		t.Errorf("body = %q", gotBody)
	}
	if !strings.Contains(gotBody, `"artist_country":"NG"`) {
		t.Errorf("body = %q", gotBody)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Config{Key: "k"}); err == nil {
		t.Error("missing URL accepted")
	}
	if _, err := New(Config{URL: "https://x"}); err == nil {
		t.Error("missing key accepted")
	}
}
