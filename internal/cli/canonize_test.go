package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/voyomusic/voyo-ops/internal/canon"
	"github.com/voyomusic/voyo-ops/internal/output"
)

func TestLoadTrackFileArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.json")
	data := `[
		{"id": "abc123", "title": "Last Last", "artist": "Burna Boy", "view_count": 150000000},
		{"id": "def456", "title": "Water", "artist": "Tyla", "channel": "Tyla", "view_count": 90000000}
	]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	tracks, err := loadTrackFile(path)
	if err != nil {
		t.Fatalf("loadTrackFile: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}
	if tracks[0].ID != "abc123" || tracks[0].ViewCount != 150000000 {
		t.Errorf("track[0] = %+v", tracks[0])
	}
	if tracks[1].Channel != "Tyla" {
		t.Errorf("track[1].Channel = %q", tracks[1].Channel)
	}
}

func TestLoadTrackFileDocument(t *testing.T) {
	classifier := canon.NewClassifier(nil)
	results := classifier.ClassifyBatch([]canon.Track{
		{ID: "abc123", Title: "Ye", Artist: "Burna Boy", ViewCount: 200000000},
	})
	doc := output.Document{
		Version:     output.DocumentVersion,
		GeneratedAt: time.Now().UTC(),
		TotalTracks: len(results),
		Statistics:  canon.Summarize(results),
		Tracks:      results,
	}
	path := filepath.Join(t.TempDir(), "canonized.json")
	if err := output.WriteDocument(path, doc); err != nil {
		t.Fatal(err)
	}

	tracks, err := loadTrackFile(path)
	if err != nil {
		t.Fatalf("loadTrackFile: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(tracks))
	}
	if tracks[0].ID != "abc123" || tracks[0].Artist != "Burna Boy" || tracks[0].ViewCount != 200000000 {
		t.Errorf("track = %+v", tracks[0])
	}
}

func TestLoadTrackFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadTrackFile(path); err == nil {
		t.Error("malformed file accepted")
	}
	if _, err := loadTrackFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[canon.ContentType]int{"remix": 1, "live": 2, "original": 3}
	got := sortedKeys(m)
	want := []canon.ContentType{"live", "original", "remix"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sortedKeys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
