package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/voyomusic/voyo-ops/internal/output"
)

type fakeFetcher struct {
	mu     sync.Mutex
	calls  []string
	errFor map[string]error
}

func (f *fakeFetcher) Fetch(ctx context.Context, videoID, dir string) (TrackSource, error) {
	f.mu.Lock()
	f.calls = append(f.calls, videoID)
	f.mu.Unlock()
	if err := f.errFor[videoID]; err != nil {
		return TrackSource{}, err
	}
	path := filepath.Join(dir, videoID+".webm")
	if err := os.WriteFile(path, []byte("source-audio"), 0o644); err != nil {
		return TrackSource{}, err
	}
	return TrackSource{Path: path, Title: "Song " + videoID, Artist: "Artist", Year: 2023}, nil
}

type fakeTranscoder struct {
	failOpus bool
}

func (t *fakeTranscoder) ToOpus(inputPath, outputPath string, bitrateKbps int) error {
	if t.failOpus {
		return errors.New("encoder exploded")
	}
	return os.WriteFile(outputPath, []byte(fmt.Sprintf("opus-%d", bitrateKbps)), 0o644)
}

func (t *fakeTranscoder) ToMP3(inputPath, outputPath string, bitrateKbps int) error {
	return os.WriteFile(outputPath, []byte("mp3"), 0o644)
}

type memStore struct {
	mu      sync.Mutex
	objects map[string]string // key -> content type
	headErr error
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string]string)}
}

func (s *memStore) Exists(key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.headErr != nil {
		return false, s.headErr
	}
	_, ok := s.objects[key]
	return ok, nil
}

func (s *memStore) Upload(path, key, contentType string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	s.mu.Lock()
	s.objects[key] = contentType
	s.mu.Unlock()
	return nil
}

type memTracker struct {
	mu   sync.Mutex
	keys []string
}

func (t *memTracker) MarkUploaded(videoID, format string, bitrate int, objectKey string, fileSize int64) error {
	t.mu.Lock()
	t.keys = append(t.keys, objectKey)
	t.mu.Unlock()
	return nil
}

func newTestPipeline(t *testing.T, fetcher Fetcher, trans Transcoder, store ObjectStore, tracker UploadTracker, opts Options) *Pipeline {
	t.Helper()
	opts.TempDir = t.TempDir()
	p, err := New(fetcher, trans, store, tracker, output.NewPrinter(true), opts)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRunPublishesRenditions(t *testing.T) {
	store := newMemStore()
	tracker := &memTracker{}
	p := newTestPipeline(t, &fakeFetcher{}, &fakeTranscoder{}, store, tracker, Options{Workers: 2})

	stats, err := p.Run(context.Background(), []string{"vid1", "vid2", "vid3"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Success != 3 || stats.Failed != 0 || stats.Skipped != 0 {
		t.Errorf("stats = %+v", stats)
	}

	for _, id := range []string{"vid1", "vid2", "vid3"} {
		for _, bitrate := range OpusBitrates {
			key := fmt.Sprintf("audio/%d/%s.opus", bitrate, id)
			if ct := store.objects[key]; ct != "audio/opus" {
				t.Errorf("object %s content type = %q", key, ct)
			}
		}
	}
	if len(tracker.keys) != 6 {
		t.Errorf("tracked %d uploads, want 6", len(tracker.keys))
	}
}

func TestRunSkipsExisting(t *testing.T) {
	store := newMemStore()
	store.objects["audio/128/vid1.opus"] = "audio/opus"
	fetcher := &fakeFetcher{}
	p := newTestPipeline(t, fetcher, &fakeTranscoder{}, store, nil, Options{Workers: 1})

	stats, err := p.Run(context.Background(), []string{"vid1", "vid2"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Skipped != 1 || stats.Success != 1 {
		t.Errorf("stats = %+v", stats)
	}
	for _, id := range fetcher.calls {
		if id == "vid1" {
			t.Error("skipped track was downloaded")
		}
	}
}

func TestRunCountsDownloadFailures(t *testing.T) {
	fetcher := &fakeFetcher{errFor: map[string]error{"bad": errors.New("age restricted")}}
	p := newTestPipeline(t, fetcher, &fakeTranscoder{}, newMemStore(), nil, Options{Workers: 1})

	stats, err := p.Run(context.Background(), []string{"bad", "ok"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Failed != 1 || stats.Success != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRunFailsWhenNothingPublishes(t *testing.T) {
	p := newTestPipeline(t, &fakeFetcher{}, &fakeTranscoder{failOpus: true}, newMemStore(), nil, Options{Workers: 1})
	stats, err := p.Run(context.Background(), []string{"vid1"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Failed != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRunMP3Rendition(t *testing.T) {
	store := newMemStore()
	p := newTestPipeline(t, &fakeFetcher{}, &fakeTranscoder{}, store, nil, Options{Workers: 1, MP3: true})

	stats, err := p.Run(context.Background(), []string{"vid1"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Success != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if ct := store.objects["audio/mp3/vid1.mp3"]; ct != "audio/mpeg" {
		t.Errorf("mp3 object content type = %q", ct)
	}
}

func TestRunEmptyInput(t *testing.T) {
	p := newTestPipeline(t, &fakeFetcher{}, &fakeTranscoder{}, newMemStore(), nil, Options{})
	stats, err := p.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Success+stats.Failed+stats.Skipped != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil, &fakeTranscoder{}, newMemStore(), nil, nil, Options{}); err == nil {
		t.Error("nil fetcher accepted")
	}
}

func TestBestAudioFormatHelpers(t *testing.T) {
	if got := mimeToExt(`audio/webm; codecs="opus"`); got != "webm" {
		t.Errorf("mimeToExt = %q", got)
	}
	if got := mimeToExt(`audio/mp4; codecs="mp4a.40.2"`); got != "m4a" {
		t.Errorf("mimeToExt = %q", got)
	}
	if got := mimeToExt("application/octet-stream"); got != "bin" {
		t.Errorf("mimeToExt = %q", got)
	}
}
