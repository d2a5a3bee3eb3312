// Package pipeline turns classified tracks into CDN-ready audio: download
// from YouTube, transcode into bitrate renditions, upload to object storage.
// Tracks already present in the store are skipped, so reruns only do the
// remaining work.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/voyomusic/voyo-ops/internal/output"
)

// ObjectStore is the destination bucket. Satisfied by r2.Store.
type ObjectStore interface {
	Exists(key string) (bool, error)
	Upload(path, key, contentType string) error
}

// UploadTracker records finished renditions. Satisfied by catalog.DB.
type UploadTracker interface {
	MarkUploaded(videoID, format string, bitrate int, objectKey string, fileSize int64) error
}

// OpusBitrates are the delivery renditions, in kbps. The 128k rendition is
// the presence marker: when it exists in the store the track is skipped.
var OpusBitrates = []int{64, 128}

const mp3Bitrate = 128

// Options tunes a pipeline run.
type Options struct {
	Workers int
	TempDir string
	MP3     bool // also publish a tagged mp3 rendition
}

// Stats counts per-track outcomes across workers.
type Stats struct {
	mu      sync.Mutex
	Success int
	Failed  int
	Skipped int
}

func (s *Stats) success() { s.mu.Lock(); s.Success++; s.mu.Unlock() }
func (s *Stats) failed()  { s.mu.Lock(); s.Failed++; s.mu.Unlock() }
func (s *Stats) skipped() { s.mu.Lock(); s.Skipped++; s.mu.Unlock() }

// Pipeline wires the stages together.
type Pipeline struct {
	fetcher    Fetcher
	transcoder Transcoder
	store      ObjectStore
	tracker    UploadTracker // optional
	printer    *output.Printer
	opts       Options
}

// New builds a pipeline. The tracker may be nil when no local catalog is
// in use.
func New(fetcher Fetcher, transcoder Transcoder, store ObjectStore, tracker UploadTracker, printer *output.Printer, opts Options) (*Pipeline, error) {
	if fetcher == nil || transcoder == nil || store == nil {
		return nil, fmt.Errorf("pipeline: missing stage")
	}
	if printer == nil {
		printer = output.NewPrinter(true)
	}
	if opts.Workers <= 0 {
		opts.Workers = 3
	}
	if opts.TempDir == "" {
		opts.TempDir = filepath.Join(os.TempDir(), "voyo-pipeline")
	}
	return &Pipeline{
		fetcher:    fetcher,
		transcoder: transcoder,
		store:      store,
		tracker:    tracker,
		printer:    printer,
		opts:       opts,
	}, nil
}

type task struct {
	index   int
	videoID string
}

type outcome struct {
	prefix string
	detail string
	skip   bool
	err    error
}

// Run processes the given video ids and returns the aggregate stats.
// Worker failures are per-track; Run itself only fails on setup errors.
func (p *Pipeline) Run(ctx context.Context, videoIDs []string) (*Stats, error) {
	stats := &Stats{}
	if len(videoIDs) == 0 {
		return stats, nil
	}
	if err := os.MkdirAll(p.opts.TempDir, 0o755); err != nil {
		return nil, fmt.Errorf("pipeline: creating temp dir: %w", err)
	}

	tasks := make(chan task)
	outcomes := make(chan outcome, len(videoIDs))

	var wg sync.WaitGroup
	for w := 0; w < p.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				outcomes <- p.processTrack(ctx, t, len(videoIDs), stats)
			}
		}()
	}

	go func() {
		defer close(tasks)
		for i, id := range videoIDs {
			select {
			case tasks <- task{index: i + 1, videoID: id}:
			case <-ctx.Done():
				return
			}
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	received := 0
	for received < len(videoIDs) {
		select {
		case o := <-outcomes:
			received++
			switch {
			case o.err != nil:
				p.printer.ItemFail(o.prefix, o.err)
			case o.skip:
				p.printer.ItemSkip(o.prefix, o.detail)
			default:
				p.printer.ItemOK(o.prefix, o.detail)
			}
		case <-done:
			// Workers quit early on context cancel; drain what arrived.
			for len(outcomes) > 0 {
				<-outcomes
				received++
			}
			p.printer.Summary(stats.Success, stats.Failed, stats.Skipped)
			return stats, ctx.Err()
		}
	}

	wg.Wait()
	p.printer.Summary(stats.Success, stats.Failed, stats.Skipped)
	return stats, nil
}

func (p *Pipeline) processTrack(ctx context.Context, t task, total int, stats *Stats) outcome {
	prefix := p.printer.Prefix(t.index, total, t.videoID)

	// Presence check against the highest-bitrate opus rendition.
	markerKey := opusKey(t.videoID, 128)
	exists, err := p.store.Exists(markerKey)
	if err != nil {
		stats.failed()
		return outcome{prefix: prefix, err: fmt.Errorf("checking %s: %w", markerKey, err)}
	}
	if exists {
		stats.skipped()
		return outcome{prefix: prefix, detail: "already uploaded", skip: true}
	}

	trackDir := filepath.Join(p.opts.TempDir, t.videoID)
	if err := os.MkdirAll(trackDir, 0o755); err != nil {
		stats.failed()
		return outcome{prefix: prefix, err: err}
	}
	defer os.RemoveAll(trackDir)

	src, err := p.fetcher.Fetch(ctx, t.videoID, trackDir)
	if err != nil {
		stats.failed()
		return outcome{prefix: prefix, err: fmt.Errorf("download: %w", err)}
	}

	uploaded := 0
	for _, bitrate := range OpusBitrates {
		if err := p.publishOpus(t.videoID, trackDir, src, bitrate); err != nil {
			p.printer.Log("%s opus@%dk: %v", prefix, bitrate, err)
			continue
		}
		uploaded++
	}
	if p.opts.MP3 {
		if err := p.publishMP3(t.videoID, trackDir, src); err != nil {
			p.printer.Log("%s mp3: %v", prefix, err)
		} else {
			uploaded++
		}
	}

	if uploaded == 0 {
		stats.failed()
		return outcome{prefix: prefix, err: fmt.Errorf("no rendition published")}
	}
	stats.success()
	return outcome{prefix: prefix, detail: fmt.Sprintf("%d renditions", uploaded)}
}

func (p *Pipeline) publishOpus(videoID, dir string, src TrackSource, bitrate int) error {
	path := filepath.Join(dir, fmt.Sprintf("%d.opus", bitrate))
	if err := p.transcoder.ToOpus(src.Path, path, bitrate); err != nil {
		return err
	}
	key := opusKey(videoID, bitrate)
	if err := p.store.Upload(path, key, "audio/opus"); err != nil {
		return err
	}
	p.trackUpload(videoID, "opus", bitrate, key, path)
	return nil
}

func (p *Pipeline) publishMP3(videoID, dir string, src TrackSource) error {
	path := filepath.Join(dir, "track.mp3")
	if err := p.transcoder.ToMP3(src.Path, path, mp3Bitrate); err != nil {
		return err
	}
	if err := embedID3Tags(path, src); err != nil {
		// Untagged audio still plays; publish it anyway.
		p.printer.Log("tagging %s: %v", videoID, err)
	}
	key := fmt.Sprintf("audio/mp3/%s.mp3", videoID)
	if err := p.store.Upload(path, key, "audio/mpeg"); err != nil {
		return err
	}
	p.trackUpload(videoID, "mp3", mp3Bitrate, key, path)
	return nil
}

func (p *Pipeline) trackUpload(videoID, format string, bitrate int, key, path string) {
	if p.tracker == nil {
		return
	}
	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}
	if err := p.tracker.MarkUploaded(videoID, format, bitrate, key, size); err != nil {
		p.printer.Log("recording upload %s: %v", videoID, err)
	}
}

func opusKey(videoID string, bitrate int) string {
	return fmt.Sprintf("audio/%d/%s.opus", bitrate, videoID)
}
