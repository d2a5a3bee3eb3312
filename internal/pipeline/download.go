package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kkdai/youtube/v2"
)

// Fetcher pulls a track's source audio from YouTube into a local file.
type Fetcher interface {
	Fetch(ctx context.Context, videoID, dir string) (TrackSource, error)
}

// TrackSource is the downloaded source file plus the metadata the later
// stages want for tagging.
type TrackSource struct {
	Path   string
	Title  string
	Artist string
	Year   int
}

// YouTubeFetcher downloads the best available audio-only stream.
type YouTubeFetcher struct {
	client *youtube.Client
}

// NewYouTubeFetcher builds a fetcher with a default client.
func NewYouTubeFetcher() *YouTubeFetcher {
	return &YouTubeFetcher{client: &youtube.Client{}}
}

// Fetch resolves the video, picks the best audio format and streams it to
// <dir>/<videoID>.<ext>.
func (f *YouTubeFetcher) Fetch(ctx context.Context, videoID, dir string) (TrackSource, error) {
	var src TrackSource

	video, err := f.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return src, fmt.Errorf("resolving video %s: %w", videoID, err)
	}

	format := bestAudioFormat(video)
	if format == nil {
		return src, fmt.Errorf("no audio format for %s", videoID)
	}

	stream, _, err := f.client.GetStreamContext(ctx, video, format)
	if err != nil {
		return src, fmt.Errorf("opening stream for %s: %w", videoID, err)
	}
	defer stream.Close()

	path := filepath.Join(dir, videoID+"."+mimeToExt(format.MimeType))
	out, err := os.Create(path)
	if err != nil {
		return src, fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := io.Copy(out, stream); err != nil {
		out.Close()
		os.Remove(path)
		return src, fmt.Errorf("downloading %s: %w", videoID, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return src, fmt.Errorf("writing %s: %w", path, err)
	}

	src = TrackSource{
		Path:   path,
		Title:  video.Title,
		Artist: video.Author,
		Year:   video.PublishDate.Year(),
	}
	return src, nil
}

// bestAudioFormat prefers audio-only opus streams, then falls back to the
// highest-bitrate track with audio channels.
func bestAudioFormat(video *youtube.Video) *youtube.Format {
	var best *youtube.Format
	for i := range video.Formats {
		f := &video.Formats[i]
		if f.AudioChannels == 0 {
			continue
		}
		if best == nil || betterAudio(f, best) {
			best = f
		}
	}
	return best
}

func betterAudio(candidate, current *youtube.Format) bool {
	candAudioOnly := candidate.Width == 0 && candidate.Height == 0
	curAudioOnly := current.Width == 0 && current.Height == 0
	if candAudioOnly != curAudioOnly {
		return candAudioOnly
	}
	candOpus := strings.Contains(candidate.MimeType, "opus")
	curOpus := strings.Contains(current.MimeType, "opus")
	if candOpus != curOpus {
		return candOpus
	}
	return candidate.Bitrate > current.Bitrate
}

func mimeToExt(mimeType string) string {
	base := mimeType
	if idx := strings.Index(base, ";"); idx >= 0 {
		base = base[:idx]
	}
	switch strings.TrimSpace(base) {
	case "audio/webm", "video/webm":
		return "webm"
	case "audio/mp4", "video/mp4":
		return "m4a"
	default:
		return "bin"
	}
}
