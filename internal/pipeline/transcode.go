package pipeline

import (
	"fmt"
	"os"
	"os/exec"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Transcoder converts a downloaded source into delivery renditions.
type Transcoder interface {
	ToOpus(inputPath, outputPath string, bitrateKbps int) error
	ToMP3(inputPath, outputPath string, bitrateKbps int) error
}

// FFmpegTranscoder shells out to ffmpeg via ffmpeg-go.
type FFmpegTranscoder struct{}

// NewFFmpegTranscoder verifies ffmpeg is installed.
func NewFFmpegTranscoder() (*FFmpegTranscoder, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}
	return &FFmpegTranscoder{}, nil
}

// ToOpus encodes an opus rendition at the given bitrate, stripping any
// video stream.
func (t *FFmpegTranscoder) ToOpus(inputPath, outputPath string, bitrateKbps int) error {
	err := ffmpeg.Input(inputPath).
		Output(outputPath, ffmpeg.KwArgs{
			"acodec": "libopus",
			"b:a":    fmt.Sprintf("%dk", bitrateKbps),
			"vn":     "",
		}).
		OverWriteOutput().
		Silent(true).
		Run()
	if err != nil {
		return fmt.Errorf("encoding %s to opus@%dk: %w", inputPath, bitrateKbps, err)
	}
	return verifyOutput(outputPath)
}

// ToMP3 encodes an mp3 rendition for players without opus support.
func (t *FFmpegTranscoder) ToMP3(inputPath, outputPath string, bitrateKbps int) error {
	err := ffmpeg.Input(inputPath).
		Output(outputPath, ffmpeg.KwArgs{
			"acodec": "libmp3lame",
			"b:a":    fmt.Sprintf("%dk", bitrateKbps),
			"vn":     "",
		}).
		OverWriteOutput().
		Silent(true).
		Run()
	if err != nil {
		return fmt.Errorf("encoding %s to mp3@%dk: %w", inputPath, bitrateKbps, err)
	}
	return verifyOutput(outputPath)
}

// verifyOutput guards against ffmpeg exiting zero but writing nothing.
func verifyOutput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("transcode produced no output at %s: %w", path, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("transcode produced empty file at %s", path)
	}
	return nil
}
