package pipeline

import (
	"fmt"
	"strconv"

	id3v2 "github.com/bogem/id3v2/v2"
)

// embedID3Tags writes basic ID3v2 metadata into an mp3 rendition. Opus
// renditions carry no tags; the player reads track metadata from the API.
func embedID3Tags(path string, src TrackSource) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("opening %s for tagging: %w", path, err)
	}
	defer tag.Close()

	if src.Title != "" {
		tag.SetTitle(src.Title)
	}
	if src.Artist != "" {
		tag.SetArtist(src.Artist)
	}
	if src.Year != 0 {
		tag.AddTextFrame(tag.CommonID("Year"), tag.DefaultEncoding(), strconv.Itoa(src.Year))
	}
	if err := tag.Save(); err != nil {
		return fmt.Errorf("saving tags to %s: %w", path, err)
	}
	return nil
}
