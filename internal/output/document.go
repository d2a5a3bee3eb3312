package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/voyomusic/voyo-ops/internal/canon"
)

// Document is the canonized corpus file: versioned statistics plus every
// classified track.
type Document struct {
	Version     string         `json:"version"`
	GeneratedAt time.Time      `json:"generated_at"`
	TotalTracks int            `json:"total_tracks"`
	LLMEnabled  bool           `json:"llm_enabled"`
	Statistics  canon.Summary  `json:"statistics"`
	Tracks      []canon.Result `json:"tracks"`
}

// DocumentVersion identifies the current classification rule set.
const DocumentVersion = "v4"

// NewDocument assembles a document from classified tracks.
func NewDocument(results []canon.Result, llmEnabled bool) Document {
	return Document{
		Version:     DocumentVersion,
		GeneratedAt: time.Now().UTC(),
		TotalTracks: len(results),
		LLMEnabled:  llmEnabled,
		Statistics:  canon.Summarize(results),
		Tracks:      results,
	}
}

// WriteDocument writes the document as indented JSON, atomically: the data
// lands in a temp file first and is renamed into place, so a crash never
// leaves a truncated corpus file.
func WriteDocument(path string, doc Document) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir %s: %w", dir, err)
		}
	}

	tmp, err := os.CreateTemp(dir, ".canonized-*.json")
	if err != nil {
		return fmt.Errorf("creating temp output: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// ReadDocument loads a previously written corpus file.
func ReadDocument(path string) (Document, error) {
	var doc Document
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("reading document %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parsing document %s: %w", path, err)
	}
	return doc, nil
}
