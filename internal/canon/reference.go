package canon

import (
	"encoding/json"
	"fmt"
	"os"
)

// Reference bundles the curated lookup data the classifier consults. Build
// one with DefaultReference, optionally overlay edits from a JSON file, then
// treat it as read-only.
type Reference struct {
	TierA   map[string]struct{}
	TierB   map[string]struct{}
	Icons   map[string]IconScore
	Aliases map[string]string
	Master  map[string]ArtistRecord
}

// DefaultReference returns the built-in curated data.
func DefaultReference() *Reference {
	r := &Reference{
		TierA:   make(map[string]struct{}, len(tierAArtists)),
		TierB:   make(map[string]struct{}, len(tierBArtists)),
		Icons:   make(map[string]IconScore, len(culturalIcons)),
		Aliases: make(map[string]string, len(aliases)),
		Master:  make(map[string]ArtistRecord, len(artistMaster)),
	}
	for _, a := range tierAArtists {
		r.TierA[a] = struct{}{}
	}
	for _, a := range tierBArtists {
		r.TierB[a] = struct{}{}
	}
	for k, v := range culturalIcons {
		r.Icons[k] = v
	}
	for k, v := range aliases {
		r.Aliases[k] = v
	}
	for k, v := range artistMaster {
		r.Master[k] = v
	}
	return r
}

// referenceOverlay is the JSON shape accepted by LoadOverlay. All fields are
// optional; listed entries are added to (or replace) the built-in data.
type referenceOverlay struct {
	TierA   []string                `json:"tier_a,omitempty"`
	TierB   []string                `json:"tier_b,omitempty"`
	Icons   map[string]IconScore    `json:"cultural_icons,omitempty"`
	Aliases map[string]string       `json:"aliases,omitempty"`
	Master  map[string]ArtistRecord `json:"artists,omitempty"`
}

// LoadOverlay merges artist data from a JSON file into the reference.
// Names are normalized on the way in so callers can list display names.
func (r *Reference) LoadOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read reference overlay: %w", err)
	}
	var ov referenceOverlay
	if err := json.Unmarshal(data, &ov); err != nil {
		return fmt.Errorf("parse reference overlay %s: %w", path, err)
	}
	for _, a := range ov.TierA {
		r.TierA[NormalizeName(a)] = struct{}{}
	}
	for _, a := range ov.TierB {
		r.TierB[NormalizeName(a)] = struct{}{}
	}
	for k, v := range ov.Icons {
		r.Icons[NormalizeName(k)] = v
	}
	for k, v := range ov.Aliases {
		r.Aliases[NormalizeName(k)] = NormalizeName(v)
	}
	for k, v := range ov.Master {
		r.Master[NormalizeName(k)] = v
	}
	return nil
}

// MasterRecords returns the full artist master: every curated artist, with
// metadata where present and "unknown" placeholders otherwise. Icon tags are
// folded into the record set used by the artists command.
func (r *Reference) MasterRecords() map[string]ArtistRecord {
	out := make(map[string]ArtistRecord, len(r.TierA)+len(r.TierB))
	for name := range r.TierA {
		out[name] = r.masterOrDefault(name, TierA)
	}
	for name := range r.TierB {
		if _, dup := out[name]; dup {
			continue
		}
		out[name] = r.masterOrDefault(name, TierB)
	}
	return out
}

func (r *Reference) masterOrDefault(name string, tier Tier) ArtistRecord {
	if rec, ok := r.Master[name]; ok {
		return rec
	}
	return ArtistRecord{Tier: tier, Country: "unknown", Region: "unknown", PrimaryGenre: "unknown"}
}

// VibesFor returns the playlist-mood defaults for a genre, falling back to
// the neutral profile for genres without curated scores.
func VibesFor(genre string) VibeScores {
	if v, ok := genreVibeDefaults[genre]; ok {
		return v
	}
	return genreVibeDefaults["unknown"]
}
