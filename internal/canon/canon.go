// Package canon implements the VOYO track classification engine: artist
// tiering, canon levels, content-type detection, cultural tags and the
// multi-dimensional scores behind them. Everything in this package is pure:
// classification never performs I/O and never fails; unknown input degrades
// to the D/ECHO "hidden gem" bucket rather than an error.
package canon

import "time"

// Tier is the coarse artist-fame classification. A (global icon) > B
// (regional star) > C (national) > D (underground/emerging).
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierD Tier = "D"
)

// Level is the per-track cultural-importance label.
// ECHO means "hidden gem deserving discovery", not "low quality".
type Level string

const (
	LevelCore      Level = "CORE"
	LevelEssential Level = "ESSENTIAL"
	LevelDeepCut   Level = "DEEP_CUT"
	LevelArchive   Level = "ARCHIVE"
	LevelEcho      Level = "ECHO"
)

// ContentType classifies a track's production format, independent of tier
// and canon level.
type ContentType string

const (
	ContentOriginal     ContentType = "original"
	ContentLive         ContentType = "live"
	ContentRemix        ContentType = "remix"
	ContentDJMix        ContentType = "dj_mix"
	ContentPlaylist     ContentType = "playlist_channel"
	ContentCover        ContentType = "cover"
	ContentInstrumental ContentType = "instrumental"
	ContentSlowed       ContentType = "slowed"
	ContentAcoustic     ContentType = "acoustic"
	ContentExtended     ContentType = "extended"
)

const (
	ClassifiedByPattern = "pattern"
	ClassifiedByHybrid  = "hybrid"
)

// Track is one input unit as fetched from the track store. Absent title or
// artist is represented as "", absent view counts as 0.
type Track struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Channel   string `json:"channel,omitempty"`
	ViewCount int64  `json:"view_count"`
}

// CulturalScore holds the four 0-5 cultural-significance sub-scores plus
// their arithmetic mean. Overall must be recomputed whenever a sub-score
// changes (see Result.recompute).
type CulturalScore struct {
	Historical     float64 `json:"historical"`
	Social         float64 `json:"social"`
	Diasporic      float64 `json:"diasporic"`
	Preservational float64 `json:"preservational"`
	Overall        float64 `json:"overall"`
}

// AestheticScore holds the three 0-5 aesthetic-merit sub-scores plus their
// arithmetic mean.
type AestheticScore struct {
	Innovation float64 `json:"innovation"`
	Craft      float64 `json:"craft"`
	Influence  float64 `json:"influence"`
	Overall    float64 `json:"overall"`
}

// AccessibilityScore describes how much cultural context a listener needs.
// Mainstream and specialist scale in opposite directions with tier.
type AccessibilityScore struct {
	Mainstream  float64 `json:"mainstream"`
	Specialist  float64 `json:"specialist"`
	Educational float64 `json:"educational"`
}

// Result is the classification output for one track.
type Result struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	Channel string `json:"channel,omitempty"`

	Tier        Tier        `json:"tier"`
	CanonLevel  Level       `json:"canon_level"`
	ContentType ContentType `json:"content_type"`

	ViewCount      int64   `json:"view_count"`
	ViewPercentile float64 `json:"view_percentile"`

	CulturalSignificance CulturalScore      `json:"cultural_significance"`
	AestheticMerit       AestheticScore     `json:"aesthetic_merit"`
	Accessibility        AccessibilityScore `json:"accessibility"`

	ReleaseYear  int     `json:"release_year,omitempty"`
	Era          string  `json:"era"`
	Timelessness float64 `json:"timelessness"`

	CulturalTags  []string `json:"cultural_tags"`
	AestheticTags []string `json:"aesthetic_tags"`
	Genre         string   `json:"genre,omitempty"`

	Confidence   float64   `json:"confidence"`
	ClassifiedBy string    `json:"classified_by"`
	ClassifiedAt time.Time `json:"classified_at"`
	IsEcho       bool      `json:"is_echo"`
}

// recompute refreshes the derived fields: the overall averages and the echo
// flag. Called after initial scoring and again after any hybrid override.
func (r *Result) recompute() {
	cs := &r.CulturalSignificance
	cs.Overall = (cs.Historical + cs.Social + cs.Diasporic + cs.Preservational) / 4
	am := &r.AestheticMerit
	am.Overall = (am.Innovation + am.Craft + am.Influence) / 3
	r.IsEcho = r.CanonLevel == LevelEcho
}

func validTier(t Tier) bool {
	switch t {
	case TierA, TierB, TierC, TierD:
		return true
	}
	return false
}

func validLevel(l Level) bool {
	switch l {
	case LevelCore, LevelEssential, LevelDeepCut, LevelArchive, LevelEcho:
		return true
	}
	return false
}
