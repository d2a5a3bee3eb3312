package canon

import "context"

// Backend produces external classification overrides for a batch of tracks.
// Implementations may return fewer overrides than tracks; a nil entry means
// no override for that position.
type Backend interface {
	ClassifyBatch(ctx context.Context, tracks []Track) ([]*Override, error)
}

// PatternBackend is the trivial backend: it overrides nothing, so a hybrid
// run wired to it degrades to pure pattern classification.
type PatternBackend struct{}

func (PatternBackend) ClassifyBatch(_ context.Context, tracks []Track) ([]*Override, error) {
	return make([]*Override, len(tracks)), nil
}

// Override is the external classifier's verdict for one track. Pointer
// fields distinguish "not provided" from an explicit zero.
type Override struct {
	Tier       Tier  `json:"artist_tier,omitempty"`
	CanonLevel Level `json:"canon_level,omitempty"`

	CulturalSignificance *CulturalOverride  `json:"cultural_significance,omitempty"`
	AestheticMerit       *AestheticOverride `json:"aesthetic_merit,omitempty"`

	CulturalTags  []string `json:"cultural_tags,omitempty"`
	AestheticTags []string `json:"aesthetic_tags,omitempty"`
}

type CulturalOverride struct {
	Historical     *float64 `json:"historical,omitempty"`
	Social         *float64 `json:"social,omitempty"`
	Diasporic      *float64 `json:"diasporic,omitempty"`
	Preservational *float64 `json:"preservational,omitempty"`
}

type AestheticOverride struct {
	Innovation *float64 `json:"innovation,omitempty"`
	Craft      *float64 `json:"craft,omitempty"`
	Influence  *float64 `json:"influence,omitempty"`
}

// Merge applies an external override on top of a pattern result. External
// tier and canon level replace the pattern's; sub-scores replace field by
// field; tags are unioned, dropping anything outside the known vocabularies.
// Derived fields are recomputed afterwards, so a merge that promotes a track
// out of ECHO also clears its echo flag.
func Merge(r *Result, ov *Override) {
	if ov == nil {
		return
	}
	if validTier(ov.Tier) {
		r.Tier = ov.Tier
	}
	if validLevel(ov.CanonLevel) {
		r.CanonLevel = ov.CanonLevel
	}
	if cs := ov.CulturalSignificance; cs != nil {
		applyField(&r.CulturalSignificance.Historical, cs.Historical)
		applyField(&r.CulturalSignificance.Social, cs.Social)
		applyField(&r.CulturalSignificance.Diasporic, cs.Diasporic)
		applyField(&r.CulturalSignificance.Preservational, cs.Preservational)
	}
	if am := ov.AestheticMerit; am != nil {
		applyField(&r.AestheticMerit.Innovation, am.Innovation)
		applyField(&r.AestheticMerit.Craft, am.Craft)
		applyField(&r.AestheticMerit.Influence, am.Influence)
	}
	r.CulturalTags = mergeTags(r.CulturalTags, filterTags(ov.CulturalTags, KnownCulturalTag))
	r.AestheticTags = mergeTags(r.AestheticTags, filterTags(ov.AestheticTags, KnownAestheticTag))

	r.ClassifiedBy = ClassifiedByHybrid
	r.Confidence += 0.3
	if r.Confidence > 1.0 {
		r.Confidence = 1.0
	}
	r.recompute()
}

func applyField(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func filterTags(tags []string, known func(string) bool) []string {
	out := tags[:0:0]
	for _, t := range tags {
		if known(t) {
			out = append(out, t)
		}
	}
	return out
}
