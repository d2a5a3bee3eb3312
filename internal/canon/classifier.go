package canon

import "time"

// Classifier runs the pattern-based classification pass against a fixed
// reference set. Safe for concurrent use.
type Classifier struct {
	ref *Reference
	now func() time.Time
}

// NewClassifier builds a classifier over the given reference data. A nil
// reference uses the built-in curated set.
func NewClassifier(ref *Reference) *Classifier {
	if ref == nil {
		ref = DefaultReference()
	}
	return &Classifier{ref: ref, now: time.Now}
}

// Classify scores a single track. It never fails: an empty or unknown
// track still produces a valid D/ECHO result.
func (c *Classifier) Classify(t Track) Result {
	tier := c.ref.ResolveTier(t.Artist)

	res := Result{
		ID:      t.ID,
		Title:   t.Title,
		Artist:  t.Artist,
		Channel: t.Channel,

		ViewCount: t.ViewCount,

		ContentType:  DetectContentType(t.Title, t.Artist, t.Channel),
		CulturalTags: DetectCulturalTags(t.Title, t.Artist),
		Genre:        DetectGenre(t.Title, t.Artist),

		ClassifiedBy: ClassifiedByPattern,
		ClassifiedAt: c.now().UTC(),
	}

	res.AestheticMerit = aestheticFor(tier)

	// Cultural icons keep their curated significance scores and A status
	// no matter what the stream counts say.
	if icon, ok := c.ref.IconFor(t.Artist); ok {
		tier = TierA
		res.CulturalSignificance = CulturalScore{
			Historical:     icon.Historical,
			Social:         icon.Social,
			Diasporic:      icon.Diasporic,
			Preservational: icon.Preservational,
		}
		res.CulturalTags = mergeTags(res.CulturalTags, icon.Tags)
	}

	res.Tier = tier
	res.CanonLevel = LevelFor(tier, t.ViewCount)
	res.Accessibility = accessibilityFor(tier)
	res.Timelessness = timelessnessFor(tier, t.ViewCount)
	res.AestheticTags = aestheticTagsFor(tier, t.ViewCount, res.ContentType, res.CulturalTags)
	res.Confidence = confidenceFor(tier, t.ViewCount)

	res.ReleaseYear = ExtractYear(t.Title, t.Channel)
	res.Era = DetectEra(res.ReleaseYear)

	res.recompute()
	return res
}

// ClassifyBatch scores every track and fills in view percentiles relative
// to the batch.
func (c *Classifier) ClassifyBatch(tracks []Track) []Result {
	results := make([]Result, len(tracks))
	for i, t := range tracks {
		results[i] = c.Classify(t)
	}
	ApplyViewPercentiles(results)
	return results
}

// mergeTags appends the extras that are not already present, preserving
// the order of both inputs.
func mergeTags(tags, extra []string) []string {
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		seen[t] = struct{}{}
	}
	for _, t := range extra {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return tags
}
