package canon

import "math"

// ApplyViewPercentiles fills in each result's ViewPercentile relative to
// the batch it arrived in: the share of tracks with view counts at or below
// its own, as a percentage rounded to two decimals. Ties share a percentile
// and the maximum is always 100.
func ApplyViewPercentiles(results []Result) {
	if len(results) == 0 {
		return
	}
	total := float64(len(results))
	for i := range results {
		atOrBelow := 0
		for j := range results {
			if results[j].ViewCount <= results[i].ViewCount {
				atOrBelow++
			}
		}
		pct := float64(atOrBelow) / total * 100
		results[i].ViewPercentile = math.Round(pct*100) / 100
	}
}

// Summary aggregates a classified corpus for reporting and for the
// statistics block of the output document.
type Summary struct {
	Total         int                 `json:"total_tracks"`
	ByTier        map[Tier]int        `json:"by_tier"`
	ByCanon       map[Level]int       `json:"by_canon"`
	ByContentType map[ContentType]int `json:"by_content_type"`
	ByEra         map[string]int      `json:"by_era"`
	EchoCount     int                 `json:"echo_count"`
	AvgConfidence float64             `json:"avg_confidence"`
}

// Summarize builds distribution counts over a classified batch.
func Summarize(results []Result) Summary {
	s := Summary{
		Total:         len(results),
		ByTier:        make(map[Tier]int),
		ByCanon:       make(map[Level]int),
		ByContentType: make(map[ContentType]int),
		ByEra:         make(map[string]int),
	}
	var confSum float64
	for i := range results {
		r := &results[i]
		s.ByTier[r.Tier]++
		s.ByCanon[r.CanonLevel]++
		s.ByContentType[r.ContentType]++
		s.ByEra[r.Era]++
		if r.IsEcho {
			s.EchoCount++
		}
		confSum += r.Confidence
	}
	if s.Total > 0 {
		s.AvgConfidence = confSum / float64(s.Total)
	}
	return s
}

// Share returns count as a percentage of the summary total.
func (s Summary) Share(count int) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(count) / float64(s.Total) * 100
}
