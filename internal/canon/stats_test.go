package canon

import "testing"

func TestApplyViewPercentiles(t *testing.T) {
	results := make([]Result, 10)
	for i := range results {
		results[i].ViewCount = int64(i)
	}
	ApplyViewPercentiles(results)
	for i := range results {
		want := float64(i+1) * 10
		if results[i].ViewPercentile != want {
			t.Errorf("track %d percentile = %v, want %v", i, results[i].ViewPercentile, want)
		}
	}
}

func TestApplyViewPercentilesTies(t *testing.T) {
	results := []Result{
		{ViewCount: 100},
		{ViewCount: 100},
		{ViewCount: 200},
		{ViewCount: 300},
	}
	ApplyViewPercentiles(results)
	if results[0].ViewPercentile != 50 || results[1].ViewPercentile != 50 {
		t.Errorf("tied percentiles = %v, %v, want 50, 50", results[0].ViewPercentile, results[1].ViewPercentile)
	}
	if results[3].ViewPercentile != 100 {
		t.Errorf("max percentile = %v, want 100", results[3].ViewPercentile)
	}
}

func TestApplyViewPercentilesEmpty(t *testing.T) {
	ApplyViewPercentiles(nil) // must not panic
}

func TestApplyViewPercentilesRounding(t *testing.T) {
	results := make([]Result, 3)
	for i := range results {
		results[i].ViewCount = int64(i)
	}
	ApplyViewPercentiles(results)
	if results[0].ViewPercentile != 33.33 {
		t.Errorf("percentile = %v, want 33.33", results[0].ViewPercentile)
	}
	if results[1].ViewPercentile != 66.67 {
		t.Errorf("percentile = %v, want 66.67", results[1].ViewPercentile)
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Tier: TierA, CanonLevel: LevelCore, ContentType: ContentOriginal, Era: "streaming-era", Confidence: 0.8},
		{Tier: TierA, CanonLevel: LevelEssential, ContentType: ContentLive, Era: "streaming-era", Confidence: 0.8},
		{Tier: TierD, CanonLevel: LevelEcho, ContentType: ContentOriginal, Era: "unknown", Confidence: 0.4, IsEcho: true},
	}
	s := Summarize(results)
	if s.Total != 3 {
		t.Errorf("total = %d", s.Total)
	}
	if s.ByTier[TierA] != 2 || s.ByTier[TierD] != 1 {
		t.Errorf("tier counts = %v", s.ByTier)
	}
	if s.ByCanon[LevelCore] != 1 || s.ByCanon[LevelEcho] != 1 {
		t.Errorf("canon counts = %v", s.ByCanon)
	}
	if s.ByContentType[ContentOriginal] != 2 {
		t.Errorf("content counts = %v", s.ByContentType)
	}
	if s.ByEra["streaming-era"] != 2 {
		t.Errorf("era counts = %v", s.ByEra)
	}
	if s.EchoCount != 1 {
		t.Errorf("echo count = %d", s.EchoCount)
	}
	if !almostEqual(s.AvgConfidence, 2.0/3.0) {
		t.Errorf("avg confidence = %v", s.AvgConfidence)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.AvgConfidence != 0 {
		t.Errorf("empty summary = %+v", s)
	}
	if s.Share(0) != 0 {
		t.Errorf("share on empty corpus = %v", s.Share(0))
	}
}
