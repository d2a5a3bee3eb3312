package canon

import "testing"

func TestLevelFor(t *testing.T) {
	cases := []struct {
		tier  Tier
		views int64
		want  Level
	}{
		{TierA, 150_000_000, LevelCore},
		{TierA, 100_000_000, LevelEssential}, // threshold is strict
		{TierA, 10_000_001, LevelEssential},
		{TierA, 5_000_000, LevelDeepCut},
		{TierA, 500, LevelEssential}, // A-tier floor
		{TierA, 0, LevelEssential},

		{TierB, 60_000_000, LevelCore},
		{TierB, 50_000_000, LevelEssential},
		{TierB, 6_000_000, LevelEssential},
		{TierB, 600_000, LevelDeepCut},
		{TierB, 0, LevelDeepCut}, // B-tier floor

		{TierC, 20_000_000, LevelEssential},
		{TierC, 2_000_000, LevelDeepCut},
		{TierC, 100, LevelArchive},

		{TierD, 6_000_000, LevelDeepCut},
		{TierD, 5_000_000, LevelArchive},
		{TierD, 200_000, LevelArchive},
		{TierD, 100_000, LevelEcho},
		{TierD, 0, LevelEcho},
	}
	for _, c := range cases {
		if got := LevelFor(c.tier, c.views); got != c.want {
			t.Errorf("LevelFor(%v, %d) = %v, want %v", c.tier, c.views, got, c.want)
		}
	}
}

func TestLevelForMonotonicInViews(t *testing.T) {
	rank := map[Level]int{
		LevelEcho: 0, LevelArchive: 1, LevelDeepCut: 2, LevelEssential: 3, LevelCore: 4,
	}
	views := []int64{0, 100_000, 500_000, 1_000_000, 5_000_000, 10_000_000,
		50_000_000, 100_000_000, 200_000_000}
	// Tier A is excluded: its ESSENTIAL floor outranks the 1M-10M DEEP_CUT
	// band, so the mapping dips on purpose.
	for _, tier := range []Tier{TierB, TierC, TierD} {
		prev := -1
		for _, v := range views {
			r := rank[LevelFor(tier, v)]
			if r < prev {
				t.Errorf("tier %v: level rank dropped at %d views", tier, v)
			}
			prev = r
		}
	}
}

func TestConfidenceFor(t *testing.T) {
	cases := []struct {
		tier  Tier
		views int64
		want  float64
	}{
		{TierA, 1000, 0.8},
		{TierB, 0, 0.7},
		{TierD, 1000, 0.4},
		{TierD, 0, 0.3},
		{TierC, 500, 0.4},
	}
	for _, c := range cases {
		if got := confidenceFor(c.tier, c.views); !almostEqual(got, c.want) {
			t.Errorf("confidenceFor(%v, %d) = %v, want %v", c.tier, c.views, got, c.want)
		}
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestTimelessnessFor(t *testing.T) {
	if got := timelessnessFor(TierA, 60_000_000); got != 4.0 {
		t.Errorf("A-tier hit timelessness = %v, want 4", got)
	}
	if got := timelessnessFor(TierA, 50_000_000); got != 2.0 {
		t.Errorf("A-tier at threshold timelessness = %v, want 2", got)
	}
	if got := timelessnessFor(TierB, 200_000_000); got != 2.0 {
		t.Errorf("B-tier timelessness = %v, want 2", got)
	}
}

func TestAccessibilityFor(t *testing.T) {
	if a := accessibilityFor(TierA); a.Mainstream != 4 || a.Specialist != 2 || a.Educational != 3 {
		t.Errorf("tier A accessibility = %+v", a)
	}
	if a := accessibilityFor(TierB); a.Mainstream != 3 || a.Specialist != 3 || a.Educational != 3 {
		t.Errorf("tier B accessibility = %+v", a)
	}
	for _, tier := range []Tier{TierC, TierD} {
		if a := accessibilityFor(tier); a.Mainstream != 2 || a.Specialist != 4 || a.Educational != 4 {
			t.Errorf("tier %v accessibility = %+v", tier, a)
		}
	}
}

func TestAestheticTagsFor(t *testing.T) {
	tags := aestheticTagsFor(TierA, 150_000_000, ContentLive, []string{"revolution"})
	want := []string{"influential", "timeless", "virtuosic", "lyricism"}
	if !sameStrings(tags, want) {
		t.Errorf("aesthetic tags = %v, want %v", tags, want)
	}

	if tags := aestheticTagsFor(TierD, 0, ContentOriginal, nil); len(tags) != 0 {
		t.Errorf("D-tier original got tags %v", tags)
	}

	// lyricism is added once even with several trigger tags.
	tags = aestheticTagsFor(TierB, 0, ContentOriginal, []string{"revolution", "protest"})
	if !sameStrings(tags, []string{"lyricism"}) {
		t.Errorf("B-tier protest tags = %v", tags)
	}
}
