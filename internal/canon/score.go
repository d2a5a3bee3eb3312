package canon

// LevelFor maps a tier and view count onto a canon level. Thresholds are
// strict: exactly 100M views for an A-tier track is ESSENTIAL, not CORE.
// A-tier tracks never fall below ESSENTIAL; only D-tier tracks reach ECHO.
// Tier C has no rule-based producer but stays in the table for externally
// assigned tiers.
func LevelFor(tier Tier, views int64) Level {
	switch tier {
	case TierA:
		switch {
		case views > 100_000_000:
			return LevelCore
		case views > 10_000_000:
			return LevelEssential
		case views > 1_000_000:
			return LevelDeepCut
		default:
			return LevelEssential
		}
	case TierB:
		switch {
		case views > 50_000_000:
			return LevelCore
		case views > 5_000_000:
			return LevelEssential
		case views > 500_000:
			return LevelDeepCut
		default:
			return LevelDeepCut
		}
	case TierC:
		switch {
		case views > 10_000_000:
			return LevelEssential
		case views > 1_000_000:
			return LevelDeepCut
		default:
			return LevelArchive
		}
	default:
		switch {
		case views > 5_000_000:
			return LevelDeepCut
		case views > 100_000:
			return LevelArchive
		default:
			return LevelEcho
		}
	}
}

// confidenceFor scores how much to trust a pattern-only classification.
func confidenceFor(tier Tier, views int64) float64 {
	c := 0.3
	if tier == TierA || tier == TierB {
		c = 0.7
	}
	if views > 0 {
		c += 0.1
	}
	if c > 1.0 {
		c = 1.0
	}
	return c
}

func timelessnessFor(tier Tier, views int64) float64 {
	if tier == TierA && views > 50_000_000 {
		return 4.0
	}
	return 2.0
}

func accessibilityFor(tier Tier) AccessibilityScore {
	switch tier {
	case TierA:
		return AccessibilityScore{Mainstream: 4, Specialist: 2, Educational: 3}
	case TierB:
		return AccessibilityScore{Mainstream: 3, Specialist: 3, Educational: 3}
	default:
		return AccessibilityScore{Mainstream: 2, Specialist: 4, Educational: 4}
	}
}

func aestheticFor(tier Tier) AestheticScore {
	switch tier {
	case TierA:
		return AestheticScore{Craft: 4, Influence: 3}
	case TierB:
		return AestheticScore{Craft: 3, Influence: 2}
	default:
		return AestheticScore{}
	}
}

func aestheticTagsFor(tier Tier, views int64, content ContentType, culturalTags []string) []string {
	var tags []string
	if tier == TierA {
		tags = append(tags, "influential")
		if views > 100_000_000 {
			tags = append(tags, "timeless")
		}
	}
	if content == ContentLive {
		tags = append(tags, "virtuosic")
	}
	for _, t := range culturalTags {
		if t == "revolution" || t == "liberation" || t == "protest" {
			tags = append(tags, "lyricism")
			break
		}
	}
	return tags
}
