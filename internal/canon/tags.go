package canon

import "strings"

// DetectCulturalTags scans title and artist for the curated tag vocabulary.
// Every matching tag is returned, in vocabulary order.
func DetectCulturalTags(title, artist string) []string {
	text := strings.ToLower(title + " " + artist)
	var tags []string
	for _, rule := range culturalTagRules {
		if containsAny(text, rule.Keywords) {
			tags = append(tags, rule.Label)
		}
	}
	return tags
}

// DetectGenre returns the first genre whose keywords appear in the title or
// artist text, or "" when nothing matches. Channel text is excluded: channel
// boilerplate must not steer the genre.
func DetectGenre(title, artist string) string {
	text := strings.ToLower(title + " " + artist)
	for _, rule := range genreRules {
		if containsAny(text, rule.Keywords) {
			return rule.Label
		}
	}
	return ""
}

// KnownCulturalTag reports whether a tag is in the curated vocabulary.
// Externally supplied tags outside it are dropped during merge.
func KnownCulturalTag(tag string) bool {
	for _, rule := range culturalTagRules {
		if rule.Label == tag {
			return true
		}
	}
	return false
}

// KnownAestheticTag reports whether a tag is in the aesthetic vocabulary.
func KnownAestheticTag(tag string) bool {
	for _, t := range aestheticTagVocabulary {
		if t == tag {
			return true
		}
	}
	return false
}
