package canon

import (
	"strings"
	"unicode"
)

// NormalizeName canonicalizes an artist or channel name for lookup:
// lowercase, punctuation stripped, whitespace collapsed, and trailing
// channel boilerplate ("Official", "VEVO", "- Topic", ...) removed.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '&':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	fields := strings.Fields(b.String())
	for len(fields) > 1 && isChannelSuffix(fields[len(fields)-1]) {
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, " ")
}

func isChannelSuffix(tok string) bool {
	for _, s := range channelSuffixes {
		if tok == s {
			return true
		}
	}
	return false
}

// ResolveTier maps an artist name to its curated tier. Unknown artists are
// tier D; there is no rule-based path to tier C.
func (r *Reference) ResolveTier(artist string) Tier {
	name := r.canonicalName(artist)
	if name == "" {
		return TierD
	}
	if matchesSet(name, r.TierA) {
		return TierA
	}
	if matchesSet(name, r.TierB) {
		return TierB
	}
	return TierD
}

// IconFor reports whether the artist is a curated cultural icon and returns
// its fixed significance scores. The lookup is exact after normalization and
// alias resolution; fuzzy containment would let a short unrelated name
// inherit an icon's fixed scores.
func (r *Reference) IconFor(artist string) (IconScore, bool) {
	name := r.canonicalName(artist)
	if name == "" {
		return IconScore{}, false
	}
	ic, ok := r.Icons[name]
	return ic, ok
}

func (r *Reference) canonicalName(artist string) string {
	name := NormalizeName(artist)
	if alias, ok := r.Aliases[name]; ok {
		return alias
	}
	return name
}

// matchesSet checks for an exact hit first, then substring containment in
// both directions so "Burna Boy Official Channel" still resolves.
func matchesSet(name string, set map[string]struct{}) bool {
	if _, ok := set[name]; ok {
		return true
	}
	for member := range set {
		if strings.Contains(name, member) || strings.Contains(member, name) {
			return true
		}
	}
	return false
}
