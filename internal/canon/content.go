package canon

import "strings"

// Content-type detection scans title, artist and channel together. The
// indicator groups are checked in a fixed order and the first hit wins, so
// "Live Remix" classifies as live.
var contentRules = []struct {
	Type       ContentType
	Indicators []string
}{
	{ContentLive, []string{
		"live", "concert", "performance", "tiny desk", "colors show",
		"colors studios", "a colors show", "glitch", "vevo lift",
		"sessions", "live session", "acoustic session", "on the lot",
		"from studio", "live at", "in studio", "sofar sounds",
	}},
	{ContentRemix, []string{"remix", "rmx", "refix", "bootleg", "flip", "edit"}},
	{ContentDJMix, []string{
		"mix", "set", "dj set", "boiler room", "essential mix",
		"radio show", "takeover", "guest mix", "residency",
		"club set", "festival set", "b2b",
	}},
	{ContentPlaylist, []string{
		"compilation", "playlist", "best of", "greatest hits",
		"top 10", "top 20", "top 50", "top 100", "non stop",
		"nonstop", "mix 2024", "mix 2025", "hours of",
	}},
	{ContentCover, []string{"cover", "rendition", "tribute", "version by"}},
	{ContentInstrumental, []string{
		"instrumental", "beat", "karaoke", "backing track",
		"prod by", "prod.", "type beat", "free beat",
	}},
	{ContentSlowed, []string{"slowed", "reverb", "chopped", "screwed"}},
	{ContentAcoustic, []string{"acoustic", "unplugged", "stripped"}},
	{ContentExtended, []string{"extended", "club mix", "radio edit"}},
}

// DetectContentType classifies what kind of upload a track is. Mix-style
// titles only count as dj_mix when the artist itself looks like a DJ;
// otherwise the scan continues to the later groups.
func DetectContentType(title, artist, channel string) ContentType {
	text := strings.ToLower(title + " " + artist + " " + channel)
	artistLower := strings.ToLower(artist)
	for _, rule := range contentRules {
		if !containsAny(text, rule.Indicators) {
			continue
		}
		if rule.Type == ContentDJMix && !containsAny(artistLower, djTokens) {
			continue
		}
		return rule.Type
	}
	return ContentOriginal
}

func containsAny(text string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
