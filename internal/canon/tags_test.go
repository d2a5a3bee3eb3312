package canon

import "testing"

func TestDetectCulturalTags(t *testing.T) {
	cases := []struct {
		title  string
		artist string
		want   []string
	}{
		{"Zombie", "Fela Kuti", nil},
		{"Freedom Fighter", "Someone", []string{"revolution", "liberation"}},
		{"Mama Africa", "Someone", []string{"motherland"}},
		{"Wedding Party Anthem", "Someone", []string{"anthem", "wedding", "festival", "celebration"}},
		{"", "", nil},
	}
	for _, c := range cases {
		got := DetectCulturalTags(c.title, c.artist)
		if !sameStrings(got, c.want) {
			t.Errorf("DetectCulturalTags(%q, %q) = %v, want %v", c.title, c.artist, got, c.want)
		}
	}
}

func TestDetectCulturalTagsMonotonic(t *testing.T) {
	// Adding text can only add tags, never remove them.
	base := DetectCulturalTags("Freedom", "Someone")
	more := DetectCulturalTags("Freedom of the Streets", "Someone")
	for _, tag := range base {
		found := false
		for _, m := range more {
			if m == tag {
				found = true
			}
		}
		if !found {
			t.Errorf("tag %q lost when text grew: %v -> %v", tag, base, more)
		}
	}
}

func TestDetectGenre(t *testing.T) {
	cases := []struct {
		title  string
		artist string
		want   string
	}{
		{"Soweto Amapiano Hit", "Someone", "amapiano"},
		{"Naija Vibes", "Someone", "afrobeats"},
		{"Praise and Worship Medley", "Choir", "gospel"},
		{"Plain Song", "Someone", ""},
		// afrobeats comes before amapiano in the rule order.
		{"Naija Amapiano", "Someone", "afrobeats"},
	}
	for _, c := range cases {
		if got := DetectGenre(c.title, c.artist); got != c.want {
			t.Errorf("DetectGenre(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestDetectGenreIgnoresChannelText(t *testing.T) {
	c := NewClassifier(nil)
	r := c.Classify(Track{Title: "Plain Song", Artist: "Someone", Channel: "Ghana Music TV"})
	if r.Genre != "" {
		t.Errorf("genre = %q, want none from channel boilerplate", r.Genre)
	}
}

func TestTagVocabularies(t *testing.T) {
	if !KnownCulturalTag("revolution") || KnownCulturalTag("made-up") {
		t.Error("cultural vocabulary check broken")
	}
	if !KnownAestheticTag("lyricism") || KnownAestheticTag("shiny") {
		t.Error("aesthetic vocabulary check broken")
	}
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
