package cli

import (
	"testing"

	"github.com/voyomusic/voyo-ops/internal/canon"
)

func TestMatchArtistExact(t *testing.T) {
	ref := canon.DefaultReference()
	candidates := matchCandidates(ref)

	tests := []struct {
		in   string
		want string
	}{
		{"Burna Boy", "burna boy"},
		{"WizKid Official", "wizkid"},
		{"Starboy", "wizkid"}, // alias
		{"Fela", "fela kuti"}, // alias
	}
	for _, tt := range tests {
		got, score, ok := matchArtist(ref, candidates, tt.in)
		if !ok {
			t.Errorf("matchArtist(%q): no match", tt.in)
			continue
		}
		if got != tt.want {
			t.Errorf("matchArtist(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if score != 1.0 {
			t.Errorf("matchArtist(%q) score = %v, want 1.0", tt.in, score)
		}
	}
}

func TestMatchArtistFuzzy(t *testing.T) {
	ref := canon.DefaultReference()
	candidates := matchCandidates(ref)

	got, score, ok := matchArtist(ref, candidates, "Burna Boyy")
	if !ok {
		t.Fatal("no fuzzy match for near-exact misspelling")
	}
	if got != "burna boy" {
		t.Errorf("fuzzy match = %q, want %q", got, "burna boy")
	}
	if score >= 1.0 || score < fuzzyThreshold {
		t.Errorf("fuzzy score = %v, want in [%v, 1.0)", score, fuzzyThreshold)
	}
}

func TestMatchArtistNoMatch(t *testing.T) {
	ref := canon.DefaultReference()
	candidates := matchCandidates(ref)

	if _, _, ok := matchArtist(ref, candidates, "Completely Unrelated Band Name XYZ"); ok {
		t.Error("unrelated name matched")
	}
	if _, _, ok := matchArtist(ref, candidates, ""); ok {
		t.Error("empty name matched")
	}
}

func TestBuildMaster(t *testing.T) {
	ref := canon.DefaultReference()
	entries := buildMaster(ref)

	burna, ok := entries["burna boy"]
	if !ok {
		t.Fatal("burna boy missing from master")
	}
	if burna.Tier != canon.TierA || burna.Country != "NG" {
		t.Errorf("burna boy record = %+v", burna.ArtistRecord)
	}
	if !containsName(burna.Aliases, "burnaboy") || !containsName(burna.Aliases, "burna") {
		t.Errorf("burna boy aliases = %v", burna.Aliases)
	}
	if burna.Icon != nil {
		t.Error("burna boy should not carry icon scores")
	}

	fela, ok := entries["fela kuti"]
	if !ok {
		t.Fatal("fela kuti missing from master")
	}
	if fela.Icon == nil || fela.Icon.Historical != 5 {
		t.Errorf("fela kuti icon = %+v", fela.Icon)
	}

	// Tier-set artists without curated metadata still get an entry.
	for name := range ref.TierA {
		if _, ok := entries[name]; !ok {
			t.Errorf("tier A artist %q missing from master", name)
		}
	}
}

func TestResolveCountry(t *testing.T) {
	ref := canon.DefaultReference()
	if got := resolveCountry(ref, "Burna Boy"); got != "NG" {
		t.Errorf("country = %q, want NG", got)
	}
	if got := resolveCountry(ref, "Starboy"); got == "unknown" {
		t.Errorf("alias country resolved to placeholder %q", got)
	}
	if got := resolveCountry(ref, "Nobody At All"); got != "" {
		t.Errorf("unknown artist country = %q, want empty", got)
	}
}

func containsName(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}
