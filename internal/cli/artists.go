package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/voyomusic/voyo-ops/internal/canon"
	"github.com/voyomusic/voyo-ops/internal/musicbrainz"
	"github.com/voyomusic/voyo-ops/internal/output"
)

// fuzzyThreshold is the minimum Jaro-Winkler similarity accepted as an
// artist-name match.
const fuzzyThreshold = 0.88

// artistEntry is one row of the artist master file.
type artistEntry struct {
	canon.ArtistRecord
	Vibes   canon.VibeScores `json:"vibes"`
	Aliases []string         `json:"aliases,omitempty"`
	Icon    *canon.IconScore `json:"icon,omitempty"`

	MBID       string `json:"mbid,omitempty"`
	MBCountry  string `json:"mb_country,omitempty"`
	ArtistType string `json:"artist_type,omitempty"`
}

func runArtists(args []string) error {
	fs := flag.NewFlagSet("artists", flag.ExitOnError)
	outPath := fs.String("output", "data/artist_master.json", "artist master file path")
	refPath := fs.String("reference", "", "JSON overlay for the artist reference data")
	research := fs.Bool("research", false, "enrich entries via the MusicBrainz API")
	match := fs.Bool("match", false, "match the name arguments against the reference instead of writing the file")
	quiet := fs.Bool("quiet", false, "suppress progress output")
	if err := fs.Parse(args); err != nil {
		return wrapCategory(CategoryUsage, err)
	}

	printer := output.NewPrinter(*quiet)
	ref, err := loadReference(*refPath)
	if err != nil {
		return err
	}

	if *match {
		names := fs.Args()
		if len(names) == 0 {
			return categorizef(CategoryUsage, "artists --match needs at least one name argument")
		}
		return matchNames(ref, names)
	}

	entries := buildMaster(ref)
	if *research {
		researchEntries(context.Background(), entries, printer)
	}

	if dir := filepath.Dir(*outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return wrapCategory(CategoryFilesystem, err)
		}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return wrapCategory(CategoryFilesystem, err)
	}
	if err := os.WriteFile(*outPath, append(data, '\n'), 0o644); err != nil {
		return wrapCategory(CategoryFilesystem, err)
	}
	printer.Log("wrote %d artists to %s", len(entries), *outPath)
	return nil
}

// buildMaster folds the reference into per-artist entries keyed by
// normalized name.
func buildMaster(ref *canon.Reference) map[string]*artistEntry {
	entries := make(map[string]*artistEntry)
	for name, rec := range ref.MasterRecords() {
		e := &artistEntry{ArtistRecord: rec, Vibes: canon.VibesFor(rec.PrimaryGenre)}
		if icon, ok := ref.Icons[name]; ok {
			iconCopy := icon
			e.Icon = &iconCopy
		}
		entries[name] = e
	}
	for alias, target := range ref.Aliases {
		if e, ok := entries[target]; ok {
			e.Aliases = append(e.Aliases, alias)
		}
	}
	for _, e := range entries {
		sort.Strings(e.Aliases)
	}
	return entries
}

// researchEntries fills in MusicBrainz ids and countries for entries that
// lack one. Lookup failures leave the entry untouched.
func researchEntries(ctx context.Context, entries map[string]*artistEntry, printer *output.Printer) {
	mb := musicbrainz.New()
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		e := entries[name]
		prefix := printer.Prefix(i+1, len(names), name)
		artist, err := mb.SearchArtist(ctx, name)
		if err != nil {
			printer.ItemFail(prefix, err)
			continue
		}
		if artist == nil {
			printer.ItemSkip(prefix, "no MusicBrainz match")
			continue
		}
		e.MBID = artist.ID
		e.MBCountry = artist.Country
		e.ArtistType = artist.Type
		printer.ItemOK(prefix, artist.Country)
	}
}

// matchNames resolves each free-text name against the reference, exact
// first, then fuzzy, and prints one line per name on stdout.
func matchNames(ref *canon.Reference, names []string) error {
	candidates := matchCandidates(ref)
	matched := 0
	for _, name := range names {
		canonical, score, ok := matchArtist(ref, candidates, name)
		if !ok {
			fmt.Printf("%s\tno match\n", name)
			continue
		}
		matched++
		fmt.Printf("%s\t%s\ttier=%s\tscore=%.2f\n", name, canonical, ref.ResolveTier(canonical), score)
	}
	if matched == 0 {
		return categorizef(CategoryUnavailable, "no names matched")
	}
	return nil
}

// matchCandidates lists every name the matcher may resolve to: master
// records, tier sets and aliases.
func matchCandidates(ref *canon.Reference) []string {
	seen := make(map[string]struct{})
	for name := range ref.Master {
		seen[name] = struct{}{}
	}
	for name := range ref.TierA {
		seen[name] = struct{}{}
	}
	for name := range ref.TierB {
		seen[name] = struct{}{}
	}
	for alias := range ref.Aliases {
		seen[alias] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// matchArtist resolves a free-text name to a canonical reference name.
// Exact (post-normalization, post-alias) matches score 1.0; otherwise the
// best Jaro-Winkler candidate above fuzzyThreshold wins.
func matchArtist(ref *canon.Reference, candidates []string, name string) (string, float64, bool) {
	n := canon.NormalizeName(name)
	if n == "" {
		return "", 0, false
	}
	if target, ok := ref.Aliases[n]; ok {
		n = target
	}
	if _, ok := ref.Master[n]; ok {
		return n, 1.0, true
	}
	if _, ok := ref.TierA[n]; ok {
		return n, 1.0, true
	}
	if _, ok := ref.TierB[n]; ok {
		return n, 1.0, true
	}

	jw := metrics.NewJaroWinkler()
	best, bestScore := "", 0.0
	for _, cand := range candidates {
		if score := strutil.Similarity(n, cand, jw); score > bestScore {
			best, bestScore = cand, score
		}
	}
	if bestScore < fuzzyThreshold {
		return "", 0, false
	}
	if target, ok := ref.Aliases[best]; ok {
		best = target
	}
	return best, bestScore, true
}
