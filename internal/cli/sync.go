package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/voyomusic/voyo-ops/internal/canon"
	"github.com/voyomusic/voyo-ops/internal/config"
	"github.com/voyomusic/voyo-ops/internal/output"
	"github.com/voyomusic/voyo-ops/internal/store"
)

func runSync(args []string) error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	limit := fs.Int("limit", 0, "max tracks to scan (0 = all)")
	offset := fs.Int("offset", 0, "tracks to skip in the store")
	batchSize := fs.Int("batch-size", 100, "tracks per store fetch page")
	dryRun := fs.Bool("dry-run", false, "resolve tiers but do not patch the store")
	refPath := fs.String("reference", "", "JSON overlay for the artist reference data")
	quiet := fs.Bool("quiet", false, "suppress progress output")
	if err := fs.Parse(args); err != nil {
		return wrapCategory(CategoryUsage, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return wrapCategory(CategoryUsage, err)
	}
	printer := output.NewPrinter(*quiet)
	ctx := context.Background()

	ref, err := loadReference(*refPath)
	if err != nil {
		return err
	}
	cl, err := storeClient(cfg)
	if err != nil {
		return err
	}

	tracks, err := fetchTracks(ctx, cl, *offset, *limit, *batchSize)
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		return categorizef(CategoryUnavailable, "no tracks to sync")
	}

	printer.Banner("TIER SYNC")
	printer.Log("scanning %d tracks", len(tracks))

	updated, skipped, failed := 0, 0, 0
	for i, t := range tracks {
		prefix := printer.Prefix(i+1, len(tracks), fmt.Sprintf("%s - %s", t.Artist, t.Title))

		// Only curated tiers are pushed back; D is the default the store
		// rows already imply, and no text rule assigns C.
		tier := ref.ResolveTier(t.Artist)
		if tier != canon.TierA && tier != canon.TierB {
			skipped++
			printer.ItemSkip(prefix, "uncurated artist")
			continue
		}

		u := store.TierUpdate{VideoID: t.ID, Tier: tier, Country: resolveCountry(ref, t.Artist)}
		if *dryRun {
			updated++
			printer.ItemOK(prefix, fmt.Sprintf("tier %s (dry run)", tier))
			continue
		}
		if err := cl.UpdateTier(ctx, u); err != nil {
			failed++
			printer.ItemFail(prefix, err)
			continue
		}
		updated++
		printer.ItemOK(prefix, fmt.Sprintf("tier %s", tier))
	}

	printer.Summary(updated, failed, skipped)
	return nil
}

// resolveCountry looks up the curated country for an artist, or "" when the
// record is absent or a placeholder.
func resolveCountry(ref *canon.Reference, artist string) string {
	n := canon.NormalizeName(artist)
	if target, ok := ref.Aliases[n]; ok {
		n = target
	}
	rec, ok := ref.Master[n]
	if !ok || rec.Country == "unknown" {
		return ""
	}
	return rec.Country
}
