package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/voyomusic/voyo-ops/internal/canon"
	"github.com/voyomusic/voyo-ops/internal/catalog"
	"github.com/voyomusic/voyo-ops/internal/config"
	"github.com/voyomusic/voyo-ops/internal/llm"
	"github.com/voyomusic/voyo-ops/internal/output"
)

func runCanonize(args []string) error {
	fs := flag.NewFlagSet("canonize", flag.ExitOnError)
	input := fs.String("input", "", "classify tracks from a JSON file instead of the track store")
	outPath := fs.String("output", "data/canonized.json", "corpus document path")
	limit := fs.Int("limit", 0, "max tracks to classify (0 = all)")
	offset := fs.Int("offset", 0, "tracks to skip in the store")
	batchSize := fs.Int("batch-size", 100, "tracks per store fetch page")
	useLLM := fs.Bool("llm", false, "refine pattern results with the language model")
	sample := fs.Int("sample", 0, "classify N tracks, print them and write nothing")
	noSave := fs.Bool("no-save", false, "skip the local catalog")
	dbPath := fs.String("db", "", "SQLite catalog path (default $VOYO_CATALOG)")
	refPath := fs.String("reference", "", "JSON overlay for the artist reference data")
	quiet := fs.Bool("quiet", false, "suppress progress output")
	jsonOut := fs.Bool("json", false, "emit one JSON result per line instead of progress")
	if err := fs.Parse(args); err != nil {
		return wrapCategory(CategoryUsage, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return wrapCategory(CategoryUsage, err)
	}
	printer := output.NewPrinter(*quiet || *jsonOut)
	ctx := context.Background()

	ref, err := loadReference(*refPath)
	if err != nil {
		return err
	}

	var tracks []canon.Track
	if *input != "" {
		tracks, err = loadTrackFile(*input)
		if err != nil {
			return err
		}
		if *offset > 0 && *offset < len(tracks) {
			tracks = tracks[*offset:]
		}
		if *limit > 0 && *limit < len(tracks) {
			tracks = tracks[:*limit]
		}
	} else {
		cl, err := storeClient(cfg)
		if err != nil {
			return err
		}
		if total, err := cl.Count(ctx); err == nil {
			printer.Log("track store holds %d rows", total)
		}
		tracks, err = fetchTracks(ctx, cl, *offset, *limit, *batchSize)
		if err != nil {
			return err
		}
	}
	if *sample > 0 && *sample < len(tracks) {
		tracks = tracks[:*sample]
	}
	if len(tracks) == 0 {
		return categorizef(CategoryUnavailable, "no tracks to classify")
	}

	printer.Banner(fmt.Sprintf("VOYO CANONIZER %s", output.DocumentVersion))
	printer.Log("classifying %d tracks", len(tracks))

	classifier := canon.NewClassifier(ref)
	results := classifier.ClassifyBatch(tracks)

	llmUsed := false
	if *useLLM {
		if cfg.AnthropicAPIKey == "" {
			printer.Log("ANTHROPIC_API_KEY not set, skipping model refinement")
		} else {
			llmUsed = refineWithModel(ctx, cfg.AnthropicAPIKey, tracks, results, printer)
		}
	}

	canon.ApplyViewPercentiles(results)
	summary := canon.Summarize(results)
	printStatistics(printer, summary)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		for i := range results {
			if err := enc.Encode(&results[i]); err != nil {
				return wrapCategory(CategoryFilesystem, err)
			}
		}
	}

	if *sample > 0 {
		if !*jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(results); err != nil {
				return wrapCategory(CategoryFilesystem, err)
			}
		}
		return nil
	}

	doc := output.NewDocument(results, llmUsed)
	if err := output.WriteDocument(*outPath, doc); err != nil {
		return wrapCategory(CategoryFilesystem, err)
	}
	printer.Log("wrote %s", *outPath)

	if !*noSave {
		path := *dbPath
		if path == "" {
			path = cfg.CatalogPath
		}
		db, err := catalog.Open(path)
		if err != nil {
			return wrapCategory(CategoryStorage, err)
		}
		defer db.Close()
		if err := db.SaveResults(results); err != nil {
			return wrapCategory(CategoryStorage, err)
		}
		printer.Log("saved %d classifications to %s", len(results), path)
	}
	return nil
}

// refineWithModel runs the hybrid layer batch by batch. A failed batch
// leaves its tracks on their pattern results; refinement never fails the
// run. Reports whether any batch succeeded.
func refineWithModel(ctx context.Context, apiKey string, tracks []canon.Track, results []canon.Result, printer *output.Printer) bool {
	backend, err := llm.New(apiKey)
	if err != nil {
		printer.Log("model refinement disabled: %v", err)
		return false
	}
	any := false
	for base := 0; base < len(tracks); base += llm.BatchSize {
		end := base + llm.BatchSize
		if end > len(tracks) {
			end = len(tracks)
		}
		overrides, err := backend.ClassifyBatch(ctx, tracks[base:end])
		if err != nil {
			printer.Log("model batch %d-%d failed: %v", base+1, end, err)
			continue
		}
		any = true
		for i, ov := range overrides {
			canon.Merge(&results[base+i], ov)
		}
	}
	return any
}

// loadTrackFile reads tracks from a JSON file: either a plain track array
// or a previously written corpus document.
func loadTrackFile(path string) ([]canon.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapCategory(CategoryFilesystem, err)
	}
	var tracks []canon.Track
	if err := json.Unmarshal(data, &tracks); err == nil {
		return tracks, nil
	}
	var doc output.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, wrapCategory(CategoryUsage, fmt.Errorf("parsing %s: %w", path, err))
	}
	tracks = make([]canon.Track, 0, len(doc.Tracks))
	for _, r := range doc.Tracks {
		tracks = append(tracks, canon.Track{
			ID:        r.ID,
			Title:     r.Title,
			Artist:    r.Artist,
			Channel:   r.Channel,
			ViewCount: r.ViewCount,
		})
	}
	return tracks, nil
}

func printStatistics(printer *output.Printer, s canon.Summary) {
	printer.Banner("STATISTICS")
	printer.Log("ARTIST TIERS")
	for _, tier := range []canon.Tier{canon.TierA, canon.TierB, canon.TierC, canon.TierD} {
		if n := s.ByTier[tier]; n > 0 {
			printer.Log("%s", output.DistributionLine(string(tier), n, s.Share(n)))
		}
	}
	printer.Log("CANON LEVELS")
	for _, level := range []canon.Level{canon.LevelCore, canon.LevelEssential, canon.LevelDeepCut, canon.LevelArchive, canon.LevelEcho} {
		if n := s.ByCanon[level]; n > 0 {
			printer.Log("%s", output.DistributionLine(string(level), n, s.Share(n)))
		}
	}
	printer.Log("CONTENT TYPES")
	for _, ct := range sortedKeys(s.ByContentType) {
		printer.Log("%s", output.DistributionLine(string(ct), s.ByContentType[ct], s.Share(s.ByContentType[ct])))
	}
	printer.Log("ERAS")
	for _, era := range sortedKeys(s.ByEra) {
		printer.Log("%s", output.DistributionLine(era, s.ByEra[era], s.Share(s.ByEra[era])))
	}
	printer.Log("echo tracks: %d | average confidence: %.2f", s.EchoCount, s.AvgConfidence)
}

func sortedKeys[K ~string](m map[K]int) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
