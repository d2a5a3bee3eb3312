package cli

import (
	"bufio"
	"context"
	"flag"
	"os"
	"strings"

	"github.com/voyomusic/voyo-ops/internal/catalog"
	"github.com/voyomusic/voyo-ops/internal/config"
	"github.com/voyomusic/voyo-ops/internal/output"
	"github.com/voyomusic/voyo-ops/internal/pipeline"
	"github.com/voyomusic/voyo-ops/internal/r2"
)

func runPipeline(args []string) error {
	fs := flag.NewFlagSet("pipeline", flag.ExitOnError)
	workers := fs.Int("workers", 3, "parallel track workers")
	limit := fs.Int("limit", 0, "max tracks to process (0 = all)")
	offset := fs.Int("offset", 0, "tracks to skip in the store")
	mp3 := fs.Bool("mp3", false, "also publish a tagged mp3 rendition")
	input := fs.String("input", "", "file of video ids, one per line, instead of the track store")
	dbPath := fs.String("db", "", "SQLite catalog path (default $VOYO_CATALOG)")
	noTrack := fs.Bool("no-track", false, "skip recording uploads in the local catalog")
	quiet := fs.Bool("quiet", false, "suppress progress output")
	if err := fs.Parse(args); err != nil {
		return wrapCategory(CategoryUsage, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return wrapCategory(CategoryUsage, err)
	}
	if err := cfg.RequireR2(); err != nil {
		return wrapCategory(CategoryUsage, err)
	}
	printer := output.NewPrinter(*quiet)
	ctx := context.Background()

	objects, err := r2.New(r2.Config{
		AccountID: cfg.R2AccountID,
		AccessKey: cfg.R2AccessKey,
		SecretKey: cfg.R2SecretKey,
		Bucket:    cfg.R2Bucket,
		PublicURL: cfg.R2PublicURL,
	})
	if err != nil {
		return wrapCategory(CategoryStorage, err)
	}

	var ids []string
	if *input != "" {
		ids, err = readIDFile(*input)
		if err != nil {
			return err
		}
		if *offset > 0 && *offset < len(ids) {
			ids = ids[*offset:]
		}
		if *limit > 0 && *limit < len(ids) {
			ids = ids[:*limit]
		}
	} else {
		cl, err := storeClient(cfg)
		if err != nil {
			return err
		}
		tracks, err := fetchTracks(ctx, cl, *offset, *limit, 100)
		if err != nil {
			return err
		}
		for _, t := range tracks {
			if t.ID != "" {
				ids = append(ids, t.ID)
			}
		}
	}
	if len(ids) == 0 {
		return categorizef(CategoryUnavailable, "no tracks to process")
	}

	transcoder, err := pipeline.NewFFmpegTranscoder()
	if err != nil {
		return wrapCategory(CategoryTranscode, err)
	}

	var tracker pipeline.UploadTracker
	if !*noTrack {
		path := *dbPath
		if path == "" {
			path = cfg.CatalogPath
		}
		db, err := catalog.Open(path)
		if err != nil {
			return wrapCategory(CategoryStorage, err)
		}
		defer db.Close()
		tracker = db
	}

	p, err := pipeline.New(pipeline.NewYouTubeFetcher(), transcoder, objects, tracker, printer, pipeline.Options{
		Workers: *workers,
		TempDir: cfg.TempDir,
		MP3:     *mp3,
	})
	if err != nil {
		return wrapCategory(CategoryUsage, err)
	}

	printer.Banner("VOYO AUDIO PIPELINE")
	printer.Log("processing %d tracks with %d workers", len(ids), *workers)

	// Per-track failures are tallied in the summary; a completed run exits 0.
	if _, err := p.Run(ctx, ids); err != nil {
		return wrapCategory(CategoryNetwork, err)
	}
	return nil
}

// readIDFile loads one video id per line, ignoring blanks and # comments.
func readIDFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapCategory(CategoryFilesystem, err)
	}
	defer f.Close()

	var ids []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	if err := sc.Err(); err != nil {
		return nil, wrapCategory(CategoryFilesystem, err)
	}
	return ids, nil
}
