// Package cli wires the voyo subcommands: flag parsing, dependency
// construction from the environment, and exit-code mapping. The command
// logic itself lives in the internal packages it composes.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/voyomusic/voyo-ops/internal/canon"
	"github.com/voyomusic/voyo-ops/internal/config"
	"github.com/voyomusic/voyo-ops/internal/store"
)

// Run dispatches a subcommand and returns the process exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return ExitCode(categorizef(CategoryUsage, "no command given"))
	}

	var err error
	switch args[0] {
	case "canonize":
		err = runCanonize(args[1:])
	case "pipeline":
		err = runPipeline(args[1:])
	case "artists":
		err = runArtists(args[1:])
	case "sync":
		err = runSync(args[1:])
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		printUsage(os.Stderr)
		return ExitCode(categorizef(CategoryUsage, "unknown command"))
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return ExitCode(err)
	}
	return 0
}

func printUsage(w *os.File) {
	fmt.Fprintf(w, `usage: voyo <command> [options]

commands:
  canonize   classify tracks and write the canonized corpus document
  pipeline   download, transcode and upload track audio
  artists    build or query the artist master reference
  sync       push resolved artist tiers back to the track store

run "voyo <command> -h" for command options
`)
}

// loadReference builds the curated reference, applying an optional overlay
// file on top of the built-in tables.
func loadReference(path string) (*canon.Reference, error) {
	ref := canon.DefaultReference()
	if path != "" {
		if err := ref.LoadOverlay(path); err != nil {
			return nil, wrapCategory(CategoryFilesystem, err)
		}
	}
	return ref, nil
}

// storeClient validates the track-store settings and dials the client.
func storeClient(cfg config.Config) (*store.Client, error) {
	if err := cfg.RequireSupabase(); err != nil {
		return nil, wrapCategory(CategoryUsage, err)
	}
	cl, err := store.New(store.Config{URL: cfg.SupabaseURL, Key: cfg.SupabaseKey})
	if err != nil {
		return nil, wrapCategory(CategoryUsage, err)
	}
	return cl, nil
}

// fetchTracks pages through the track store until limit tracks are read or
// the store runs dry. limit 0 means everything.
func fetchTracks(ctx context.Context, cl *store.Client, offset, limit, pageSize int) ([]canon.Track, error) {
	if pageSize < 1 {
		pageSize = 100
	}
	var tracks []canon.Track
	for {
		page := pageSize
		if limit > 0 && limit-len(tracks) < page {
			page = limit - len(tracks)
		}
		if page <= 0 {
			break
		}
		batch, err := cl.FetchTracks(ctx, offset+len(tracks), page)
		if err != nil {
			return nil, wrapCategory(CategoryNetwork, err)
		}
		tracks = append(tracks, batch...)
		if len(batch) < page {
			break
		}
	}
	return tracks, nil
}
