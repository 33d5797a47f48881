// Package scan discovers tile-map JSON files under a root directory and folds
// their per-file extractions into one merged mapping.
//
// File-visit order is whatever the filesystem walk yields and is deliberately
// left unspecified; it only affects the first-seen order inside each
// coordinate list, never which paths and coordinates end up in the result.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"tilemap/internal/extract"
	"tilemap/internal/locmap"
)

// Stats counts the files seen by one run.
type Stats struct {
	// Attempted is every .json file discovered and handed to extraction,
	// including ones that later failed to read or parse.
	Attempted int
	// Extracted is the subset that parsed and extracted cleanly.
	Extracted int
	// Files holds the paths of the cleanly extracted files, in no
	// particular order, so callers can publish the raw documents.
	Files []string
}

// Scanner runs per-file extraction over a directory tree.
type Scanner struct {
	// Workers bounds the parallel extraction goroutines. Zero or negative
	// falls back to a small default. Extraction per file is pure, so the
	// pool size never changes the merged content.
	Workers int
}

// Run walks root, extracts every .json file it finds, and merges the results.
// Files that cannot be read or parsed are reported and skipped; the run keeps
// going. A missing root aborts before any work is done.
func (s *Scanner) Run(ctx context.Context, root string) (locmap.Map, Stats, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, Stats{}, fmt.Errorf("root directory %s: %v", root, err)
	}

	paths, walkErr := s.discover(ctx, root)

	type result struct {
		path string
		m    locmap.Map
		ok   bool
	}
	results := make(chan result)

	workers := s.Workers
	if workers <= 0 {
		workers = 4
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				m, err := extract.File(path)
				if err != nil {
					log.Printf("Error: %v, skipping file", err)
					results <- result{path: path, ok: false}
					continue
				}
				results <- result{path: path, m: m, ok: true}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Single-writer fold: the merged map is only ever touched here, so the
	// structural-dedup rule is applied deterministically no matter which
	// worker finishes first.
	merged := locmap.New()
	var stats Stats
	for r := range results {
		stats.Attempted++
		if !r.ok {
			continue
		}
		stats.Extracted++
		stats.Files = append(stats.Files, r.path)
		merged.Merge(r.m)
	}

	if err := <-walkErr; err != nil {
		return nil, stats, err
	}
	return merged, stats, nil
}

// discover emits the path of every .json file under root on the returned
// channel, closing it when the walk finishes.
func (s *Scanner) discover(ctx context.Context, root string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(out)
		n := 0
		errc <- filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					return err
				}
				log.Printf("Error reading %s: %v, skipping", path, err)
				return nil
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
				return nil
			}

			n++
			fmt.Printf("Processing [%d]: %s\n", n, path)

			select {
			case out <- path:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	return out, errc
}
