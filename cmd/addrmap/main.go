// Command addrmap scans a directory tree for tile-map JSON files, extracts
// every location path with its coordinates, merges the results with
// cross-file deduplication, and writes one summary JSON document. With
// -upload the summary is also stored in the configured S3 bucket.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"tilemap/internal/env"
	"tilemap/internal/keys"
	"tilemap/internal/locmap"
	"tilemap/internal/scan"
	"tilemap/internal/storage"
)

func main() {
	root := flag.String("root", "./data", "directory scanned recursively for tile-map JSON files")
	out := flag.String("out", "address-map.json", "output path for the merged summary")
	workers := flag.Int("workers", 4, "parallel extraction workers")
	upload := flag.Bool("upload", false, "also store the raw documents and the summary in the configured S3 bucket")
	flag.Parse()

	ctx := context.Background()
	start := time.Now()

	fmt.Printf("Scanning %s for tile-map JSON files...\n", *root)

	scanner := &scan.Scanner{Workers: *workers}
	merged, stats, err := scanner.Run(ctx, *root)
	if err != nil {
		log.Fatal(err)
	}

	printReport(merged)

	var data []byte
	if len(merged) == 0 {
		fmt.Println("\nNo location data extracted, not writing an output file.")
	} else {
		data, err = merged.MarshalIndent()
		if err != nil {
			log.Fatalf("Failed to serialize summary: %v", err)
		}
		if err := os.WriteFile(*out, data, 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", *out, err)
		}
		abs, _ := filepath.Abs(*out)
		fmt.Printf("\nResult saved to %s\n", abs)
	}

	if *upload && len(merged) > 0 {
		env.LoadEnv()
		bucket := env.MustGetEnv("TILEMAP_BUCKET_NAME")

		s3Service, err := storage.NewS3Service()
		if err != nil {
			log.Fatal(err)
		}
		if err := s3Service.EnsureBucket(ctx, bucket, ""); err != nil {
			log.Fatal(err)
		}
		uploadDocuments(ctx, s3Service, bucket, *root, stats.Files)
		if err := s3Service.StoreSummary(ctx, bucket, filepath.Base(*out), data); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println()
	fmt.Println("--------------------------------------------------")
	fmt.Printf("Files processed: %d (%d extracted cleanly)\n", stats.Attempted, stats.Extracted)
	fmt.Printf("Locations (all levels): %d\n", len(merged))
	fmt.Printf("Distinct coordinates: %d\n", merged.CoordCount())
	fmt.Printf("Took %s\n", time.Since(start))
	fmt.Println("--------------------------------------------------")
}

// uploadDocuments publishes the raw tile-map files under their scan-relative
// keys. Existing objects are left alone; a failed upload is reported and the
// rest keep going.
func uploadDocuments(ctx context.Context, s3Service *storage.S3Service, bucket, root string, files []string) {
	for _, path := range files {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = filepath.Base(path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Error reading %s for upload: %v, skipping", path, err)
			continue
		}
		if err := s3Service.StoreDocument(ctx, bucket, keys.RawDocument(rel), data); err != nil {
			log.Printf("Error uploading %s: %v", path, err)
		}
	}
}

// printReport lists every location path with its coordinates in presentation
// order: higher levels of the hierarchy first, lexicographic within a level.
func printReport(m locmap.Map) {
	fmt.Println()
	fmt.Println("================================================================================")
	fmt.Println("Locations and their 2D coordinates (sorted by hierarchy path)")
	fmt.Println("================================================================================")

	if len(m) == 0 {
		fmt.Println("No location-coordinate data extracted")
		return
	}

	for i, path := range m.SortedPaths() {
		coords := m[path]
		coordsStr := ""
		for j, c := range coords {
			if j > 0 {
				coordsStr += ", "
			}
			coordsStr += c.String()
		}
		fmt.Printf("\n[%d] Location path: %s\n", i+1, path)
		fmt.Printf("    Coordinates (%d): %s\n", len(coords), coordsStr)
	}
}
