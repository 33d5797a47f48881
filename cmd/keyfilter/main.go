// Command keyfilter removes derived keys from a tile-map JSON file: every
// object entry whose key contains the location-path delimiter is stripped,
// recursively, and the document is written back with its structure otherwise
// intact.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"tilemap/internal/filter"
	"tilemap/internal/keys"
)

func main() {
	input := flag.String("in", "", "input JSON file (required)")
	output := flag.String("out", "", "output file (default: overwrite the input in place)")
	delim := flag.String("delim", keys.Delimiter, "substring identifying derived keys to remove")
	backup := flag.Bool("backup", true, "write a timestamped backup before overwriting the input")
	force := flag.Bool("force", false, "keep going when the backup cannot be written")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	target := *output
	if target == "" {
		target = *input
	}

	fmt.Println("=== Filtering JSON file ===")
	fmt.Printf("Input file: %s\n", *input)
	fmt.Printf("Output file: %s\n", target)
	fmt.Printf("Removing keys containing: %q\n", *delim)

	err := filter.ProcessFile(*input, filter.Options{
		Output: *output,
		Substr: *delim,
		Backup: *backup,
		Force:  *force,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Done, result saved to %s\n", target)
}
