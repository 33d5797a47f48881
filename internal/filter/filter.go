// Package filter applies the derived-key strip transform to JSON files on
// disk, with an optional timestamped backup of the original before an
// in-place overwrite.
package filter

import (
	"fmt"
	"log"
	"os"
	"time"

	"tilemap/pkg/jsontree"
)

const backupTimeFormat = "20060102_150405"

// Options controls one ProcessFile run.
type Options struct {
	// Output is the destination path. Empty means overwrite Input in place.
	Output string
	// Substr marks the keys to remove; any object key containing it is
	// stripped together with its subtree.
	Substr string
	// Backup writes a byte-identical copy of the original beside it before
	// an in-place overwrite. Ignored when Output points elsewhere.
	Backup bool
	// Force keeps going when the backup cannot be written instead of
	// aborting.
	Force bool
}

// ProcessFile reads the JSON document at input, strips every matching key,
// and writes the result. A missing or unparseable input aborts without
// touching the destination.
func ProcessFile(input string, opts Options) error {
	output := opts.Output
	if output == "" {
		output = input
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %v", input, err)
	}
	fmt.Printf("Read %s\n", input)

	if opts.Backup && output == input {
		backupPath := fmt.Sprintf("%s.backup.%s", input, time.Now().Format(backupTimeFormat))
		if err := os.WriteFile(backupPath, data, 0644); err != nil {
			if !opts.Force {
				return fmt.Errorf("failed to back up %s: %v (pass -force to overwrite without a backup)", input, err)
			}
			log.Printf("Warning: failed to back up %s: %v", input, err)
		} else {
			fmt.Printf("Backed up original file to %s\n", backupPath)
		}
	}

	root, err := jsontree.Parse(data)
	if err != nil {
		return fmt.Errorf("invalid JSON in %s: %v", input, err)
	}

	out, err := jsontree.MarshalIndent(root.Strip(opts.Substr))
	if err != nil {
		return fmt.Errorf("failed to serialize result for %s: %v", input, err)
	}

	if err := os.WriteFile(output, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %v", output, err)
	}
	return nil
}
