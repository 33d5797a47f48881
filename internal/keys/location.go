// Package keys builds the delimiter-joined location paths that key the
// extractor's merged mapping, and defines their presentation order.
package keys

import (
	"path/filepath"
	"strings"
)

// Delimiter joins address levels into a location path. It is also the
// substring that marks a derived key for removal by the key filter, so the
// two tools stay in agreement about which keys are generated.
const Delimiter = "->"

// Join builds the location path for one address prefix.
func Join(levels []string) string {
	return strings.Join(levels, Delimiter)
}

// Levels reports how many hierarchy levels a location path encodes.
func Levels(path string) int {
	return strings.Count(path, Delimiter) + 1
}

// RawDocument returns the canonical S3 key for a raw tile-map document,
// given its path relative to the scan root.
func RawDocument(relPath string) string {
	return "raw_data/" + filepath.ToSlash(relPath)
}

// Less orders paths for presentation: fewer hierarchy levels first, then
// lexicographic within the same depth.
func Less(a, b string) bool {
	la, lb := Levels(a), Levels(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
