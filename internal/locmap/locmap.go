// Package locmap holds the accumulating location-path to coordinate mapping.
// Coordinates are deduplicated structurally per path, first occurrence wins
// the slot, and serialization fixes the presentation order (paths sorted by
// hierarchy depth, then lexicographic).
package locmap

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/iancoleman/orderedmap"

	"tilemap/internal/keys"
	"tilemap/internal/models"
)

// Map maps a location path to its deduplicated, insertion-ordered coordinates.
// It is not safe for concurrent writers; merging across files must stay a
// single-writer fold.
type Map map[string][]models.Coord

func New() Map {
	return make(Map)
}

// Add appends c to path's list unless an equal coordinate is already present.
// It reports whether the coordinate was added.
func (m Map) Add(path string, c models.Coord) bool {
	for _, have := range m[path] {
		if have == c {
			return false
		}
	}
	m[path] = append(m[path], c)
	return true
}

// Merge folds other into m, applying the same structural-dedup rule as Add.
func (m Map) Merge(other Map) {
	for path, coords := range other {
		for _, c := range coords {
			m.Add(path, c)
		}
	}
}

// SortedPaths returns every location path in presentation order.
func (m Map) SortedPaths() []string {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Slice(paths, func(i, j int) bool {
		return keys.Less(paths[i], paths[j])
	})
	return paths
}

// CoordCount returns the total number of coordinates across all paths,
// after deduplication.
func (m Map) CoordCount() int {
	total := 0
	for _, coords := range m {
		total += len(coords)
	}
	return total
}

// MarshalIndent serializes the map with paths in presentation order,
// two-space indentation, and non-ASCII characters left unescaped so that
// location names survive round-trips readably.
func (m Map) MarshalIndent() ([]byte, error) {
	om := orderedmap.New()
	om.SetEscapeHTML(false)
	for _, path := range m.SortedPaths() {
		om.Set(path, m[path])
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(om); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
