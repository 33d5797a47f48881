// Package extract turns one tile-map document into a location-path to
// coordinate mapping. Extraction is pure with respect to the document, so
// callers are free to run it per file in parallel and fold the results
// afterwards.
package extract

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"tilemap/internal/keys"
	"tilemap/internal/locmap"
	"tilemap/internal/models"
)

// Document walks the tiles of one parsed document in order and returns the
// mapping from each address prefix to the distinct coordinates seen on it.
// Tiles with an invalid coordinate are reported and skipped; tiles without a
// usable address are skipped silently since there is nothing to attribute the
// coordinate to. Neither condition is fatal to the document. src labels
// warnings with the document's origin.
func Document(doc models.Document, src string) locmap.Map {
	out := locmap.New()
	if len(doc.Tiles) == 0 {
		log.Printf("Warning: no tiles found in %s", src)
		return out
	}

	for i, tile := range doc.Tiles {
		coord, ok := tile.Coordinate()
		if !ok {
			log.Printf("Warning: tile[%d] in %s has an invalid coord, skipping: %v", i+1, src, tile.Coord)
			continue
		}

		levels, ok := tile.AddressLevels()
		if !ok {
			continue
		}

		for k := range levels {
			out.Add(keys.Join(levels[:k+1]), coord)
		}
	}
	return out
}

// Reader decodes a tile-map document from r and extracts its mapping.
// Numbers are decoded in their literal form so that non-integer coordinates
// like 1.5 are rejected rather than silently truncated.
func Reader(r io.Reader, src string) (locmap.Map, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc models.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %v", src, err)
	}
	// Decode stops after the first value; the whole file must be one document.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("invalid JSON in %s: trailing data after document", src)
	}
	return Document(doc, src), nil
}

// File reads one JSON file and extracts its mapping.
func File(path string) (locmap.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}
	defer f.Close()

	return Reader(f, path)
}
