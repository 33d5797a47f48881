package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Coord is a 2D map coordinate. It marshals as a two-element JSON array.
type Coord [2]int

func (c Coord) String() string {
	return fmt.Sprintf("[%d, %d]", c[0], c[1])
}

// Document is the top-level shape of one generated tile-map file.
type Document struct {
	Tiles []Tile `json:"tiles"`
}

// Tile is one map cell as emitted by the tile-map generator. Coord and Address
// stay loosely typed because the generator is known to emit malformed records;
// use Coordinate and AddressLevels to validate them. Other fields on a tile
// are ignored.
type Tile struct {
	Coord   any `json:"coord"`
	Address any `json:"address"`
}

// Coordinate validates the raw coord field: exactly two JSON integers.
// The document must have been decoded with UseNumber so that non-integer
// literals like 1.5 can be told apart from integers.
func (t Tile) Coordinate() (Coord, bool) {
	raw, ok := t.Coord.([]any)
	if !ok || len(raw) != 2 {
		return Coord{}, false
	}
	var c Coord
	for i, v := range raw {
		n, ok := v.(json.Number)
		if !ok {
			return Coord{}, false
		}
		parsed, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return Coord{}, false
		}
		c[i] = int(parsed)
	}
	return c, true
}

// AddressLevels validates the raw address field: a non-empty list of strings.
// Each level is returned with surrounding whitespace trimmed.
func (t Tile) AddressLevels() ([]string, bool) {
	raw, ok := t.Address.([]any)
	if !ok || len(raw) == 0 {
		return nil, false
	}
	levels := make([]string, len(raw))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		levels[i] = strings.TrimSpace(s)
	}
	return levels, true
}
