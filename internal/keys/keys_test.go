package keys

import (
	"path/filepath"
	"testing"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name   string
		levels []string
		want   string
	}{
		{"single level", []string{"A"}, "A"},
		{"two levels", []string{"A", "B"}, "A->B"},
		{"three levels", []string{"A", "B", "C"}, "A->B->C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.levels); got != tt.want {
				t.Errorf("Join(%v) = %q, want %q", tt.levels, got, tt.want)
			}
		})
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"A", 1},
		{"A->B", 2},
		{"A->B->C", 3},
	}

	for _, tt := range tests {
		if got := Levels(tt.path); got != tt.want {
			t.Errorf("Levels(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestRawDocument(t *testing.T) {
	tests := []struct {
		name    string
		relPath string
		want    string
	}{
		{"flat file", "map.json", "raw_data/map.json"},
		{"nested file", filepath.Join("region", "map.json"), "raw_data/region/map.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RawDocument(tt.relPath); got != tt.want {
				t.Errorf("RawDocument(%q) = %q, want %q", tt.relPath, got, tt.want)
			}
		})
	}
}

func TestLess(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"fewer levels first", "Z", "A->B", true},
		{"more levels last", "A->B", "Z", false},
		{"lexicographic within a depth", "A->B", "A->C", true},
		{"equal paths are not less", "A->B", "A->B", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Less(tt.a, tt.b); got != tt.want {
				t.Errorf("Less(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
