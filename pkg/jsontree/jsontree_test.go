package jsontree_test

import (
	"bytes"
	"strings"
	"testing"

	"tilemap/pkg/jsontree"
)

func strip(t *testing.T, input, substr string) string {
	t.Helper()
	n, err := jsontree.Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", input, err)
	}
	var buf bytes.Buffer
	n.Strip(substr).Write(&buf)
	return buf.String()
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		substr string
		want   string
	}{
		{
			name:   "removes matching keys at top level",
			input:  `{"a":1,"x->y":2,"b":3}`,
			substr: "->",
			want:   `{"a":1,"b":3}`,
		},
		{
			name:   "removes matching keys at any depth",
			input:  `{"a":{"b->c":1,"d":{"e->f":2,"g":3}}}`,
			substr: "->",
			want:   `{"a":{"d":{"g":3}}}`,
		},
		{
			name:   "removes whole subtree of a matching key",
			input:  `{"x->y":{"kept_inside":1},"z":2}`,
			substr: "->",
			want:   `{"z":2}`,
		},
		{
			name:   "arrays are processed element-wise, elements never removed",
			input:  `[{"p->q":1},5,"s->t",[{"u->v":2}]]`,
			substr: "->",
			want:   `[{},5,"s->t",[{}]]`,
		},
		{
			name:   "object with every key filtered becomes empty object",
			input:  `{"a":{"x->y":1,"y->z":2},"b":1}`,
			substr: "->",
			want:   `{"a":{},"b":1}`,
		},
		{
			name:   "scalars pass through unchanged",
			input:  `"a->b"`,
			substr: "->",
			want:   `"a->b"`,
		},
		{
			name:   "no-op when no key contains the substring",
			input:  `{"a":1,"b":[true,null,1.5],"c":{"d":"x"}}`,
			substr: "->",
			want:   `{"a":1,"b":[true,null,1.5],"c":{"d":"x"}}`,
		},
		{
			name:   "key order is preserved",
			input:  `{"z":1,"m->n":2,"a":3,"k":4}`,
			substr: "->",
			want:   `{"z":1,"a":3,"k":4}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strip(t, tt.input, tt.substr)
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStrip_Idempotent(t *testing.T) {
	input := `{"a":1,"x->y":2,"b":{"c->d":3,"e":[{"f->g":4}]}}`

	once := strip(t, input, "->")
	twice := strip(t, once, "->")
	if once != twice {
		t.Errorf("stripping twice changed the result: %s vs %s", once, twice)
	}
}

func TestMarshalIndent_PreservesNonASCII(t *testing.T) {
	input := `{"星澜里2号":{"星澜里2号->浴室":[85,12],"coord":[85,12]}}`

	n, err := jsontree.Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	out, err := jsontree.MarshalIndent(n.Strip("->"))
	if err != nil {
		t.Fatalf("MarshalIndent returned error: %v", err)
	}

	got := string(out)
	if !strings.Contains(got, "星澜里2号") {
		t.Errorf("non-ASCII characters were escaped: %s", got)
	}
	if strings.Contains(got, "浴室") {
		t.Errorf("derived key survived the strip: %s", got)
	}
	if !strings.Contains(got, "\n  ") {
		t.Errorf("output is not indented: %s", got)
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	if _, err := jsontree.Parse([]byte(`{"a":`)); err == nil {
		t.Error("expected an error for truncated JSON, got nil")
	}
}
