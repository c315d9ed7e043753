package jsonutil

import "testing"

func TestClone_Independence(t *testing.T) {
	src := map[string]any{
		"a": map[string]any{"b": []any{1.0, "x"}},
		"s": "keep",
	}
	dup := CloneMap(src)
	dup["a"].(map[string]any)["b"].([]any)[0] = 9.0
	dup["s"] = "changed"

	if src["a"].(map[string]any)["b"].([]any)[0] != 1.0 {
		t.Fatalf("clone aliased nested slice")
	}
	if src["s"] != "keep" {
		t.Fatalf("clone aliased scalar entry")
	}
}

func TestClone_Scalars(t *testing.T) {
	for _, v := range []any{nil, "s", 1.5, true} {
		if got := Clone(v); got != v {
			t.Fatalf("scalar clone changed %v -> %v", v, got)
		}
	}
}

func TestEqual(t *testing.T) {
	a := map[string]any{"x": []any{1.0, 2.0}, "y": "z"}
	b := map[string]any{"y": "z", "x": []any{1.0, 2.0}}
	if !Equal(a, b) {
		t.Fatalf("expected equal regardless of key order")
	}
	b["x"].([]any)[1] = 3.0
	if Equal(a, b) {
		t.Fatalf("expected inequality after mutation")
	}
}
