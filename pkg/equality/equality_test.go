package equality

import "testing"

func TestIs(t *testing.T) {
	shared := []int{1, 2}
	m := map[string]int{"a": 1}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"both nil", nil, nil, true},
		{"one nil", nil, 1, false},
		{"equal ints", 1, 1, true},
		{"different ints", 1, 2, false},
		{"different types", 1, int64(1), false},
		{"equal strings", "x", "x", true},
		{"same slice", shared, shared, true},
		{"different slices same contents", []int{1, 2}, []int{1, 2}, false},
		{"same map", m, m, true},
		{"different maps", map[string]int{"a": 1}, map[string]int{"a": 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.a, tt.b); got != tt.want {
				t.Errorf("Is(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestShallow(t *testing.T) {
	shared := []int{9}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"identical values", 5, 5, true},
		{"equal slices", []any{1, "a"}, []any{1, "a"}, true},
		{"unequal slices", []any{1, "a"}, []any{1, "b"}, false},
		{"length mismatch", []any{1}, []any{1, 2}, false},
		{"nested slices compared by identity", []any{shared}, []any{shared}, true},
		{"nested slices not deep-compared", []any{[]int{9}}, []any{[]int{9}}, false},
		{"equal maps", map[string]any{"a": 1}, map[string]any{"a": 1}, true},
		{"unequal maps", map[string]any{"a": 1}, map[string]any{"a": 2}, false},
		{"missing key", map[string]any{"a": 1}, map[string]any{"b": 1}, false},
		{"nil vs empty slice", nil, []any{}, false},
		{"mismatched kinds", []any{1}, map[string]any{"a": 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Shallow(tt.a, tt.b); got != tt.want {
				t.Errorf("Shallow(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestShallowNeverPanics(t *testing.T) {
	type uncomparable struct {
		s []int
	}
	// Struct values containing slices are not comparable with ==.
	a := uncomparable{s: []int{1}}
	b := uncomparable{s: []int{1}}
	if Shallow(a, b) {
		t.Error("uncomparable structs should compare as not equal, not panic")
	}
}

func TestDeep(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nested slices", []any{[]int{1, 2}}, []any{[]int{1, 2}}, true},
		{"nested maps", map[string]any{"a": map[string]int{"b": 1}}, map[string]any{"a": map[string]int{"b": 1}}, true},
		{"unequal nested", []any{[]int{1}}, []any{[]int{2}}, false},
		{"both nil", nil, nil, true},
		{"nil vs value", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Deep(tt.a, tt.b); got != tt.want {
				t.Errorf("Deep(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
