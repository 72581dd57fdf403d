package analytics

import (
	"reflect"
	"testing"
)

func TestSubtract(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		exclude  []string
		expected []string
	}{
		{
			name:     "disjoint sets",
			ids:      []string{"a", "b"},
			exclude:  []string{"c", "d"},
			expected: []string{"a", "b"},
		},
		{
			name:     "full overlap",
			ids:      []string{"a", "b"},
			exclude:  []string{"b", "a"},
			expected: nil,
		},
		{
			name:     "partial overlap independent of ordering",
			ids:      []string{"c", "a", "b"},
			exclude:  []string{"b"},
			expected: []string{"c", "a"},
		},
		{
			name:     "exclude longer than input",
			ids:      []string{"a"},
			exclude:  []string{"x", "y", "z", "a"},
			expected: nil,
		},
		{
			name:     "empty input",
			ids:      nil,
			exclude:  []string{"a"},
			expected: nil,
		},
		{
			name:     "empty exclusion",
			ids:      []string{"a", "b"},
			exclude:  nil,
			expected: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := subtract(tt.ids, tt.exclude)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("subtract() = %v, want %v", got, tt.expected)
			}
		})
	}
}
