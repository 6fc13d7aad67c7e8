package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "nil", input: nil, expected: nil},
		{name: "empty", input: []string{}, expected: []string{}},
		{name: "centres with padding", input: []string{" VC1", "VC2 "}, expected: []string{"VC1", "VC2"}},
		{name: "repeats keep first position", input: []string{"VC2", "VC1", "VC2"}, expected: []string{"VC2", "VC1"}},
		{name: "blanks dropped", input: []string{"", "  ", "VC1"}, expected: []string{"VC1"}},
		{name: "case sensitive", input: []string{"vc1", "VC1"}, expected: []string{"vc1", "VC1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}
