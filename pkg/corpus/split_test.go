package corpus

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitReader(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		opts     []SplitOption
		expected []string
	}{
		{
			name:     "Prose",
			input:    "Jean-Luc met O'Brien, twice.\n\nThen 42 ships left!",
			expected: []string{"Jean-Luc", "met", "O'Brien", "twice", "Then", "ships", "left"},
		},
		{
			name:     "Unicode",
			input:    "Ærendil fór til Åsgard",
			expected: []string{"Ærendil", "fór", "til", "Åsgard"},
		},
		{
			name:     "MinLength",
			input:    "a bb ccc dddd",
			opts:     []SplitOption{WithMinLength(3)},
			expected: []string{"ccc", "dddd"},
		},
		{
			name:     "CustomPattern",
			input:    "x1 y22 zzz",
			opts:     []SplitOption{WithWordPattern(regexp.MustCompile(`[a-z]+\d*`))},
			expected: []string{"x1", "y22", "zzz"},
		},
		{
			name:     "Empty",
			input:    "\n  \n...\n",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewSplitReader(strings.NewReader(tc.input), tc.opts...)
			assert.Equal(t, tc.expected, drain(t, r))
		})
	}
}
