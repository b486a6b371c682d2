package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "CRLF normalized",
			input:    "# A\r\nbody\r\n",
			expected: "# A\nbody",
		},
		{
			name:     "Bare CR normalized",
			input:    "# A\rbody",
			expected: "# A\nbody",
		},
		{
			name:     "Trailing whitespace stripped",
			input:    "# A   \nbody\t\t",
			expected: "# A\nbody",
		},
		{
			name:     "Indented heading normalized",
			input:    "   # A\nbody",
			expected: "# A\nbody",
		},
		{
			name:     "Excessive blank lines collapsed",
			input:    "# A\n\n\n\n# B",
			expected: "# A\n\n# B",
		},
		{
			name:     "Whitespace-only lines become blank",
			input:    "# A\n   \t \nbody",
			expected: "# A\n\nbody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}
