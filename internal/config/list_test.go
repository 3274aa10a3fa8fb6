package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"legacy bracketed", "['a', 'b']", []string{"a", "b"}},
		{"legacy single item", "['module']", []string{"module"}},
		{"comma separated", "a,b,c", []string{"a", "b", "c"}},
		{"comma separated with spaces", "a, b ,c", []string{"a", "b", "c"}},
		{"single item", "alpha", []string{"alpha"}},
		{"json array passes through", `["a", "b"]`, []string{"a", "b"}},
		{"malformed bracket falls back to comma split", "['a', 'b'", []string{"['a'", "'b'"}},
		{"duplicates preserved", "a, a, b", []string{"a", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseList(tt.input))
		})
	}
}

// TestParseList_FallbackTrimsOriginal verifies that the comma-split fallback
// works on the original string, not the quote-swapped one.
func TestParseList_FallbackTrimsOriginal(t *testing.T) {
	assert.Equal(t, []string{"it's a", "b"}, ParseList("it's a, b"))
}
