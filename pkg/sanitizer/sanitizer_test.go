package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wdthirty/solana-launchpad-sub004/pkg/sanitizer"
)

func TestSanitizeComment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text",
			input:    "to the moon",
			expected: "to the moon",
		},
		{
			name:     "script tag removed",
			input:    `<script>alert("gm")</script>nice token`,
			expected: "nice token",
		},
		{
			name:     "inline markup stripped",
			input:    "<p>this is <strong>huge</strong></p>",
			expected: "this is huge",
		},
		{
			name:     "anchor stripped keeping text",
			input:    `buy at <a href="https://example.com">example</a>`,
			expected: "buy at example",
		},
		{
			name:     "entities decoded",
			input:    "cheap &amp; fast",
			expected: "cheap & fast",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: "",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  wagmi  ",
			expected: "wagmi",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, sanitizer.SanitizeComment(tc.input))
		})
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "nested tags",
			input:    "<p>Hello <strong>World</strong></p>",
			expected: "Hello World",
		},
		{
			name:     "plain text untouched",
			input:    "Plain text",
			expected: "Plain text",
		},
		{
			name:     "custom tags",
			input:    "<desc>A community token</desc>",
			expected: "A community token",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, sanitizer.StripTags(tc.input))
		})
	}
}
