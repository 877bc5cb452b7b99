package sanitizer

import (
	stdhtml "html"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeComment reduces user-submitted comment text to plain text. All
// HTML/XML markup is removed and entities are decoded, so the stored value
// is safe to echo back verbatim.
func SanitizeComment(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}

	if !strings.ContainsAny(content, "<&") {
		return content
	}

	cleaned := strictPolicy.Sanitize(content)
	return strings.TrimSpace(stdhtml.UnescapeString(cleaned))
}

// StripTags removes all HTML/XML tags from the input, keeping only text
// nodes. Used for lenient cleanup of token descriptions.
//
// Note: this is content cleanup, not an XSS defense; use SanitizeComment for
// anything rendered back to clients.
func StripTags(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if !strings.Contains(input, "<") {
		return input
	}

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var buf strings.Builder

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			return ""
		}

		if tt == html.TextToken {
			buf.WriteString(tokenizer.Token().Data)
		}
	}

	return strings.TrimSpace(buf.String())
}
