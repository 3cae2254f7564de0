// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Search APIs embed markup in titles and snippets; scoring wants plain text

package html

import (
	"strings"

	"golang.org/x/net/html"
)

// Strip removes markup from a string and decodes HTML entities, collapsing
// runs of whitespace to single spaces. Plain strings pass through untouched.
func Strip(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var text strings.Builder
	text.Grow(len(s))

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// io.EOF or malformed markup; either way we keep what we have
			return strings.Join(strings.Fields(text.String()), " ")
		case html.TextToken:
			text.Write(tokenizer.Text())
			text.WriteByte(' ')
		}
	}
}
