// ABOUTME: Domain model for article text extracted from a URL
// ABOUTME: Provides the capped title+body string fed to scoring

package domain

// MaxArticleChars caps the text passed to the model and the verifier so a
// long page cannot overload either.
const MaxArticleChars = 5000

// Article is the readable content extracted from a web page.
type Article struct {
	// URL is the page the article was extracted from
	URL string

	// Title is the page or article title, possibly empty
	Title string

	// TextContent is the extracted body text with markup removed
	TextContent string
}

// ScoringText returns the title and body joined for scoring, truncated to
// MaxArticleChars.
func (a Article) ScoringText() string {
	text := a.TextContent
	if a.Title != "" {
		text = a.Title + "\n\n" + text
	}
	if len(text) > MaxArticleChars {
		text = text[:MaxArticleChars]
	}
	return text
}

// IsEmpty reports whether extraction produced no usable text.
func (a Article) IsEmpty() bool {
	return a.Title == "" && a.TextContent == ""
}
