package corpus

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultPreviewLength is the number of characters String shows per document.
const DefaultPreviewLength = 500

const (
	ellipsis  = "..."
	separator = "------------------------------"
)

// String renders every document with DefaultPreviewLength.
func (c *Corpus) String() string { return c.Render(DefaultPreviewLength) }

// Render returns a diagnostic listing: for each document its index, the
// first n characters of its text (followed by "..." when cut) and a
// separator line. n <= 0 means DefaultPreviewLength.
func (c *Corpus) Render(n int) string {
	if n <= 0 {
		n = DefaultPreviewLength
	}
	var b strings.Builder
	for i, d := range c.documents {
		fmt.Fprintf(&b, "Document %d:\n", i)
		b.WriteString(Truncate(d.Text, n))
		b.WriteString("\n")
		b.WriteString(separator)
		b.WriteString("\n")
	}
	return b.String()
}

// Truncate shortens s to n characters, appending "..." when it was longer.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + ellipsis
}
