// Package text holds small helpers for preparing input before it is counted.
package text

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// CountRunes returns the number of code points in text. Invalid UTF-8 counts
// one per offending byte, matching a range loop.
func CountRunes(text string) int {
	return utf8.RuneCountInString(text)
}

// ExceedsRunes reports whether text holds more than limit code points without
// scanning past the limit.
func ExceedsRunes(text string, limit int) bool {
	if len(text) <= limit {
		return false
	}
	n := 0
	for range text {
		n++
		if n > limit {
			return true
		}
	}
	return false
}

// FromHTML returns the visible text of an HTML fragment. Script, style and
// template contents are dropped and block elements are separated by newlines.
// Input that is not HTML comes back unchanged apart from entity decoding.
//
// Example:
//
//	FromHTML("<p>こんにちは</p><script>x()</script><p>world</p>")
//	// "こんにちは\nworld"
func FromHTML(html string) string {
	if !strings.ContainsAny(html, "<&") {
		return html
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	// Drop non-visible content, then break lines at block elements
	doc.Find("script, style, noscript, template").Remove()
	doc.Find("br, p, div, li, h1, h2, h3, h4, h5, h6, tr, blockquote, pre").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	lines := strings.Split(doc.Text(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
