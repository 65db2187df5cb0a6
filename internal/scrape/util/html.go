package util

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelectors end a line when flattening HTML to text.
const blockSelectors = "p, li, br, div, h1, h2, h3, h4, h5, h6, tr"

// StripHTML flattens an HTML fragment to text, one line per block element.
// Entity-escaped markup (as some boards return) is unescaped first.
func StripHTML(raw string) string {
	if !strings.Contains(raw, "<") {
		if !strings.Contains(raw, "&lt;") {
			return CleanLines(raw)
		}
		raw = html.UnescapeString(raw)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return CleanLines(raw)
	}
	doc.Find("script, style, noscript").Remove()
	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	return CleanLines(doc.Text())
}

// ListItems returns the cleaned text of every <li> in an HTML fragment.
func ListItems(raw string) []string {
	if strings.Contains(raw, "&lt;") && !strings.Contains(raw, "<") {
		raw = html.UnescapeString(raw)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil
	}
	var out []string
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		if t := CleanText(s.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}

// CleanLines cleans each line of s and drops the empty ones.
func CleanLines(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = CleanText(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
