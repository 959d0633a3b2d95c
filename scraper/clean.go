package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	newlineRun = regexp.MustCompile(`[^\S\n]*\n\s*`)
	spaceRun   = regexp.MustCompile(`[^\S\n]+`)
)

// CleanHTML strips markup from a rendered post body and returns plain text.
// Code blocks, preformatted sections and quotes are removed together with
// their contents so the remaining text reads as prose. Malformed markup is
// parsed permissively; empty input yields an empty string.
func CleanHTML(html string) string {
	if html == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find("code, pre, blockquote").Remove()

	return normalizeSpace(doc.Text())
}

// normalizeSpace collapses runs of whitespace left behind by removed
// elements: one newline per line break, one space otherwise.
func normalizeSpace(s string) string {
	s = newlineRun.ReplaceAllString(s, "\n")
	s = spaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
