// Package htmlutil cleans up the text goquery pulls out of rendered
// dashboard pages.
package htmlutil

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText flattens the rendered text of a selection into a single
// trimmed line. Dashboards love nesting spans inside spans.
func CleanText(sel *goquery.Selection) string {
	text := sel.Text()
	text = removeNonPrintable(text)
	text = strings.Trim(text, " \t\n")
	text = innerWhitespace.ReplaceAllString(text, " ")
	return text
}

// FirstText tries each selector in order against the root and returns
// the cleaned text of the first one that yields anything non-empty.
// ok is false when every candidate misses, callers treat that as
// "field absent", not as an error.
func FirstText(root *goquery.Selection, selectors []string) (string, bool) {
	for _, sel := range selectors {
		found := root.Find(sel).First()
		if found.Length() == 0 {
			continue
		}
		text := CleanText(found)
		if text != "" {
			return text, true
		}
	}
	return "", false
}
