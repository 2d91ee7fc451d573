package arccos

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"golfsync-backend/lib/htmlutil"
	"golfsync-backend/lib/textutil"
)

// parseRoundMeta extracts the round header and scorecard totals from
// the rendered detail page. Holes and shots need live interaction and
// are collected separately.
func parseRoundMeta(doc *goquery.Document, nativeID string) Round {
	round := Round{NativeID: nativeID}

	root := doc.Find(".round-details").First()
	if root.Length() == 0 {
		root = doc.Selection
	}

	if course, ok := htmlutil.FirstText(root, courseNameFields); ok {
		round.CourseName = course
	}
	if date, ok := htmlutil.FirstText(root, detailDateFields); ok {
		round.Date = date
	}
	if location, ok := htmlutil.FirstText(root, locationFields); ok {
		round.Location = location
	}

	round.TotalScore = firstInt(root, totalScoreFields)
	round.TotalPar = firstInt(root, totalParFields)
	round.FrontNineScore = firstInt(root, frontNineFields)
	round.BackNineScore = firstInt(root, backNineFields)
	return round
}

// parseStats reads the stats tab snapshot: "9/14" style fairways, a
// leading integer for greens and putts, a leading number for the
// average drive. Every field is independently optional.
func parseStats(doc *goquery.Document) *TabStats {
	stats := TabStats{}
	found := false

	if text, ok := htmlutil.FirstText(doc.Selection, statsFairwaysFields); ok {
		if hit, total, ok := textutil.ParseRatio(text); ok {
			stats.FairwaysHit = hit
			stats.FairwaysTotal = total
			found = true
		}
	}
	if text, ok := htmlutil.FirstText(doc.Selection, statsGirFields); ok {
		if v := textutil.ParseLeadingInt(text); v != nil {
			stats.GreensInRegulation = v
			found = true
		}
	}
	if text, ok := htmlutil.FirstText(doc.Selection, statsPuttsFields); ok {
		if v := textutil.ParseLeadingInt(text); v != nil {
			stats.PuttsTotal = v
			found = true
		}
	}
	if text, ok := htmlutil.FirstText(doc.Selection, statsDriveFields); ok {
		if v := textutil.ParseMeasurement(text); v != nil {
			stats.AverageDriveYards = v
			found = true
		}
	}

	if !found {
		return nil
	}
	return &stats
}

func firstInt(root *goquery.Selection, selectors []string) *int64 {
	text, ok := htmlutil.FirstText(root, selectors)
	if !ok {
		return nil
	}
	return textutil.ParseLeadingInt(text)
}

// location badges ride on the shot item's class list
var fromTokens = []struct{ token, location string }{
	{"tee-shot", "tee"},
	{"fairway-shot", "fairway"},
	{"rough-shot", "rough"},
	{"sand-shot", "sand"},
	{"green-shot", "green"},
}

var toTokens = []struct{ token, location string }{
	{"to-fairway", "fairway"},
	{"to-rough", "rough"},
	{"to-sand", "sand"},
	{"to-green", "green"},
	{"to-hole", "hole"},
}

func fromLocationOf(class string) string {
	class = strings.ToLower(class)
	for _, t := range fromTokens {
		if strings.Contains(class, t.token) {
			return t.location
		}
	}
	return ""
}

func toLocationOf(class string) string {
	class = strings.ToLower(class)
	for _, t := range toTokens {
		if strings.Contains(class, t.token) {
			return t.location
		}
	}
	return ""
}

func hasToken(class, token string) bool {
	return strings.Contains(strings.ToLower(class), token)
}
