// Package textutil implements the forgiving text parsing the scrapers
// rely on: third party dashboards render numbers with units, commas
// and stray markup, and course names rarely match character for
// character between sources.
package textutil

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/antzucaro/matchr"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, NormalizeName(m)) {
			return true
		}
	}
	return false
}

// course names from different sources agree this closely or better
// before we treat them as the same course
const courseSimilarityThreshold = 0.92

// MatchCourseName reports whether two course names refer to the same
// course: equal after normalization, or nearly equal by Jaro-Winkler
// similarity to absorb punctuation and abbreviation drift. Distinct
// courses with a shared prefix stay below the threshold.
func MatchCourseName(a, b string) bool {
	na := NormalizeName(a)
	nb := NormalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	return matchr.JaroWinkler(na, nb, false) >= courseSimilarityThreshold
}

var measurementRegex = regexp.MustCompile(`[^\d.\-]`)

// ParseMeasurement pulls a float out of a rendered metric cell like
// "142.3 mph", "1,5", or "245 yds". Returns nil when no numeric text
// remains after stripping, a missing measurement is never zero.
func ParseMeasurement(s string) *float64 {
	s = strings.TrimSpace(s)
	// continental decimal commas show up on some dashboards
	s = strings.ReplaceAll(s, ",", ".")
	s = measurementRegex.ReplaceAllString(s, "")
	if s == "" || s == "." || s == "-" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

var digitsRegex = regexp.MustCompile(`\d+`)

// ParseLeadingInt extracts the first run of digits, "36 putts" -> 36.
func ParseLeadingInt(s string) *int64 {
	m := digitsRegex.FindString(s)
	if m == "" {
		return nil
	}
	v, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

var ratioRegex = regexp.MustCompile(`(\d+)\s*/\s*(\d+)`)

// ParseRatio extracts "hit/total" pairs like "9/14 fairways".
func ParseRatio(s string) (hit, total *int64, ok bool) {
	groups := ratioRegex.FindStringSubmatch(s)
	if len(groups) < 3 {
		return nil, nil, false
	}
	h, err := strconv.ParseInt(groups[1], 10, 64)
	if err != nil {
		return nil, nil, false
	}
	t, err := strconv.ParseInt(groups[2], 10, 64)
	if err != nil {
		return nil, nil, false
	}
	return &h, &t, true
}
