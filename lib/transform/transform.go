// Package transform maps the three raw scrape shapes onto the shared
// golf domain model. Everything here is derivation over values already
// in memory, no browser and no storage.
package transform

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"golfsync-backend/lib/golf"
	"golfsync-backend/lib/textutil"
	"golfsync-backend/lib/timezone"
)

// par assigned to the synthetic hole practice sources hang their
// shots on
const practicePar = 4

// layouts the dashboards have been seen rendering dates in, tried in
// order
var displayDateLayouts = []string{
	"2006-01-02 15:04",
	"2006/01/02 15:04",
	"01/02/2006 15:04",
	"02/01/2006 15:04",
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// parseDisplayDate turns rendered date text into a time. An
// unparseable date falls back to the current time with a warning,
// a bad date never aborts ingestion.
func parseDisplayDate(ctx context.Context, display string) time.Time {
	display = strings.TrimSpace(display)
	if display != "" {
		for _, layout := range displayDateLayouts {
			if t, err := time.ParseInLocation(layout, display, timezone.Location); err == nil {
				return t
			}
		}
	}
	slog.WarnContext(ctx, "could not parse display date, using current time", "date", display)
	return timezone.Now()
}

// averageOf averages the present values only. All absent yields nil,
// never zero.
func averageOf(values []*float64) *float64 {
	sum := 0.0
	n := 0
	for _, v := range values {
		if v == nil {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// averageDriveDistance averages total distance over the shots hit
// with a driver. Rendered club labels carry brand names and stray
// whitespace, so aliases match as normalized substrings.
func averageDriveDistance(shots []golf.Shot) *float64 {
	var distances []*float64
	for _, shot := range shots {
		if !isDriver(shot.Club) {
			continue
		}
		if shot.TotalDistance == nil {
			continue
		}
		distances = append(distances, shot.TotalDistance)
	}
	return averageOf(distances)
}

func isDriver(club string) bool {
	return textutil.MatchName(club, golf.DriverAliases)
}

func collect(shots []golf.Shot, field func(golf.Shot) *float64) []*float64 {
	values := make([]*float64, 0, len(shots))
	for _, shot := range shots {
		values = append(values, field(shot))
	}
	return values
}

// putAverage adds an average to the extended stats map only when at
// least one shot carried the metric.
func putAverage(extended map[string]any, key string, shots []golf.Shot, field func(golf.Shot) *float64) {
	if avg := averageOf(collect(shots, field)); avg != nil {
		extended[key] = *avg
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
