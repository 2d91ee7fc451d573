package skytrak

import (
	"github.com/PuerkitoBio/goquery"

	"golfsync-backend/lib/htmlutil"
	"golfsync-backend/lib/textutil"
)

// parseDetail extracts a raw Session from the rendered detail page.
func parseDetail(doc *goquery.Document, nativeID string) Session {
	session := Session{NativeID: nativeID}

	root := doc.Find(".session-details").First()
	if root.Length() == 0 {
		root = doc.Selection
	}

	if title, ok := htmlutil.FirstText(root, detailTitleFields); ok {
		session.Title = title
	}
	if date, ok := htmlutil.FirstText(root, detailDateFields); ok {
		session.Date = date
	}

	session.Shots = parseShotTable(doc)
	return session
}

// parseShotTable reads the fixed-order shot table: each data row has
// eight cells, club through total distance. Header rows use th and
// short rows are skipped.
func parseShotTable(doc *goquery.Document) []Shot {
	for _, selector := range shotTableRows {
		rows := doc.Find(selector)
		if rows.Length() == 0 {
			continue
		}

		var shots []Shot
		rows.Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() < shotTableColumns {
				return
			}
			shots = append(shots, Shot{
				Club:          htmlutil.CleanText(cells.Eq(0)),
				BallSpeed:     cellMeasurement(cells, 1),
				ClubSpeed:     cellMeasurement(cells, 2),
				SmashFactor:   cellMeasurement(cells, 3),
				LaunchAngle:   cellMeasurement(cells, 4),
				SpinRate:      cellMeasurement(cells, 5),
				CarryDistance: cellMeasurement(cells, 6),
				TotalDistance: cellMeasurement(cells, 7),
			})
		})
		if len(shots) > 0 {
			return shots
		}
	}
	return nil
}

func cellMeasurement(cells *goquery.Selection, index int) *float64 {
	return textutil.ParseMeasurement(cells.Eq(index).Text())
}
