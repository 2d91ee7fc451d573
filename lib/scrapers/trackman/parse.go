package trackman

import (
	"github.com/PuerkitoBio/goquery"

	"golfsync-backend/lib/htmlutil"
	"golfsync-backend/lib/textutil"
)

// parseDetail extracts a raw Session from the rendered detail page.
// Pure so the selector chains can be exercised against saved fixtures.
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
	if location, ok := htmlutil.FirstText(root, detailLocationFields); ok {
		session.Location = location
	}

	session.Shots = parseShots(doc)
	return session
}

// parseShots walks the shot table candidates in order and returns the
// rows of the first one that yields usable shots. Rows missing both a
// carry distance and a ball speed are noise, header rows included.
func parseShots(doc *goquery.Document) []Shot {
	for _, selector := range shotRowSelectors {
		rows := doc.Find(selector)
		if rows.Length() == 0 {
			continue
		}

		var shots []Shot
		rows.Each(func(_ int, row *goquery.Selection) {
			if row.Find("th").Length() > 0 {
				return
			}
			shot := parseShotRow(row)
			if shot.CarryDistance == nil && shot.BallSpeed == nil {
				return
			}
			shots = append(shots, shot)
		})
		if len(shots) > 0 {
			return shots
		}
	}
	return nil
}

func parseShotRow(row *goquery.Selection) Shot {
	shot := Shot{}
	if club, ok := htmlutil.FirstText(row, clubCells); ok {
		shot.Club = club
	}
	shot.BallSpeed = cellMeasurement(row, ballSpeedCells)
	shot.ClubSpeed = cellMeasurement(row, clubSpeedCells)
	shot.SmashFactor = cellMeasurement(row, smashCells)
	shot.LaunchAngle = cellMeasurement(row, launchAngleCells)
	shot.SpinRate = cellMeasurement(row, spinRateCells)
	shot.CarryDistance = cellMeasurement(row, carryCells)
	shot.TotalDistance = cellMeasurement(row, totalCells)
	return shot
}

func cellMeasurement(row *goquery.Selection, selectors []string) *float64 {
	text, ok := htmlutil.FirstText(row, selectors)
	if !ok {
		return nil
	}
	return textutil.ParseMeasurement(text)
}
