package arccos

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T, html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParseRoundMeta(t *testing.T) {
	doc := parseFixture(t, `<html><body>
	<div class="round-details">
		<h1 class="course-name">Chambers Bay</h1>
		<span class="round-date">03/15/2024</span>
		<span class="course-location">University Place, WA</span>
		<div class="scorecard">
			<div class="total-score">Score: 84</div>
			<div class="total-par">Par 72</div>
			<div class="front-nine-score">41</div>
			<div class="back-nine-score">43</div>
		</div>
	</div>
	</body></html>`)

	round := parseRoundMeta(doc, "r-991")
	require.Equal(t, "r-991", round.NativeID)
	require.Equal(t, "Chambers Bay", round.CourseName)
	require.Equal(t, "03/15/2024", round.Date)
	require.Equal(t, "University Place, WA", round.Location)

	require.NotNil(t, round.TotalScore)
	require.EqualValues(t, 84, *round.TotalScore)
	require.NotNil(t, round.TotalPar)
	require.EqualValues(t, 72, *round.TotalPar)
	require.NotNil(t, round.FrontNineScore)
	require.EqualValues(t, 41, *round.FrontNineScore)
	require.NotNil(t, round.BackNineScore)
	require.EqualValues(t, 43, *round.BackNineScore)
}

func TestParseRoundMetaPartial(t *testing.T) {
	// bare h1 fallback, scorecard absent entirely
	doc := parseFixture(t, `<html><body>
		<h1>Pebble Creek</h1>
	</body></html>`)

	round := parseRoundMeta(doc, "r-1")
	require.Equal(t, "Pebble Creek", round.CourseName)
	require.Nil(t, round.TotalScore)
	require.Nil(t, round.TotalPar)
	require.Nil(t, round.FrontNineScore)
	require.Nil(t, round.BackNineScore)
}

func TestShotLocationBadges(t *testing.T) {
	// from badges
	{
		require.Equal(t, "tee", fromLocationOf("shot-item tee-shot"))
		require.Equal(t, "fairway", fromLocationOf("shot-item fairway-shot to-green"))
		require.Equal(t, "rough", fromLocationOf("shot-item rough-shot"))
		require.Equal(t, "sand", fromLocationOf("SHOT-ITEM SAND-SHOT"))
		require.Equal(t, "green", fromLocationOf("shot-item green-shot"))
		require.Equal(t, "", fromLocationOf("shot-item"))
	}

	// to badges do not collide with from badges
	{
		require.Equal(t, "fairway", toLocationOf("shot-item tee-shot to-fairway"))
		require.Equal(t, "rough", toLocationOf("shot-item to-rough"))
		require.Equal(t, "sand", toLocationOf("shot-item to-sand"))
		require.Equal(t, "green", toLocationOf("shot-item fairway-shot to-green"))
		require.Equal(t, "hole", toLocationOf("shot-item green-shot to-hole"))
		require.Equal(t, "", toLocationOf("shot-item tee-shot"))
	}

	// penalty badge
	{
		require.True(t, hasToken("shot-item tee-shot penalty", "penalty"))
		require.False(t, hasToken("shot-item tee-shot", "penalty"))
	}
}

func TestParseStats(t *testing.T) {
	// fully populated tab
	{
		doc := parseFixture(t, `<html><body>
		<div class="stats-panel">
			<div class="stat fairways-stat">Fairways: 9/14</div>
			<div class="stat gir-stat">Greens in Regulation: 8</div>
			<div class="stat putts-stat">Putts: 31</div>
			<div class="stat avg-drive-stat">Avg Drive: 248.5 yds</div>
		</div>
		</body></html>`)

		stats := parseStats(doc)
		require.NotNil(t, stats)
		require.EqualValues(t, 9, *stats.FairwaysHit)
		require.EqualValues(t, 14, *stats.FairwaysTotal)
		require.EqualValues(t, 8, *stats.GreensInRegulation)
		require.EqualValues(t, 31, *stats.PuttsTotal)
		require.InDelta(t, 248.5, *stats.AverageDriveYards, 0.001)
	}

	// partially populated tab
	{
		doc := parseFixture(t, `<html><body>
			<div class="putts-summary">33 putts total</div>
		</body></html>`)

		stats := parseStats(doc)
		require.NotNil(t, stats)
		require.Nil(t, stats.FairwaysHit)
		require.EqualValues(t, 33, *stats.PuttsTotal)
		require.Nil(t, stats.AverageDriveYards)
	}

	// nothing parseable means no stats row at all
	{
		doc := parseFixture(t, `<html><body><p>loading stats...</p></body></html>`)
		require.Nil(t, parseStats(doc))
	}
}
