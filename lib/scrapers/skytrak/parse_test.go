package skytrak

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

const sessionFixture = `<html><body>
<div class="session-details">
	<h1 class="session-title">Wedge Matrix</h1>
	<span class="session-date">2024/03/15 19:00</span>
	<table class="shots-table">
		<tr><th>Club</th><th>Ball</th><th>Club</th><th>Smash</th><th>Launch</th><th>Spin</th><th>Carry</th><th>Total</th></tr>
		<tr>
			<td>PW</td><td>92.4 mph</td><td>84.1</td><td>1.10</td>
			<td>28.5</td><td>9200 rpm</td><td>118 yds</td><td>121 yds</td>
		</tr>
		<tr>
			<td>Driver</td><td>158.0</td><td></td><td></td>
			<td>13.1</td><td></td><td>238</td><td>259</td>
		</tr>
		<tr>
			<td colspan="8">Session totals</td>
		</tr>
	</table>
</div>
</body></html>`

func TestParseDetail(t *testing.T) {
	doc := parseFixture(t, sessionFixture)
	session := parseDetail(doc, "st-55")

	require.Equal(t, "st-55", session.NativeID)
	require.Equal(t, "Wedge Matrix", session.Title)
	require.Equal(t, "2024/03/15 19:00", session.Date)

	// header and the colspan footer are skipped
	require.Len(t, session.Shots, 2)

	first := session.Shots[0]
	require.Equal(t, "PW", first.Club)
	require.NotNil(t, first.BallSpeed)
	require.InDelta(t, 92.4, *first.BallSpeed, 0.001)
	require.NotNil(t, first.ClubSpeed)
	require.InDelta(t, 84.1, *first.ClubSpeed, 0.001)
	require.NotNil(t, first.SmashFactor)
	require.InDelta(t, 1.10, *first.SmashFactor, 0.001)
	require.NotNil(t, first.LaunchAngle)
	require.NotNil(t, first.SpinRate)
	require.InDelta(t, 9200, *first.SpinRate, 0.001)
	require.NotNil(t, first.CarryDistance)
	require.InDelta(t, 118, *first.CarryDistance, 0.001)
	require.NotNil(t, first.TotalDistance)
	require.InDelta(t, 121, *first.TotalDistance, 0.001)

	// blank cells stay nil, never zero
	second := session.Shots[1]
	require.Equal(t, "Driver", second.Club)
	require.Nil(t, second.ClubSpeed)
	require.Nil(t, second.SmashFactor)
	require.Nil(t, second.SpinRate)
	require.NotNil(t, second.CarryDistance)
	require.InDelta(t, 238, *second.CarryDistance, 0.001)
}

func TestParseDetailNoTable(t *testing.T) {
	doc := parseFixture(t, `<html><body>
		<h1>Quiet Day</h1>
	</body></html>`)

	session := parseDetail(doc, "st-56")
	require.Equal(t, "Quiet Day", session.Title)
	require.Empty(t, session.Shots)
}
