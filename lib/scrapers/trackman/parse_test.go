package trackman

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
	<h1 class="session-title">Evening Range Work</h1>
	<span class="session-date">2024-03-15 18:30</span>
	<span class="session-location">Bay 12, Golfzone</span>
	<table class="shots-table">
		<tr class="header-row"><th>Club</th><th>Ball</th><th>Carry</th></tr>
		<tr class="shot-row">
			<td class="club">Driver</td>
			<td class="ball-speed">165.2 mph</td>
			<td class="club-speed">112.4 mph</td>
			<td class="smash-factor">1.47</td>
			<td class="launch-angle">12.3°</td>
			<td class="spin-rate">2,450 rpm</td>
			<td class="carry">245 yds</td>
			<td class="total">268 yds</td>
		</tr>
		<tr class="shot-row">
			<td class="club">7 Iron</td>
			<td class="ball-speed">118.9</td>
			<td class="carry">162.5</td>
		</tr>
		<tr class="shot-row">
			<td class="club"></td>
			<td class="ball-speed">N/A</td>
			<td class="carry">--</td>
		</tr>
	</table>
</div>
</body></html>`

func TestParseDetail(t *testing.T) {
	doc := parseFixture(t, sessionFixture)
	session := parseDetail(doc, "8231")

	require.Equal(t, "8231", session.NativeID)
	require.Equal(t, "Evening Range Work", session.Title)
	require.Equal(t, "2024-03-15 18:30", session.Date)
	require.Equal(t, "Bay 12, Golfzone", session.Location)

	// header row and the empty row are dropped
	require.Len(t, session.Shots, 2)

	first := session.Shots[0]
	require.Equal(t, "Driver", first.Club)
	require.NotNil(t, first.BallSpeed)
	require.InDelta(t, 165.2, *first.BallSpeed, 0.001)
	require.NotNil(t, first.ClubSpeed)
	require.InDelta(t, 112.4, *first.ClubSpeed, 0.001)
	require.NotNil(t, first.SmashFactor)
	require.InDelta(t, 1.47, *first.SmashFactor, 0.001)
	require.NotNil(t, first.LaunchAngle)
	require.InDelta(t, 12.3, *first.LaunchAngle, 0.001)
	require.NotNil(t, first.SpinRate)
	require.NotNil(t, first.CarryDistance)
	require.InDelta(t, 245, *first.CarryDistance, 0.001)
	require.NotNil(t, first.TotalDistance)
	require.InDelta(t, 268, *first.TotalDistance, 0.001)

	// sparse row: absent metrics stay nil, never zero
	second := session.Shots[1]
	require.Equal(t, "7 Iron", second.Club)
	require.NotNil(t, second.BallSpeed)
	require.InDelta(t, 118.9, *second.BallSpeed, 0.001)
	require.Nil(t, second.ClubSpeed)
	require.Nil(t, second.SmashFactor)
	require.NotNil(t, second.CarryDistance)
	require.Nil(t, second.TotalDistance)
}

func TestParseDetailFallbacks(t *testing.T) {
	// no .session-details wrapper, legacy markup with a bare h2 and a
	// generic shots table
	{
		doc := parseFixture(t, `<html><body>
			<h2>Morning Session</h2>
			<table class="shots">
				<tr><td class="club">Wedge</td><td class="ball-speed">88.1</td></tr>
			</table>
		</body></html>`)
		session := parseDetail(doc, "17")
		require.Equal(t, "Morning Session", session.Title)
		require.Len(t, session.Shots, 1)
		require.Equal(t, "Wedge", session.Shots[0].Club)
	}

	// div based shot layout
	{
		doc := parseFixture(t, `<html><body>
			<div class="shots-container">
				<div class="shot">
					<span class="club">3 Wood</span>
					<span class="carry">221 yds</span>
				</div>
			</div>
		</body></html>`)
		session := parseDetail(doc, "18")
		require.Len(t, session.Shots, 1)
		require.NotNil(t, session.Shots[0].CarryDistance)
		require.InDelta(t, 221, *session.Shots[0].CarryDistance, 0.001)
	}

	// nothing parseable at all
	{
		doc := parseFixture(t, `<html><body><p>loading...</p></body></html>`)
		session := parseDetail(doc, "19")
		require.Empty(t, session.Title)
		require.Empty(t, session.Shots)
	}
}
