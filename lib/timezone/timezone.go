package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/Los_Angeles")
	if err != nil {
		panic(err)
	}
}

// pin the timezone so round dates parsed without zone info and the
// cron schedules land on the same calendar day regardless of which
// region the host happens to run in
func Now() time.Time {
	return time.Now().In(Location)
}

// GetCurrentWeek returns the Sunday through Saturday span containing
// now, both bounds at midnight in now's location. The weekly summary
// report aggregates over this window.
func GetCurrentWeek(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day()-int(now.Weekday()), 0, 0, 0, 0, now.Location())
	stop := start.AddDate(0, 0, 6)
	return start, stop
}
