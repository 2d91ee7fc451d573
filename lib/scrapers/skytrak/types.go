package skytrak

// Session is the raw record scraped from one SkyTrak practice session
// page.
type Session struct {
	NativeID string
	Title    string
	// unparsed display text
	Date  string
	Shots []Shot
}

// Shot mirrors the fixed eight column shot table: club, ball speed,
// club speed, smash factor, launch angle, spin rate, carry, total.
type Shot struct {
	Club          string
	BallSpeed     *float64
	ClubSpeed     *float64
	SmashFactor   *float64
	LaunchAngle   *float64
	SpinRate      *float64
	CarryDistance *float64
	TotalDistance *float64
}
