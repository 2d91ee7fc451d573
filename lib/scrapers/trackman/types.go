package trackman

// Session is the raw record scraped from one Trackman session page.
// Everything here is as-rendered, the transformer owns normalization.
type Session struct {
	NativeID string
	Title    string
	// unparsed display text
	Date     string
	Location string
	Shots    []Shot
}

// Shot carries the launch monitor metrics of a single ball. A nil
// means the column was absent or unreadable, never that it was zero.
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
