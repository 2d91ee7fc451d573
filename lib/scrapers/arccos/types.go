package arccos

// Round is the raw record scraped from one Arccos round page. Unlike
// the launch monitor sources this one has real holes with real
// locations per shot.
type Round struct {
	NativeID   string
	CourseName string
	// unparsed display text
	Date           string
	Location       string
	TotalScore     *int64
	TotalPar       *int64
	FrontNineScore *int64
	BackNineScore  *int64
	Holes          []Hole
	Stats          *TabStats
}

type Hole struct {
	Number        int64
	Par           *int64
	Score         *int64
	DistanceYards *int64
	Putts         *int64
	// true when the hole card carries the matching badge class,
	// nil when the card doesn't say
	FairwayHit        *bool
	GreenInRegulation *bool
	Shots             []Shot
}

type Shot struct {
	Club          string
	DistanceYards *float64
	// tee/fairway/rough/sand/green, empty when the item's class
	// carries no location badge
	FromLocation string
	// fairway/rough/sand/green/hole
	ToLocation string
	IsPenalty  bool
}

// TabStats is whatever the round's stats tab rendered. PuttsPerHole
// and score-to-par are derived later, this is raw capture only.
type TabStats struct {
	FairwaysHit        *int64
	FairwaysTotal      *int64
	GreensInRegulation *int64
	PuttsTotal         *int64
	AverageDriveYards  *float64
}
