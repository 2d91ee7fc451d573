// Package golf holds the shared domain model every data source is
// normalized into: a round of golf containing holes, the shots hit on
// each hole, and the aggregate stats for the round.
package golf

import (
	"time"
)

type Source string

const (
	SourceTrackman Source = "trackman"
	SourceArccos   Source = "arccos"
	SourceSkytrak  Source = "skytrak"
	// SourceManual marks rounds entered by hand, they carry no
	// native id so deduplication falls back to date + course name.
	SourceManual Source = "manual"
)

func (s Source) Valid() bool {
	switch s {
	case SourceTrackman, SourceArccos, SourceSkytrak, SourceManual:
		return true
	}
	return false
}

// club names that count as a driver when computing driving distance,
// matched as normalized substrings of the rendered club label
var DriverAliases = []string{"driver", "1w", "1-wood"}

// Round is one playable unit: an on-course round or a practice
// session mapped onto the same shape. Optional columns are pointers,
// a nil means the source never reported the value.
type Round struct {
	ID             int64
	UserID         int64
	Date           time.Time
	CourseName     string
	CourseLocation string
	TeeColor       string
	TotalScore     *int64
	TotalPar       *int64
	FrontNineScore *int64
	BackNineScore  *int64
	Weather        string
	Notes          string
	Source         Source
	// the id the source system uses for this unit, empty for manual rounds
	SourceNativeID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Hole struct {
	Number            int64
	Par               int64
	Score             *int64
	FairwayHit        *bool
	GreenInRegulation *bool
	Putts             *int64
	DistanceYards     *int64
	Notes             string
	Shots             []Shot
}

type Shot struct {
	// 1-based position of the shot within its hole
	Number        int64
	Club          string
	DistanceYards *float64
	FromLocation  string
	ToLocation    string
	IsPenalty     bool

	BallSpeed     *float64
	ClubSpeed     *float64
	SmashFactor   *float64
	LaunchAngle   *float64
	SpinRate      *float64
	SpinAxis      *float64
	CarryDistance *float64
	TotalDistance *float64
	SideDeviation *float64
}

// Stats aggregates a single round. It is recomputed and replaced
// whole on every ingestion, never patched field by field.
type Stats struct {
	ScoreToPar         *int64
	FairwaysHit        *int64
	FairwaysTotal      *int64
	GreensInRegulation *int64
	PuttsTotal         *int64
	PuttsPerHole       *float64
	SandSaves          *int64
	Penalties          *int64
	AverageDriveYards  *float64
	// source specific extras (launch monitor averages, shot counts, ...)
	// that don't warrant their own column
	Extended map[string]any
}

// Bundle is the unit the transformer emits and the store persists
// atomically: one round, its holes (each carrying its shots), and the
// round stats if any could be computed.
type Bundle struct {
	Round Round
	Holes []Hole
	Stats *Stats
}

type User struct {
	ID             int64
	Email          string
	Name           string
	IsActive       bool
	Handicap       *float64
	PreferredUnits string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Club struct {
	ID               int64
	UserID           int64
	Name             string
	Type             string
	Brand            string
	Model            string
	Loft             *float64
	AvgDistanceYards *float64
	MaxDistanceYards *float64
	IsActive         bool
	Notes            string
}

// RunReport is the product of one ingestion cycle. It is logged,
// persisted, and served from the daemon's status endpoint.
type RunReport struct {
	RunID          string         `json:"run_id"`
	StartedAt      time.Time      `json:"started_at"`
	FinishedAt     time.Time      `json:"finished_at"`
	UsersProcessed int64          `json:"users_processed"`
	SourceCounts   map[Source]int `json:"source_counts"`
	Errors         []string       `json:"errors"`
}

func (r RunReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
