package model

import "strings"

// TBD stands in for a kickoff or deadline that has not been scheduled.
const TBD = "TBD"

// SortMode selects the comparator used for the player directory.
type SortMode string

const (
	SORT_POINTS SortMode = "points"
	SORT_COST   SortMode = "cost"
	SORT_NAME   SortMode = "name"
)

// ParseSortMode defaults to sorting by points.
func ParseSortMode(s string) SortMode {
	switch SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case SORT_COST:
		return SORT_COST
	case SORT_NAME:
		return SORT_NAME
	default:
		return SORT_POINTS
	}
}

// PlayerQuery holds the user controlled inputs of the player directory.
// Team == 0 and Position == POS_UNKNOWN mean "any".
type PlayerQuery struct {
	Search   string
	Team     int
	Position Position
	Sort     SortMode
	Limit    int
}

// PlayerCard is a player joined with its team for display.
type PlayerCard struct {
	Player   Player
	TeamName string
}

type PlayerPage struct {
	Query     PlayerQuery
	Players   []PlayerCard // the visible slice
	Total     int          // size of the filtered collection
	HasMore   bool
	NextLimit int
	Teams     []Team
}

type PlayerDetail struct {
	Player   Player
	Team     *Team
	Position string
}

type TeamPlayer struct {
	Player   Player
	Position string
}

type TeamDetail struct {
	Team    Team
	Players []TeamPlayer
}

// FixtureFilter restricts the fixtures list by completion state.
type FixtureFilter string

const (
	FIXTURES_ALL      FixtureFilter = "all"
	FIXTURES_UPCOMING FixtureFilter = "upcoming"
	FIXTURES_PAST     FixtureFilter = "past"
)

var FixtureFilters = []FixtureFilter{FIXTURES_ALL, FIXTURES_UPCOMING, FIXTURES_PAST}

func ParseFixtureFilter(s string) FixtureFilter {
	switch FixtureFilter(strings.ToLower(strings.TrimSpace(s))) {
	case FIXTURES_UPCOMING:
		return FIXTURES_UPCOMING
	case FIXTURES_PAST:
		return FIXTURES_PAST
	default:
		return FIXTURES_ALL
	}
}

// Label is the capitalised filter name used on the filter buttons.
func (f FixtureFilter) Label() string {
	s := string(f)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Keep reports whether a fixture passes the filter.
func (f FixtureFilter) Keep(fx *Fixture) bool {
	switch f {
	case FIXTURES_UPCOMING:
		return !fx.Finished
	case FIXTURES_PAST:
		return fx.Finished
	default:
		return true
	}
}

// FixtureRow is a fixture with both team names resolved.
type FixtureRow struct {
	Fixture  Fixture
	Home     string
	Away     string
	HomeLong string
	AwayLong string
}

// FixtureGroup holds the fixtures of a single gameweek.
type FixtureGroup struct {
	Event    int
	Fixtures []FixtureRow
}

type FixtureList struct {
	Filter FixtureFilter
	Groups []FixtureGroup
}

// TopPlayer is a single row of the gameweek top scorers.
type TopPlayer struct {
	ID       int
	Name     string
	TeamName string
	Points   int
}

type GameweekSummary struct {
	Events      []Event
	Selected    *Event
	Fixtures    []FixtureRow
	TopPlayers  []TopPlayer
	FixturesErr bool
	LiveErr     bool
}
