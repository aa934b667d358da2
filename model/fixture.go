package model

import (
	"fmt"
	"time"
)

const kickoffFormat = "2006-01-02 15:04"

// Fixture is a single Premier League match. Event is nil until the match is
// scheduled into a gameweek and the scores are nil until it has been played.
type Fixture struct {
	ID          int     `json:"id"`
	Event       *int    `json:"event"`
	TeamH       int     `json:"team_h"`
	TeamA       int     `json:"team_a"`
	TeamHScore  *int    `json:"team_h_score"`
	TeamAScore  *int    `json:"team_a_score"`
	KickoffTime *string `json:"kickoff_time"`
	Finished    bool    `json:"finished"`
	Started     bool    `json:"started"`
}

// EventID returns the gameweek id and whether the fixture has one.
func (f *Fixture) EventID() (int, bool) {
	if f.Event == nil || *f.Event == 0 {
		return 0, false
	}
	return *f.Event, true
}

// Kickoff returns the parsed kickoff time, or the zero time when it is
// missing or malformed.
func (f *Fixture) Kickoff() time.Time {
	if f.KickoffTime == nil || *f.KickoffTime == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, *f.KickoffTime)
	if err != nil {
		return time.Time{}
	}
	return t
}

// KickoffDisplay renders the kickoff in UTC so that the value does not depend
// on where the page is rendered.
func (f *Fixture) KickoffDisplay() string {
	t := f.Kickoff()
	if t.IsZero() {
		return TBD
	}
	return t.UTC().Format(kickoffFormat)
}

func (f *Fixture) ScoreDisplay() string {
	if f.TeamHScore == nil || f.TeamAScore == nil {
		return "-"
	}
	return fmt.Sprintf("%d - %d", *f.TeamHScore, *f.TeamAScore)
}
