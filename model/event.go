package model

import "time"

const deadlineFormat = "Mon 2 Jan, 15:04"

// Event is a gameweek.
type Event struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	DeadlineTime      time.Time `json:"deadline_time"`
	Finished          bool      `json:"finished"`
	IsCurrent         bool      `json:"is_current"`
	IsNext            bool      `json:"is_next"`
	AverageEntryScore int       `json:"average_entry_score"`
	HighestScore      int       `json:"highest_score"`
}

func (e *Event) Status() string {
	switch {
	case e.IsCurrent:
		return "Current Gameweek"
	case e.Finished:
		return "Finished"
	default:
		return "Upcoming"
	}
}

// DeadlineDisplay formats the deadline like "Sat 16 Aug, 17:30" in loc.
func (e *Event) DeadlineDisplay(loc *time.Location) string {
	if e.DeadlineTime.IsZero() {
		return TBD
	}
	if loc == nil {
		loc = time.UTC
	}
	return e.DeadlineTime.In(loc).Format(deadlineFormat)
}
