package model

import (
	"strconv"
	"strings"
)

// Bootstrap is the season-static document served at /bootstrap-static/.
// Values handed out by the revalidating cache are shared between requests
// and must be treated as read only.
type Bootstrap struct {
	Events       []Event       `json:"events"`
	Teams        []Team        `json:"teams"`
	Elements     []Player      `json:"elements"`
	ElementTypes []ElementType `json:"element_types"`
}

func (b *Bootstrap) Team(id int) *Team {
	for i := range b.Teams {
		if b.Teams[i].ID == id {
			return &b.Teams[i]
		}
	}
	return nil
}

// TeamName resolves a team id, falling back to UnknownTeamName.
func (b *Bootstrap) TeamName(id int) string {
	if t := b.Team(id); t != nil {
		return t.Name
	}
	return UnknownTeamName
}

// TeamShortName resolves a team id to its short name, falling back to
// UnknownTeamName.
func (b *Bootstrap) TeamShortName(id int) string {
	if t := b.Team(id); t != nil {
		return t.ShortName
	}
	return UnknownTeamName
}

// FindTeam resolves a free text team reference: the numeric id, the short
// name or the full name, case insensitive. Returns nil when nothing matches.
func (b *Bootstrap) FindTeam(s string) *Team {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil
	}

	if id, err := strconv.Atoi(s); err == nil {
		return b.Team(id)
	}

	for i := range b.Teams {
		t := &b.Teams[i]
		if strings.ToLower(t.ShortName) == s || strings.ToLower(t.Name) == s {
			return t
		}
	}
	return nil
}

func (b *Bootstrap) Player(id int) *Player {
	for i := range b.Elements {
		if b.Elements[i].ID == id {
			return &b.Elements[i]
		}
	}
	return nil
}

// PlayersByID indexes the players for joins against live data.
func (b *Bootstrap) PlayersByID() map[int]*Player {
	m := make(map[int]*Player, len(b.Elements))
	for i := range b.Elements {
		m[b.Elements[i].ID] = &b.Elements[i]
	}
	return m
}

// PositionName prefers the label served by the API and falls back to the
// built in one.
func (b *Bootstrap) PositionName(p Position) string {
	for _, et := range b.ElementTypes {
		if et.ID == p && et.SingularName != "" {
			return et.SingularName
		}
	}
	return p.String()
}

func (b *Bootstrap) Event(id int) *Event {
	for i := range b.Events {
		if b.Events[i].ID == id {
			return &b.Events[i]
		}
	}
	return nil
}

// CurrentEvent returns the gameweek flagged is_current, or nil before the
// season starts.
func (b *Bootstrap) CurrentEvent() *Event {
	for i := range b.Events {
		if b.Events[i].IsCurrent {
			return &b.Events[i]
		}
	}
	return nil
}
