package model

import (
	"fmt"
	"strings"
)

const playerPhotoURL = "https://resources.premierleague.com/premierleague/photos/players/110x140/p%d.png"

// Player is an FPL "element" from bootstrap-static. Costs are in tenths of
// a million pounds, so NowCost 95 is £9.5m.
type Player struct {
	ID          int      `json:"id"`
	Code        int      `json:"code"`
	WebName     string   `json:"web_name"`
	FirstName   string   `json:"first_name"`
	SecondName  string   `json:"second_name"`
	Team        int      `json:"team"`
	ElementType Position `json:"element_type"`
	NowCost     int      `json:"now_cost"`
	TotalPoints int      `json:"total_points"`
	GoalsScored int      `json:"goals_scored"`
	Assists     int      `json:"assists"`
	Form        string   `json:"form"`
	Minutes     int      `json:"minutes"`
}

func (p *Player) Price() string {
	return FormatPrice(p.NowCost)
}

func (p *Player) FullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", p.FirstName, p.SecondName))
}

func (p *Player) PhotoURL() string {
	return fmt.Sprintf(playerPhotoURL, p.Code)
}

// FormatPrice renders a cost in tenths of a million as "£9.5m".
func FormatPrice(cost int) string {
	return fmt.Sprintf("£%.1fm", float64(cost)/10)
}

// MatchesName reports whether q is a case insensitive substring of any of the
// player's names. An empty q matches every player.
func (p *Player) MatchesName(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}

	for _, n := range []string{p.WebName, p.FirstName, p.SecondName, p.FullName()} {
		if strings.Contains(strings.ToLower(n), q) {
			return true
		}
	}
	return false
}
