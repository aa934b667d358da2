package model

import (
	"fmt"
	"strings"
)

const teamBadgeURL = "https://resources.premierleague.com/premierleague/badges/70/t%d.png"

// UnknownTeamName is shown wherever a team id does not resolve.
const UnknownTeamName = "Unknown"

type Team struct {
	ID                  int    `json:"id"`
	Code                int    `json:"code"`
	Name                string `json:"name"`
	ShortName           string `json:"short_name"`
	Strength            int    `json:"strength"`
	StrengthAttackHome  int    `json:"strength_attack_home"`
	StrengthAttackAway  int    `json:"strength_attack_away"`
	StrengthDefenceHome int    `json:"strength_defence_home"`
	StrengthDefenceAway int    `json:"strength_defence_away"`
}

func (t *Team) String() string {
	return t.Name
}

func (t *Team) BadgeURL() string {
	return fmt.Sprintf(teamBadgeURL, t.Code)
}

// MatchesSearch is a case insensitive substring match on the name or the
// short name.
func (t *Team) MatchesSearch(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Name), q) ||
		strings.Contains(strings.ToLower(t.ShortName), q)
}
