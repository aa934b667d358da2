package controller

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"

	"github.com/kirikanjuguna/FPL-genius/model"
)

// PageSize is how many more players each "Load More" reveals.
const PageSize = 30

// maxLimit is the largest page multiple that still leaves room for the next page.
const maxLimit = math.MaxInt - math.MaxInt%PageSize - PageSize

// Shown on player cards whose team id does not resolve.
const unknownTeamCard = "Unknown Team"

func (c *controller) ListPlayers(ctx context.Context, q model.PlayerQuery) (*model.PlayerPage, error) {
	b, err := c.bootstrap(ctx, c.revalidate.Players)
	if err != nil {
		return nil, fmt.Errorf("error loading players: %w", err)
	}

	q = resolveQuery(b, q)
	filtered := filterPlayers(b.Elements, q)
	sortPlayers(filtered, q.Sort)

	limit := normalizeLimit(q.Limit)
	q.Limit = limit
	visible := visibleCount(limit, len(filtered))

	page := &model.PlayerPage{
		Query:     q,
		Players:   make([]model.PlayerCard, 0, visible),
		Total:     len(filtered),
		HasMore:   visible < len(filtered),
		NextLimit: limit + PageSize,
		Teams:     sortedTeams(b.Teams),
	}
	for _, p := range filtered[:visible] {
		name := unknownTeamCard
		if t := b.Team(p.Team); t != nil {
			name = t.Name
		}
		page.Players = append(page.Players, model.PlayerCard{Player: p, TeamName: name})
	}
	return page, nil
}

func (c *controller) GetPlayer(ctx context.Context, id int) (*model.PlayerDetail, error) {
	b, err := c.bootstrap(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("error loading player %d: %w", id, err)
	}

	p := b.Player(id)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	return &model.PlayerDetail{
		Player:   *p,
		Team:     b.Team(p.Team),
		Position: b.PositionName(p.ElementType),
	}, nil
}

// resolveQuery moves inline `pos:` and `team:` tags out of the search text.
// Values picked from the dropdowns win over the tags.
func resolveQuery(b *model.Bootstrap, q model.PlayerQuery) model.PlayerQuery {
	search, pos := getPositionFromQuery(q.Search)
	search, team := getTeamFromQuery(b, search)

	q.Search = search
	if q.Position == model.POS_UNKNOWN {
		q.Position = pos
	}
	if q.Team == 0 && team != nil {
		q.Team = team.ID
	}
	q.Sort = model.ParseSortMode(string(q.Sort))
	return q
}

// filterPlayers returns a new slice, the input is shared and never modified.
func filterPlayers(players []model.Player, q model.PlayerQuery) []model.Player {
	res := make([]model.Player, 0, len(players))
	for i := range players {
		p := &players[i]
		if q.Team != 0 && p.Team != q.Team {
			continue
		}
		if q.Position != model.POS_UNKNOWN && p.ElementType != q.Position {
			continue
		}
		if !p.MatchesName(q.Search) {
			continue
		}
		res = append(res, *p)
	}
	return res
}

// sortPlayers is stable so ties keep the API order.
func sortPlayers(players []model.Player, mode model.SortMode) {
	switch mode {
	case model.SORT_COST:
		slices.SortStableFunc(players, func(a, b model.Player) int {
			return b.NowCost - a.NowCost
		})
	case model.SORT_NAME:
		slices.SortStableFunc(players, func(a, b model.Player) int {
			return strings.Compare(strings.ToLower(a.WebName), strings.ToLower(b.WebName))
		})
	default:
		slices.SortStableFunc(players, func(a, b model.Player) int {
			return b.TotalPoints - a.TotalPoints
		})
	}
}

// normalizeLimit rounds the requested limit up to a whole number of pages,
// with a minimum of one page and a maximum of maxLimit.
func normalizeLimit(limit int) int {
	if limit <= PageSize {
		return PageSize
	}
	if limit >= maxLimit {
		return maxLimit
	}
	if r := limit % PageSize; r != 0 {
		limit += PageSize - r
	}
	return limit
}

func visibleCount(limit, total int) int {
	return min(normalizeLimit(limit), total)
}

func sortedTeams(teams []model.Team) []model.Team {
	res := slices.Clone(teams)
	slices.SortFunc(res, func(a, b model.Team) int {
		return strings.Compare(a.Name, b.Name)
	})
	return res
}

var positionRegex = regexp.MustCompile(`(?i)\b(pos|position)\s*:\s*(?P<pos>\w+)`)

// Parse out the position from the query, returning the same query without the position.
// So if the query is "Saka pos:MID" this will return "Saka" and model.POS_MID.
// If the input query does not have a `pos:` argument then the function will return the
// input string and model.POS_UNKNOWN.
// Allowed tags for the position are `pos` and `position` case insensitive.
func getPositionFromQuery(q string) (string, model.Position) {
	pos := model.POS_UNKNOWN
	m := positionRegex.FindStringSubmatch(q)
	if m != nil {
		p := m[positionRegex.SubexpIndex("pos")]
		pos = model.ParsePosition(p)
		q = strings.Replace(q, m[0], "", 1) // Remove the position match from the query
		q = strings.Join(strings.Fields(q), " ")
	}

	return q, pos
}

var teamRegex = regexp.MustCompile(`(?i)\bteam\s*:\s*(?:"(?P<quoted>[^"]+)"|(?P<team>\w+))`)

// Parse out the team from the query, returning the same query without the team.
// So if the query is "Saka team:ARS" this will return "Saka" and Arsenal.
// Names with spaces can be quoted: `team:"Aston Villa"`.
// If the tag does not resolve to a team it is still removed and nil is returned.
func getTeamFromQuery(b *model.Bootstrap, q string) (string, *model.Team) {
	var team *model.Team
	m := teamRegex.FindStringSubmatch(q)
	if m != nil {
		t := m[teamRegex.SubexpIndex("team")]
		if quoted := m[teamRegex.SubexpIndex("quoted")]; quoted != "" {
			t = quoted
		}
		team = b.FindTeam(t)
		q = strings.Replace(q, m[0], "", 1) // Remove the team match from the query
		q = strings.Join(strings.Fields(q), " ")
	}

	return q, team
}
