package controller

import (
	"context"
	"fmt"

	"github.com/kirikanjuguna/FPL-genius/model"
)

func (c *controller) ListTeams(ctx context.Context, search string) ([]model.Team, error) {
	b, err := c.bootstrap(ctx, c.revalidate.Teams)
	if err != nil {
		return nil, fmt.Errorf("error loading teams: %w", err)
	}

	res := make([]model.Team, 0, len(b.Teams))
	for i := range b.Teams {
		if b.Teams[i].MatchesSearch(search) {
			res = append(res, b.Teams[i])
		}
	}
	return res, nil
}

func (c *controller) GetTeam(ctx context.Context, id int) (*model.TeamDetail, error) {
	b, err := c.bootstrap(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("error loading team %d: %w", id, err)
	}

	t := b.Team(id)
	if t == nil {
		return nil, ErrTeamNotFound
	}

	d := &model.TeamDetail{Team: *t}
	for _, p := range b.Elements {
		if p.Team != id {
			continue
		}
		d.Players = append(d.Players, model.TeamPlayer{
			Player:   p,
			Position: b.PositionName(p.ElementType),
		})
	}
	return d, nil
}
