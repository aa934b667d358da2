package controller

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/kirikanjuguna/FPL-genius/fpl"
	"github.com/kirikanjuguna/FPL-genius/model"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// TopPlayersLimit is the length of the gameweek top scorers list.
const TopPlayersLimit = 5

func (c *controller) GameweekSummary(ctx context.Context, eventID int) (*model.GameweekSummary, error) {
	b, err := c.bootstrap(ctx, c.revalidate.Gameweeks)
	if err != nil {
		return nil, fmt.Errorf("error loading gameweeks: %w", err)
	}

	s := &model.GameweekSummary{
		Events:   slices.Clone(b.Events),
		Selected: selectEvent(b, eventID),
	}
	if s.Selected == nil {
		return s, nil
	}
	event := s.Selected.ID

	var (
		fixtures []model.Fixture
		live     *model.EventLive
	)
	// Neither fetch fails the page, so the group only waits.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := c.gameweekFixtures(gctx, event)
		if err != nil {
			log.Warn().Err(err).Int("event", event).Msg("error loading gameweek fixtures")
			s.FixturesErr = true
			return nil
		}
		fixtures = f
		return nil
	})
	g.Go(func() error {
		l, err := fpl.Cached(gctx, c.cache, fmt.Sprintf("live/%d", event), c.revalidate.Gameweeks,
			func(ctx context.Context) (*model.EventLive, error) {
				return c.fpl.EventLive(ctx, event)
			})
		if err != nil {
			log.Warn().Err(err).Int("event", event).Msg("error loading live data")
			s.LiveErr = true
			return nil
		}
		live = l
		return nil
	})
	g.Wait()

	s.Fixtures = make([]model.FixtureRow, 0, len(fixtures))
	for i := range fixtures {
		s.Fixtures = append(s.Fixtures, fixtureRow(b, &fixtures[i]))
	}
	s.TopPlayers = topPlayers(b, live, TopPlayersLimit)
	return s, nil
}

// selectEvent returns the requested gameweek, or the current one when the
// request does not name an existing gameweek.
func selectEvent(b *model.Bootstrap, eventID int) *model.Event {
	var e *model.Event
	if eventID > 0 {
		e = b.Event(eventID)
	}
	if e == nil {
		e = b.CurrentEvent()
	}
	if e == nil {
		return nil
	}
	res := *e
	return &res
}

// gameweekFixtures asks for the fixtures of one gameweek and falls back to
// filtering the season list when upstream answers with an empty list.
func (c *controller) gameweekFixtures(ctx context.Context, event int) ([]model.Fixture, error) {
	f, err := fpl.Cached(ctx, c.cache, fmt.Sprintf("fixtures/%d", event), c.revalidate.Gameweeks,
		func(ctx context.Context) ([]model.Fixture, error) {
			return c.fpl.EventFixtures(ctx, event)
		})
	if err != nil {
		return nil, err
	}
	if len(f) > 0 {
		return f, nil
	}

	all, err := c.fixtures(ctx, c.revalidate.Gameweeks)
	if err != nil {
		return nil, err
	}
	res := make([]model.Fixture, 0)
	for _, fx := range all {
		if id, ok := fx.EventID(); ok && id == event {
			res = append(res, fx)
		}
	}
	return res, nil
}

// topPlayers joins live scoring to the players and teams and returns at most
// n players with positive points, best first. Ties go to the lower player id.
// Live entries for unknown players are dropped.
func topPlayers(b *model.Bootstrap, live *model.EventLive, n int) []model.TopPlayer {
	if live == nil {
		return []model.TopPlayer{}
	}

	players := b.PlayersByID()
	res := make([]model.TopPlayer, 0, len(live.Elements))
	for _, e := range live.Elements {
		if e.Stats.TotalPoints <= 0 {
			continue
		}
		p, ok := players[e.ID]
		if !ok {
			continue
		}
		res = append(res, model.TopPlayer{
			ID:       p.ID,
			Name:     p.WebName,
			TeamName: b.TeamName(p.Team),
			Points:   e.Stats.TotalPoints,
		})
	}

	slices.SortFunc(res, func(a, b model.TopPlayer) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if len(res) > n {
		res = res[:n]
	}
	return res
}
