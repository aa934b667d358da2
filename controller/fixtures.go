package controller

import (
	"context"
	"fmt"
	"slices"

	"github.com/kirikanjuguna/FPL-genius/model"
	"golang.org/x/sync/errgroup"
)

func (c *controller) ListFixtures(ctx context.Context, filter model.FixtureFilter) (*model.FixtureList, error) {
	var (
		b        *model.Bootstrap
		fixtures []model.Fixture
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fixtures, err = c.fixtures(gctx, c.revalidate.Fixtures)
		return err
	})
	g.Go(func() error {
		var err error
		b, err = c.bootstrap(gctx, c.revalidate.Fixtures)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error loading fixtures: %w", err)
	}

	return &model.FixtureList{
		Filter: filter,
		Groups: groupFixtures(b, fixtures, filter),
	}, nil
}

// groupFixtures partitions the fixtures that pass the filter by gameweek, in
// ascending gameweek order. Fixtures without a gameweek are left out.
func groupFixtures(b *model.Bootstrap, fixtures []model.Fixture, filter model.FixtureFilter) []model.FixtureGroup {
	byEvent := make(map[int][]model.FixtureRow)
	for i := range fixtures {
		f := &fixtures[i]
		event, ok := f.EventID()
		if !ok || !filter.Keep(f) {
			continue
		}
		byEvent[event] = append(byEvent[event], fixtureRow(b, f))
	}

	events := make([]int, 0, len(byEvent))
	for e := range byEvent {
		events = append(events, e)
	}
	slices.Sort(events)

	groups := make([]model.FixtureGroup, 0, len(events))
	for _, e := range events {
		groups = append(groups, model.FixtureGroup{Event: e, Fixtures: byEvent[e]})
	}
	return groups
}

func fixtureRow(b *model.Bootstrap, f *model.Fixture) model.FixtureRow {
	return model.FixtureRow{
		Fixture:  *f,
		Home:     b.TeamShortName(f.TeamH),
		Away:     b.TeamShortName(f.TeamA),
		HomeLong: b.TeamName(f.TeamH),
		AwayLong: b.TeamName(f.TeamA),
	}
}
