package controller

import (
	"context"

	"github.com/kirikanjuguna/FPL-genius/fpl"
)

// EventFixtures returns the upstream fixtures document for a gameweek
// verbatim. An event <= 0 returns the whole season.
func (c *controller) EventFixtures(ctx context.Context, event int) ([]byte, error) {
	return c.fpl.Get(ctx, fpl.FixturesPath(event))
}

func (c *controller) EventLive(ctx context.Context, event int) ([]byte, error) {
	return c.fpl.Get(ctx, fpl.LivePath(event))
}
