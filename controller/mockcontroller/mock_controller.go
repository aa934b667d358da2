package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/kirikanjuguna/FPL-genius/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) ListPlayers(ctx context.Context, q model.PlayerQuery) (*model.PlayerPage, error) {
	args := c.Called(ctx, q)

	var p *model.PlayerPage
	if args.Get(0) != nil {
		p = args.Get(0).(*model.PlayerPage)
	}

	return p, args.Error(1)
}

func (c *C) GetPlayer(ctx context.Context, id int) (*model.PlayerDetail, error) {
	args := c.Called(ctx, id)

	var p *model.PlayerDetail
	if args.Get(0) != nil {
		p = args.Get(0).(*model.PlayerDetail)
	}

	return p, args.Error(1)
}

func (c *C) ListTeams(ctx context.Context, search string) ([]model.Team, error) {
	args := c.Called(ctx, search)

	var res []model.Team
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Team)
	}

	return res, args.Error(1)
}

func (c *C) GetTeam(ctx context.Context, id int) (*model.TeamDetail, error) {
	args := c.Called(ctx, id)

	var t *model.TeamDetail
	if args.Get(0) != nil {
		t = args.Get(0).(*model.TeamDetail)
	}

	return t, args.Error(1)
}

func (c *C) ListFixtures(ctx context.Context, filter model.FixtureFilter) (*model.FixtureList, error) {
	args := c.Called(ctx, filter)

	var l *model.FixtureList
	if args.Get(0) != nil {
		l = args.Get(0).(*model.FixtureList)
	}

	return l, args.Error(1)
}

func (c *C) GameweekSummary(ctx context.Context, eventID int) (*model.GameweekSummary, error) {
	args := c.Called(ctx, eventID)

	var s *model.GameweekSummary
	if args.Get(0) != nil {
		s = args.Get(0).(*model.GameweekSummary)
	}

	return s, args.Error(1)
}

func (c *C) EventFixtures(ctx context.Context, event int) ([]byte, error) {
	args := c.Called(ctx, event)

	var b []byte
	if args.Get(0) != nil {
		b = args.Get(0).([]byte)
	}

	return b, args.Error(1)
}

func (c *C) EventLive(ctx context.Context, event int) ([]byte, error) {
	args := c.Called(ctx, event)

	var b []byte
	if args.Get(0) != nil {
		b = args.Get(0).([]byte)
	}

	return b, args.Error(1)
}

func (c *C) RefreshStatic(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
