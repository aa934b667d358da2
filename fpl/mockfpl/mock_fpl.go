package mockfpl

import (
	"context"

	"github.com/kirikanjuguna/FPL-genius/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) BootstrapStatic(ctx context.Context) (*model.Bootstrap, error) {
	args := c.Called(ctx)

	var b *model.Bootstrap
	if args.Get(0) != nil {
		b = args.Get(0).(*model.Bootstrap)
	}

	return b, args.Error(1)
}

func (c *Client) Fixtures(ctx context.Context) ([]model.Fixture, error) {
	args := c.Called(ctx)

	var res []model.Fixture
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Fixture)
	}

	return res, args.Error(1)
}

func (c *Client) EventFixtures(ctx context.Context, event int) ([]model.Fixture, error) {
	args := c.Called(ctx, event)

	var res []model.Fixture
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Fixture)
	}

	return res, args.Error(1)
}

func (c *Client) EventLive(ctx context.Context, event int) (*model.EventLive, error) {
	args := c.Called(ctx, event)

	var l *model.EventLive
	if args.Get(0) != nil {
		l = args.Get(0).(*model.EventLive)
	}

	return l, args.Error(1)
}

func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	args := c.Called(ctx, path)

	var b []byte
	if args.Get(0) != nil {
		b = args.Get(0).([]byte)
	}

	return b, args.Error(1)
}
