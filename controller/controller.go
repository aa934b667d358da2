package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/kirikanjuguna/FPL-genius/fpl"
	"github.com/kirikanjuguna/FPL-genius/model"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrTeamNotFound   = errors.New("team not found")
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// ListPlayers filters, sorts and pages the player directory.
	ListPlayers(ctx context.Context, q model.PlayerQuery) (*model.PlayerPage, error)
	// GetPlayer always reads fresh data. Returns ErrPlayerNotFound for an unknown id.
	GetPlayer(ctx context.Context, id int) (*model.PlayerDetail, error)
	ListTeams(ctx context.Context, search string) ([]model.Team, error)
	// GetTeam returns the team and its squad. Returns ErrTeamNotFound for an unknown id.
	GetTeam(ctx context.Context, id int) (*model.TeamDetail, error)
	ListFixtures(ctx context.Context, filter model.FixtureFilter) (*model.FixtureList, error)
	// GameweekSummary selects eventID, or the current gameweek when eventID
	// does not exist, and layers live scoring over it.
	GameweekSummary(ctx context.Context, eventID int) (*model.GameweekSummary, error)

	// The raw upstream documents behind /api/fpl.
	EventFixtures(ctx context.Context, event int) ([]byte, error)
	EventLive(ctx context.Context, event int) ([]byte, error)

	// RefreshStatic re-fetches the season-static documents into the cache.
	RefreshStatic(ctx context.Context) error
	RunPeriodicRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

// Revalidate is how long each listing may reuse a cached upstream document.
// A zero duration always goes to the network.
type Revalidate struct {
	Players   time.Duration
	Teams     time.Duration
	Fixtures  time.Duration
	Gameweeks time.Duration
}

var DefaultRevalidate = Revalidate{
	Players:   60 * time.Second,
	Teams:     60 * time.Second,
	Fixtures:  300 * time.Second,
	Gameweeks: 300 * time.Second,
}

const (
	bootstrapKey = "bootstrap-static"
	fixturesKey  = "fixtures"
)

type controller struct {
	clock      clock.Clock
	fpl        fpl.Client
	cache      *fpl.Cache
	revalidate Revalidate
}

func New(clock clock.Clock, client fpl.Client, revalidate Revalidate) (C, error) {
	if client == nil {
		return nil, errors.New("fpl client is required")
	}
	c := &controller{
		clock:      clock,
		fpl:        client,
		cache:      fpl.NewCache(clock),
		revalidate: revalidate,
	}
	return c, nil
}

func (c *controller) bootstrap(ctx context.Context, maxAge time.Duration) (*model.Bootstrap, error) {
	return fpl.Cached(ctx, c.cache, bootstrapKey, maxAge, c.fpl.BootstrapStatic)
}

func (c *controller) fixtures(ctx context.Context, maxAge time.Duration) ([]model.Fixture, error) {
	return fpl.Cached(ctx, c.cache, fixturesKey, maxAge, c.fpl.Fixtures)
}
