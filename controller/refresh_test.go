package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kirikanjuguna/FPL-genius/fpl/mockfpl"
	"github.com/kirikanjuguna/FPL-genius/model"
	"github.com/kirikanjuguna/FPL-genius/testutils"
	"github.com/stretchr/testify/mock"
)

func TestRefreshStatic(t *testing.T) {
	client := &mockfpl.Client{}
	client.On("BootstrapStatic", mock.Anything).Return(testutils.NewBootstrap(), nil)
	client.On("Fixtures", mock.Anything).Return(testutils.NewFixtures(), nil)
	c, _ := newController(t, client)
	ctx := context.Background()

	if err := c.RefreshStatic(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both listings are served from the warmed cache.
	if _, err := c.ListPlayers(ctx, model.PlayerQuery{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.ListFixtures(ctx, model.FIXTURES_ALL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client.AssertNumberOfCalls(t, "BootstrapStatic", 1)
	client.AssertNumberOfCalls(t, "Fixtures", 1)
}

func TestRefreshStaticError(t *testing.T) {
	client := &mockfpl.Client{}
	client.On("BootstrapStatic", mock.Anything).Return(testutils.NewBootstrap(), nil)
	client.On("Fixtures", mock.Anything).Return(nil, errors.New("upstream down"))
	c, _ := newController(t, client)

	if err := c.RefreshStatic(context.Background()); err == nil {
		t.Errorf("expected an error, got nil")
	}
}

func TestRunPeriodicRefresh(t *testing.T) {
	refreshed := make(chan struct{}, 10)

	client := &mockfpl.Client{}
	client.On("BootstrapStatic", mock.Anything).Return(testutils.NewBootstrap(), nil).Run(func(args mock.Arguments) {
		refreshed <- struct{}{}
	})
	client.On("Fixtures", mock.Anything).Return(testutils.NewFixtures(), nil)
	c, clock := newController(t, client)

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go c.RunPeriodicRefresh(time.Minute, shutdown, wg)

	// The ticker is created in the goroutine, keep advancing until it fires.
	deadline := time.After(5 * time.Second)
	for done := false; !done; {
		clock.Add(time.Minute)
		select {
		case <-refreshed:
			done = true
		case <-time.After(20 * time.Millisecond):
		case <-deadline:
			t.Fatalf("timed out waiting for a refresh")
		}
	}

	close(shutdown)
	wg.Wait()
}
