package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func (c *controller) RefreshStatic(ctx context.Context) error {
	start := c.clock.Now()
	log.Debug().Msg("refreshing fpl static data")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := c.fpl.BootstrapStatic(gctx)
		if err != nil {
			return fmt.Errorf("error refreshing bootstrap-static: %w", err)
		}
		c.cache.Store(bootstrapKey, b)
		return nil
	})
	g.Go(func() error {
		f, err := c.fpl.Fixtures(gctx)
		if err != nil {
			return fmt.Errorf("error refreshing fixtures: %w", err)
		}
		c.cache.Store(fixturesKey, f)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().Dur("took", c.clock.Now().Sub(start)).Msg("fpl static data refreshed")
	return nil
}

func (c *controller) RunPeriodicRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := c.clock.Ticker(frequency)
	defer ticker.Stop()
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := c.RefreshStatic(ctx); err != nil {
				log.Error().Err(err).Msg("periodic refresh failed")
			}
			cancel()
		}
	}
}
