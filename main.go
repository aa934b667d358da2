package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/kirikanjuguna/FPL-genius/config"
	"github.com/kirikanjuguna/FPL-genius/controller"
	"github.com/kirikanjuguna/FPL-genius/fpl"
	"github.com/kirikanjuguna/FPL-genius/web"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}
	setupLogging(cfg.LogLevel, cfg.LogFormat)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading display timezone")
	}

	fplClient, err := fpl.New(cfg.FPLBaseURL, cfg.FPLTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating fpl client")
	}

	clock := clock.New()
	ctrl, err := controller.New(clock, fplClient, controller.Revalidate{
		Players:   cfg.Revalidate.Players,
		Teams:     cfg.Revalidate.Teams,
		Fixtures:  cfg.Revalidate.Fixtures,
		Gameweeks: cfg.Revalidate.Gameweeks,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating a new controller")
	}

	server, err := web.NewServer(cfg.Port, ctrl, web.Options{
		RequestTimeout: cfg.RequestTimeout,
		Location:       loc,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating new web server")
	}

	// Warm the cache so the first visitors do not wait on bootstrap-static.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.FPLTimeout)
	if err := ctrl.RefreshStatic(ctx); err != nil {
		log.Warn().Err(err).Msg("initial fpl refresh failed, pages will fetch on demand")
	}
	cancel()

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Error().Msg("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	if cfg.RefreshInterval > 0 {
		wg.Add(1)
		go ctrl.RunPeriodicRefresh(cfg.RefreshInterval, shutdown, wg)
	}

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Info().Msg("server shutdown")
}

func setupLogging(level, format string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
