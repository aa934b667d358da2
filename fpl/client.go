package fpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kirikanjuguna/FPL-genius/model"
)

const (
	FPLURL = "https://fantasy.premierleague.com/api"

	userAgent = "fpl-genius/1.0"

	// Bodies larger than this are rejected. bootstrap-static is ~2MB.
	maxBodySize = 32 << 20
)

// Client reads the public FPL API. Every call goes to the network, caching is
// layered on top by Cache.
type Client interface {
	BootstrapStatic(ctx context.Context) (*model.Bootstrap, error)
	// Fixtures returns every fixture of the season.
	Fixtures(ctx context.Context) ([]model.Fixture, error)
	// EventFixtures returns the fixtures of a single gameweek.
	EventFixtures(ctx context.Context, event int) ([]model.Fixture, error)
	EventLive(ctx context.Context, event int) (*model.EventLive, error)
	// Get returns the raw body served at path, e.g. "/fixtures/?event=3".
	Get(ctx context.Context, path string) ([]byte, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New(url string, timeout time.Duration) (Client, error) {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		url = FPLURL
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("fpl base url must be http or https, got: %s", url)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: http.DefaultClient,
	}
}

func BootstrapPath() string {
	return "/bootstrap-static/"
}

// FixturesPath returns the path of the season fixtures, or of a single
// gameweek when event > 0.
func FixturesPath(event int) string {
	if event > 0 {
		return fmt.Sprintf("/fixtures/?event=%d", event)
	}
	return "/fixtures/"
}

func LivePath(event int) string {
	return fmt.Sprintf("/event/%d/live/", event)
}

func (c *client) BootstrapStatic(ctx context.Context) (*model.Bootstrap, error) {
	var b model.Bootstrap
	if err := c.fplRequest(ctx, &b, BootstrapPath()); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *client) Fixtures(ctx context.Context) ([]model.Fixture, error) {
	var f []model.Fixture
	if err := c.fplRequest(ctx, &f, FixturesPath(0)); err != nil {
		return nil, err
	}
	return f, nil
}

func (c *client) EventFixtures(ctx context.Context, event int) ([]model.Fixture, error) {
	var f []model.Fixture
	if err := c.fplRequest(ctx, &f, FixturesPath(event)); err != nil {
		return nil, err
	}
	return f, nil
}

func (c *client) EventLive(ctx context.Context, event int) (*model.EventLive, error) {
	var l model.EventLive
	if err := c.fplRequest(ctx, &l, LivePath(event)); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *client) Get(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.do(ctx, path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("error reading fpl response body: %w", err)
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("error parsing response from fpl: invalid json from %s", path)
	}
	return b, nil
}

func (c *client) fplRequest(ctx context.Context, res any, path string) error {
	resp, err := c.do(ctx, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	err = json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(res)
	if err != nil {
		return fmt.Errorf("error parsing response from fpl: %w", err)
	}
	return nil
}

// do sends the request and checks the status. On success the caller owns the
// response body.
func (c *client) do(ctx context.Context, path string) (*http.Response, error) {
	url := c.url + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating fpl http request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending fpl http request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	return resp, nil
}
