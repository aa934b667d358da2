package testutils

import (
	"time"

	"github.com/itbasis/go-clock"
)

// TestController bundles what a controller needs to run against a fake
// upstream: a mock clock and a fake FPL server.
type TestController struct {
	Clock   *clock.Mock
	fakeFPL *FakeFPLServer
}

func NewTestController() *TestController {
	c := clock.NewMock()
	c.Set(time.Date(2024, time.August, 20, 12, 0, 0, 0, time.UTC))
	return &TestController{
		Clock:   c,
		fakeFPL: NewFakeFPLServer(),
	}
}

func (c *TestController) Close() {
	c.fakeFPL.Close()
}

func (c *TestController) FPLURL() string {
	return c.fakeFPL.URL()
}

func (c *TestController) FPL() *FakeFPLServer {
	return c.fakeFPL
}
