package controller

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/kirikanjuguna/FPL-genius/fpl"
)

func TestEventFixtures(t *testing.T) {
	c := newFakeController(t)

	tests := map[string]struct {
		event int
		want  int
	}{
		"one gameweek": {event: 1, want: 2},
		"whole season": {event: 0, want: 6},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			b, err := c.EventFixtures(context.Background(), tc.event)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var res []json.RawMessage
			if err := json.Unmarshal(b, &res); err != nil {
				t.Fatalf("error parsing body: %v", err)
			}
			if len(res) != tc.want {
				t.Errorf("expected %d fixtures, got %d", tc.want, len(res))
			}
		})
	}
}

func TestEventLive(t *testing.T) {
	c := newFakeController(t)

	b, err := c.EventLive(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res struct {
		Elements []json.RawMessage `json:"elements"`
	}
	if err := json.Unmarshal(b, &res); err != nil {
		t.Fatalf("error parsing body: %v", err)
	}
	if len(res.Elements) != 4 {
		t.Errorf("expected 4 elements, got %d", len(res.Elements))
	}

	if _, err := c.EventLive(context.Background(), 38); !fpl.IsNotFound(err) {
		t.Errorf("expected a not found error, got: '%v'", err)
	}
}
