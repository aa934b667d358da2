package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/kirikanjuguna/FPL-genius/fpl/mockfpl"
	"github.com/kirikanjuguna/FPL-genius/model"
	"github.com/kirikanjuguna/FPL-genius/testutils"
	"github.com/stretchr/testify/mock"
)

type group struct {
	event    int
	fixtures []int
}

func groupIDs(groups []model.FixtureGroup) []group {
	res := make([]group, 0, len(groups))
	for _, g := range groups {
		ids := make([]int, 0, len(g.Fixtures))
		for _, f := range g.Fixtures {
			ids = append(ids, f.Fixture.ID)
		}
		res = append(res, group{event: g.Event, fixtures: ids})
	}
	return res
}

func TestGroupFixtures(t *testing.T) {
	b := testutils.NewBootstrap()

	tests := map[model.FixtureFilter][]group{
		model.FIXTURES_ALL: {
			{event: 1, fixtures: []int{1, 2}},
			{event: 2, fixtures: []int{3, 4}},
			{event: 3, fixtures: []int{5}},
		},
		model.FIXTURES_UPCOMING: {
			{event: 2, fixtures: []int{3, 4}},
			{event: 3, fixtures: []int{5}},
		},
		model.FIXTURES_PAST: {
			{event: 1, fixtures: []int{1, 2}},
		},
	}

	for filter, want := range tests {
		t.Run(string(filter), func(t *testing.T) {
			got := groupIDs(groupFixtures(b, testutils.NewFixtures(), filter))
			if len(want) != len(got) {
				t.Fatalf("expected: '%v', got: '%v'", want, got)
			}
			for i := range want {
				if want[i].event != got[i].event || len(want[i].fixtures) != len(got[i].fixtures) {
					t.Errorf("group %d: expected: '%v', got: '%v'", i, want[i], got[i])
					continue
				}
				for j := range want[i].fixtures {
					if want[i].fixtures[j] != got[i].fixtures[j] {
						t.Errorf("group %d: expected: '%v', got: '%v'", i, want[i], got[i])
					}
				}
			}
		})
	}
}

func TestGroupFixturesIsAPartition(t *testing.T) {
	b := testutils.NewBootstrap()
	var fixtures []model.Fixture
	// Shuffle events so grouping cannot rely on input order.
	for i := 0; i < 200; i++ {
		f := model.Fixture{ID: i + 1, TeamH: 1, TeamA: 2, Finished: i%3 == 0}
		if i%11 != 0 {
			f.Event = testutils.IntPtr((i*7)%38 + 1)
		}
		fixtures = append(fixtures, f)
	}

	groups := groupFixtures(b, fixtures, model.FIXTURES_ALL)

	seen := make(map[int]int)
	prevEvent := 0
	for _, g := range groups {
		if g.Event <= prevEvent {
			t.Errorf("groups out of order or repeated: %d after %d", g.Event, prevEvent)
		}
		prevEvent = g.Event
		for _, row := range g.Fixtures {
			seen[row.Fixture.ID]++
			if id, _ := row.Fixture.EventID(); id != g.Event {
				t.Errorf("fixture %d with event %d is in group %d", row.Fixture.ID, id, g.Event)
			}
		}
	}

	for _, f := range fixtures {
		_, hasEvent := f.EventID()
		switch {
		case hasEvent && seen[f.ID] != 1:
			t.Errorf("fixture %d appears %d times", f.ID, seen[f.ID])
		case !hasEvent && seen[f.ID] != 0:
			t.Errorf("fixture %d has no event but was grouped", f.ID)
		}
	}
}

func TestListFixtures(t *testing.T) {
	c := newFakeController(t)

	l, err := c.ListFixtures(context.Background(), model.FIXTURES_ALL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Filter != model.FIXTURES_ALL {
		t.Errorf("expected: '%s', got: '%s'", model.FIXTURES_ALL, l.Filter)
	}
	if len(l.Groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(l.Groups))
	}

	row := l.Groups[0].Fixtures[0]
	if row.Home != "ARS" || row.Away != "AVL" || row.HomeLong != "Arsenal" {
		t.Errorf("unexpected team names: %+v", row)
	}
	if got := row.Fixture.ScoreDisplay(); got != "2 - 0" {
		t.Errorf("expected: '2 - 0', got: '%s'", got)
	}
	if got := l.Groups[1].Fixtures[1].Fixture.KickoffDisplay(); got != "TBD" {
		t.Errorf("expected: 'TBD', got: '%s'", got)
	}
}

func TestListFixturesError(t *testing.T) {
	client := &mockfpl.Client{}
	client.On("BootstrapStatic", mock.Anything).Return(testutils.NewBootstrap(), nil)
	client.On("Fixtures", mock.Anything).Return(nil, errors.New("upstream down"))
	c, _ := newController(t, client)

	if _, err := c.ListFixtures(context.Background(), model.FIXTURES_ALL); err == nil {
		t.Errorf("expected an error, got nil")
	}
}
