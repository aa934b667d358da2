package controller

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/kirikanjuguna/FPL-genius/testutils"
)

func TestListTeams(t *testing.T) {
	c := newFakeController(t)

	tests := map[string]struct {
		search string
		want   []string
	}{
		"everyone":         {search: "", want: []string{"Arsenal", "Aston Villa", "Liverpool", "Man City"}},
		"name substring":   {search: "ver", want: []string{"Liverpool"}},
		"short name":       {search: "mci", want: []string{"Man City"}},
		"case insensitive": {search: "ASTON", want: []string{"Aston Villa"}},
		"shared prefix":    {search: "a", want: []string{"Arsenal", "Aston Villa", "Man City"}},
		"no match":         {search: "wrexham", want: []string{}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			teams, err := c.ListTeams(context.Background(), tc.search)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := make([]string, 0, len(teams))
			for _, team := range teams {
				got = append(got, team.Name)
			}
			if !slices.Equal(tc.want, got) {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestGetTeam(t *testing.T) {
	c := newFakeController(t)

	d, err := c.GetTeam(context.Background(), testutils.Arsenal.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Team.Name != "Arsenal" {
		t.Errorf("expected: 'Arsenal', got: '%s'", d.Team.Name)
	}

	want := map[int]string{100: "Midfielder", 101: "Goalkeeper", 102: "Defender"}
	if len(d.Players) != len(want) {
		t.Fatalf("expected %d players, got %d", len(want), len(d.Players))
	}
	for _, p := range d.Players {
		if p.Player.Team != testutils.Arsenal.ID {
			t.Errorf("player %d plays for team %d", p.Player.ID, p.Player.Team)
		}
		if want[p.Player.ID] != p.Position {
			t.Errorf("player %d: expected: '%s', got: '%s'", p.Player.ID, want[p.Player.ID], p.Position)
		}
	}

	if _, err := c.GetTeam(context.Background(), 99); !errors.Is(err, ErrTeamNotFound) {
		t.Errorf("expected: '%v', got: '%v'", ErrTeamNotFound, err)
	}
}
