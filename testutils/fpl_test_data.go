package testutils

import (
	"time"

	"github.com/kirikanjuguna/FPL-genius/model"
)

// These mirror entries in fpldata/bootstrap-static.json.
var (
	Arsenal = model.Team{
		ID:        1,
		Code:      3,
		Name:      "Arsenal",
		ShortName: "ARS",
		Strength:  4,
	}
	AstonVilla = model.Team{
		ID:        2,
		Code:      7,
		Name:      "Aston Villa",
		ShortName: "AVL",
		Strength:  3,
	}
	Liverpool = model.Team{
		ID:        12,
		Code:      14,
		Name:      "Liverpool",
		ShortName: "LIV",
		Strength:  5,
	}
	ManCity = model.Team{
		ID:        13,
		Code:      43,
		Name:      "Man City",
		ShortName: "MCI",
		Strength:  5,
	}

	Saka = model.Player{
		ID:          100,
		Code:        223340,
		WebName:     "Saka",
		FirstName:   "Bukayo",
		SecondName:  "Saka",
		Team:        1,
		ElementType: model.POS_MID,
		NowCost:     95,
		TotalPoints: 120,
		GoalsScored: 10,
		Assists:     12,
		Form:        "6.5",
		Minutes:     2800,
	}
	Raya = model.Player{
		ID:          101,
		WebName:     "Raya",
		FirstName:   "David",
		SecondName:  "Raya Martín",
		Team:        1,
		ElementType: model.POS_GKP,
		NowCost:     55,
		TotalPoints: 100,
	}
	Saliba = model.Player{
		ID:          102,
		WebName:     "Saliba",
		FirstName:   "William",
		SecondName:  "Saliba",
		Team:        1,
		ElementType: model.POS_DEF,
		NowCost:     60,
		TotalPoints: 110,
	}
	Watkins = model.Player{
		ID:          200,
		WebName:     "Watkins",
		FirstName:   "Ollie",
		SecondName:  "Watkins",
		Team:        2,
		ElementType: model.POS_FWD,
		NowCost:     90,
		TotalPoints: 150,
	}
	Salah = model.Player{
		ID:          300,
		WebName:     "Salah",
		FirstName:   "Mohamed",
		SecondName:  "Salah",
		Team:        12,
		ElementType: model.POS_MID,
		NowCost:     130,
		TotalPoints: 210,
	}
	AlexanderArnold = model.Player{
		ID:          301,
		WebName:     "Alexander-Arnold",
		FirstName:   "Trent",
		SecondName:  "Alexander-Arnold",
		Team:        12,
		ElementType: model.POS_DEF,
		NowCost:     70,
		TotalPoints: 90,
	}
	Haaland = model.Player{
		ID:          400,
		WebName:     "Haaland",
		FirstName:   "Erling",
		SecondName:  "Haaland",
		Team:        13,
		ElementType: model.POS_FWD,
		NowCost:     150,
		TotalPoints: 180,
	}
	Foden = model.Player{
		ID:          401,
		WebName:     "Foden",
		FirstName:   "Phil",
		SecondName:  "Foden",
		Team:        13,
		ElementType: model.POS_MID,
		NowCost:     95,
		TotalPoints: 200,
	}
	// Loanee plays for a team that is not in the teams list.
	Loanee = model.Player{
		ID:          999,
		WebName:     "Loanee",
		FirstName:   "Some",
		SecondName:  "Loanee",
		Team:        99,
		ElementType: model.POS_FWD,
		NowCost:     45,
	}

	Gameweek1 = model.Event{
		ID:                1,
		Name:              "Gameweek 1",
		DeadlineTime:      time.Date(2024, time.August, 16, 17, 30, 0, 0, time.UTC),
		Finished:          true,
		AverageEntryScore: 55,
		HighestScore:      127,
	}
	Gameweek2 = model.Event{
		ID:                2,
		Name:              "Gameweek 2",
		DeadlineTime:      time.Date(2024, time.August, 24, 10, 0, 0, 0, time.UTC),
		IsCurrent:         true,
		AverageEntryScore: 48,
		HighestScore:      110,
	}
	Gameweek3 = model.Event{
		ID:           3,
		Name:         "Gameweek 3",
		DeadlineTime: time.Date(2024, time.August, 31, 10, 0, 0, 0, time.UTC),
		IsNext:       true,
	}
)

// NewBootstrap returns a fresh copy of the test bootstrap document, safe for
// the caller to modify.
func NewBootstrap() *model.Bootstrap {
	return &model.Bootstrap{
		Events: []model.Event{Gameweek1, Gameweek2, Gameweek3},
		Teams:  []model.Team{Arsenal, AstonVilla, Liverpool, ManCity},
		Elements: []model.Player{
			Saka, Raya, Saliba, Watkins, Salah, AlexanderArnold, Haaland, Foden, Loanee,
		},
		ElementTypes: []model.ElementType{
			{ID: model.POS_GKP, SingularName: "Goalkeeper", SingularNameShort: "GKP", PluralName: "Goalkeepers"},
			{ID: model.POS_DEF, SingularName: "Defender", SingularNameShort: "DEF", PluralName: "Defenders"},
			{ID: model.POS_MID, SingularName: "Midfielder", SingularNameShort: "MID", PluralName: "Midfielders"},
			{ID: model.POS_FWD, SingularName: "Forward", SingularNameShort: "FWD", PluralName: "Forwards"},
		},
	}
}

func IntPtr(i int) *int {
	return &i
}

func StrPtr(s string) *string {
	return &s
}

// NewFixtures mirrors fpldata/fixtures.json.
func NewFixtures() []model.Fixture {
	return []model.Fixture{
		{ID: 1, Event: IntPtr(1), TeamH: 1, TeamA: 2, TeamHScore: IntPtr(2), TeamAScore: IntPtr(0), KickoffTime: StrPtr("2024-08-17T14:00:00Z"), Finished: true, Started: true},
		{ID: 2, Event: IntPtr(1), TeamH: 12, TeamA: 13, TeamHScore: IntPtr(1), TeamAScore: IntPtr(1), KickoffTime: StrPtr("2024-08-18T15:30:00Z"), Finished: true, Started: true},
		{ID: 3, Event: IntPtr(2), TeamH: 13, TeamA: 1, KickoffTime: StrPtr("2024-08-24T16:30:00Z")},
		{ID: 4, Event: IntPtr(2), TeamH: 2, TeamA: 12},
		{ID: 5, Event: IntPtr(3), TeamH: 1, TeamA: 12, KickoffTime: StrPtr("2024-08-31T11:30:00Z")},
		{ID: 6, TeamH: 2, TeamA: 13},
	}
}

func NewLive(points map[int]int) *model.EventLive {
	l := &model.EventLive{}
	for id, p := range points {
		l.Elements = append(l.Elements, model.LiveElement{ID: id, Stats: model.LiveStats{TotalPoints: p}})
	}
	return l
}
