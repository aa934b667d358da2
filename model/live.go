package model

// EventLive is the body of /event/{id}/live/. Only the fields used for the
// gameweek summary are decoded.
type EventLive struct {
	Elements []LiveElement `json:"elements"`
}

type LiveElement struct {
	ID    int       `json:"id"`
	Stats LiveStats `json:"stats"`
}

type LiveStats struct {
	Minutes     int `json:"minutes"`
	GoalsScored int `json:"goals_scored"`
	Assists     int `json:"assists"`
	Bonus       int `json:"bonus"`
	TotalPoints int `json:"total_points"`
}
