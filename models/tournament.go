package models

// TournamentStatus mirrors the lifecycle values the tournament API reports.
type TournamentStatus string

const (
	TournamentStatusUpcoming  TournamentStatus = "Upcoming"
	TournamentStatusActive    TournamentStatus = "Active"
	TournamentStatusCompleted TournamentStatus = "Completed"
)

// Tournament is one league event owning teams, groups and matches.
type Tournament struct {
	TournamentID string           `json:"tournamentId"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Location     string           `json:"location,omitempty"`
	StartDate    string           `json:"startDate"`
	EndDate      string           `json:"endDate"`
	Status       TournamentStatus `json:"status"`
}

// TournamentInput is the payload for creating or updating a tournament.
type TournamentInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Standing is one row of a tournament's server-computed table. The console
// never derives these values itself.
type Standing struct {
	TeamID        string `json:"teamId"`
	TeamName      string `json:"teamName"`
	Played        int    `json:"played"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	PointsFor     int    `json:"pointsFor"`
	PointsAgainst int    `json:"pointsAgainst"`
	Rank          int    `json:"rank"`
}
