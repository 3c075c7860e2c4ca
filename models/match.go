package models

// MatchStatus mirrors the status values the tournament API reports.
type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "Scheduled"
	MatchStatusInProgress MatchStatus = "In Progress"
	MatchStatusCompleted  MatchStatus = "Completed"
)

// MatchCategory labels what kind of contest a match is.
type MatchCategory string

const (
	CategoryPractice     MatchCategory = "Practice"
	CategoryLeague       MatchCategory = "League"
	CategoryQuarterfinal MatchCategory = "Quarterfinal"
	CategorySemifinal    MatchCategory = "Semifinal"
	CategoryFinal        MatchCategory = "Final"
)

// Match is one scheduled contest between two teams within a tournament.
// Scores are pointers because the API omits them until a score has been
// recorded; Completed matches always carry both.
type Match struct {
	MatchID      string        `json:"matchId"`
	TournamentID string        `json:"tournamentId"`
	Team1ID      string        `json:"team1Id"`
	Team2ID      string        `json:"team2Id"`
	Team1Name    string        `json:"team1Name"`
	Team2Name    string        `json:"team2Name"`
	MatchDate    string        `json:"matchDate"`
	MatchTime    string        `json:"matchTime"`
	Court        string        `json:"court,omitempty"`
	Category     MatchCategory `json:"category,omitempty"`
	Status       MatchStatus   `json:"status"`
	Team1Score   *int          `json:"team1Score,omitempty"`
	Team2Score   *int          `json:"team2Score,omitempty"`
}

// ScheduleMatchInput is the payload for scheduling a new match.
type ScheduleMatchInput struct {
	TournamentID string        `json:"tournamentId"`
	Team1ID      string        `json:"team1Id"`
	Team2ID      string        `json:"team2Id"`
	MatchDate    string        `json:"matchDate"`
	MatchTime    string        `json:"matchTime"`
	Court        string        `json:"court,omitempty"`
	Category     MatchCategory `json:"category,omitempty"`
}

// ScoreUpdate is the payload for both the live-score and the finalize
// endpoints; which endpoint it is sent to decides whether the match stays
// In Progress or transitions to Completed.
type ScoreUpdate struct {
	Team1Score int `json:"team1Score"`
	Team2Score int `json:"team2Score"`
}
