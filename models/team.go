package models

// Team is a pair (or roster) of players registered to a tournament.
type Team struct {
	TeamID       string `json:"teamId"`
	TournamentID string `json:"tournamentId,omitempty"`
	Name         string `json:"name"`
	GroupID      string `json:"groupId,omitempty"`
}

// TeamInput is the payload for creating or updating a team.
type TeamInput struct {
	TournamentID string `json:"tournamentId,omitempty"`
	Name         string `json:"name"`
}

// Player belongs to at most one team.
type Player struct {
	PlayerID  string `json:"playerId"`
	TeamID    string `json:"teamId,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// PlayerInput is the payload for creating or updating a player.
type PlayerInput struct {
	TeamID    string `json:"teamId,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Group is a round-robin pool of teams within a tournament.
type Group struct {
	GroupID      string   `json:"groupId"`
	TournamentID string   `json:"tournamentId"`
	Name         string   `json:"name"`
	TeamIDs      []string `json:"teamIds,omitempty"`
}

// GroupInput is the payload for creating or updating a group.
type GroupInput struct {
	TournamentID string `json:"tournamentId"`
	Name         string `json:"name"`
}
