package models

// Standing is one row of the ranked points table, recomputed from the
// completed matches on every read.
type Standing struct {
	TeamID        string  `json:"team_id"`
	TeamName      string  `json:"team_name"`
	Points        int     `json:"points"`
	MatchesPlayed int     `json:"matches_played"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Scored        int     `json:"scored"`
	Conceded      int     `json:"conceded"`
	NetRate       float64 `json:"net_rate"`
}
