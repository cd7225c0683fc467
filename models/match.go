package models

// Match is one fixture between two teams. Scores are nil until entered.
// Once Completed is true both scores are set and unequal; reopening a match
// keeps the scores but makes them editable again.
type Match struct {
	ID        string `json:"id"`
	Round     int    `json:"round"`
	TeamAID   string `json:"team_a_id"`
	TeamBID   string `json:"team_b_id"`
	TeamAName string `json:"team_a_name"`
	TeamBName string `json:"team_b_name"`
	ScoreA    *int   `json:"score_a,omitempty"`
	ScoreB    *int   `json:"score_b,omitempty"`
	Completed bool   `json:"completed"`
	WinnerID  string `json:"winner_id,omitempty"`

	// Schedule fields, only set for WPL-style fixtures.
	TimeSlot string `json:"time_slot,omitempty"`
	Court    int    `json:"court,omitempty"`
}

// HasTeam reports whether the team participates in this match.
func (m *Match) HasTeam(teamID string) bool {
	return m.TeamAID == teamID || m.TeamBID == teamID
}
