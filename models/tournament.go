package models

import "time"

// TournamentFormat describes how players are grouped into teams.
type TournamentFormat string

// FixtureType selects the presentation style for the fixture list.
type FixtureType string

const (
	FormatSingles TournamentFormat = "singles"
	FormatDoubles TournamentFormat = "doubles"

	FixtureWPL        FixtureType = "wpl"
	FixtureRoundRobin FixtureType = "roundrobin"
)

// Tournament is the full snapshot of one tournament. It is a flat structure
// with no cyclic references: matches carry copies of team ids and display
// names rather than live pointers, so the whole snapshot serializes to JSON
// and is stored under its ID as a single value.
type Tournament struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Format       TournamentFormat `json:"format"`
	FixtureType  FixtureType      `json:"fixture_type"`
	Players      []string         `json:"players"`
	Teams        []Team           `json:"teams"`
	Matches      []Match          `json:"matches"`
	CurrentRound int              `json:"current_round"`
	TotalRounds  int              `json:"total_rounds"`
	IsComplete   bool             `json:"is_complete"`
	CreatedAt    time.Time        `json:"created_at"`
}

// TeamByID looks a team up by its identifier.
func (t *Tournament) TeamByID(id string) (*Team, bool) {
	for i := range t.Teams {
		if t.Teams[i].ID == id {
			return &t.Teams[i], true
		}
	}
	return nil, false
}

// MatchByID looks a match up by its identifier.
func (t *Tournament) MatchByID(id string) (*Match, bool) {
	for i := range t.Matches {
		if t.Matches[i].ID == id {
			return &t.Matches[i], true
		}
	}
	return nil, false
}
