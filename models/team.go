package models

// Team is one tournament entry: a pair in doubles, a single player in
// singles, or the odd leftover player in doubles. Membership never changes
// after creation; a reshuffle replaces all teams wholesale.
//
// Wins, Losses and Points are derived caches refreshed from the standings
// computation. The match list is the source of truth.
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Players []string `json:"players"`
	Wins    int      `json:"wins"`
	Losses  int      `json:"losses"`
	Points  int      `json:"points"`
}
