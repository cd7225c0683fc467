package engine

import (
	"sort"

	"github.com/winzz-app/tournament-server/models"
)

// Scoring holds the point values awarded per match result. The points-table
// presentation uses 2/0, the win-loss-record presentation uses 3/1.
type Scoring struct {
	WinPoints  int
	LossPoints int
}

var (
	PointsTableScoring = Scoring{WinPoints: 2, LossPoints: 0}
	WinLossScoring     = Scoring{WinPoints: 3, LossPoints: 1}
)

// ComputeStandings folds every completed match into a ranked table. The
// table is derived from scratch on each call, so reopening and re-completing
// a match can never double-count. Sorted by points, ties broken by net rate;
// equal on both leaves the team order stable.
func ComputeStandings(teams []models.Team, matches []models.Match, scoring Scoring) []models.Standing {
	index := make(map[string]*models.Standing, len(teams))
	table := make([]models.Standing, len(teams))
	for i, team := range teams {
		table[i] = models.Standing{TeamID: team.ID, TeamName: team.Name}
		index[team.ID] = &table[i]
	}

	for _, m := range matches {
		if !m.Completed || m.ScoreA == nil || m.ScoreB == nil {
			continue
		}
		a, okA := index[m.TeamAID]
		b, okB := index[m.TeamBID]
		if !okA || !okB {
			continue
		}

		a.MatchesPlayed++
		b.MatchesPlayed++
		a.Scored += *m.ScoreA
		a.Conceded += *m.ScoreB
		b.Scored += *m.ScoreB
		b.Conceded += *m.ScoreA

		if *m.ScoreA > *m.ScoreB {
			a.Wins++
			b.Losses++
			a.Points += scoring.WinPoints
			b.Points += scoring.LossPoints
		} else {
			b.Wins++
			a.Losses++
			b.Points += scoring.WinPoints
			a.Points += scoring.LossPoints
		}
	}

	for i := range table {
		table[i].NetRate = netRate(table[i].Scored, table[i].Conceded, table[i].MatchesPlayed)
	}

	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Points != table[j].Points {
			return table[i].Points > table[j].Points
		}
		return table[i].NetRate > table[j].NetRate
	})
	return table
}

// netRate is the scoring-margin tiebreaker: scored and conceded each
// normalized by 21 times the matches played. The zero-match guard keeps the
// division defined; with nothing scored it still comes out zero.
func netRate(scored, conceded, matchesPlayed int) float64 {
	mp := matchesPlayed
	if mp == 0 {
		mp = 1
	}
	denom := float64(MaxScore * mp)
	return float64(scored)/denom - float64(conceded)/denom
}

// ApplyRecords refreshes the derived win/loss/points caches on the teams
// from the current match list.
func ApplyRecords(teams []models.Team, matches []models.Match, scoring Scoring) {
	standings := ComputeStandings(teams, matches, scoring)
	byID := make(map[string]models.Standing, len(standings))
	for _, s := range standings {
		byID[s.TeamID] = s
	}
	for i := range teams {
		s := byID[teams[i].ID]
		teams[i].Wins = s.Wins
		teams[i].Losses = s.Losses
		teams[i].Points = s.Points
	}
}
