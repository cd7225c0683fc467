package engine

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/winzz-app/tournament-server/models"
)

// teamNamePool provides the cosmetic team names. Each tournament draws from
// a shuffled copy; once the pool runs out teams fall back to "Team {n}".
var teamNamePool = []string{
	"Net Ninjas",
	"PowerShuttlers",
	"Smash Assassins",
	"Net Warriors",
	"Smash Lords",
	"FireFeathers",
	"Titans",
	"Falcons",
	"Quantum Smashers",
	"Falcon Smashers",
	"ThunderShuttler",
	"ShuttlerWarriors",
	"Ace kings",
	"Kinght rider",
	"Hot Shots",
}

// BuildTeams partitions players into teams. Doubles pairs consecutive
// players of a shuffled copy of the list; an odd leftover player becomes a
// team of one rather than being dropped. Singles wraps every player as a
// singleton team. The builder accepts any count >= 1; enforcing "even and at
// least 4 for doubles" is the setup flow's responsibility.
func BuildTeams(rng *rand.Rand, players []string, format models.TournamentFormat) []models.Team {
	shuffled := Shuffle(rng, players)
	names := Shuffle(rng, teamNamePool)

	teamName := func(i int) string {
		if i < len(names) {
			return names[i]
		}
		return fmt.Sprintf("Team %d", i+1)
	}

	if format == models.FormatSingles {
		teams := make([]models.Team, 0, len(shuffled))
		for i, player := range shuffled {
			teams = append(teams, models.Team{
				ID:      uuid.NewString(),
				Name:    teamName(i),
				Players: []string{player},
			})
		}
		return teams
	}

	teams := make([]models.Team, 0, (len(shuffled)+1)/2)
	for i := 0; i < len(shuffled); i += 2 {
		members := shuffled[i : min(i+2, len(shuffled))]
		teams = append(teams, models.Team{
			ID:      uuid.NewString(),
			Name:    teamName(len(teams)),
			Players: append([]string(nil), members...),
		})
	}
	return teams
}
