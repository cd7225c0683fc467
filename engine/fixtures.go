package engine

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/winzz-app/tournament-server/models"
)

// Schedule constants for the WPL-style fixture list.
const (
	scheduleStartHour  = 9
	matchMinutes       = 30
	roundBreakMinutes  = 15
	scheduleCourtCount = 2
)

// FixtureOptions controls the optional extras of fixture generation.
type FixtureOptions struct {
	// Schedule assigns time slots and courts (WPL-style presentation).
	Schedule bool
	// ShuffleOrder randomizes the presentation order of the fixture list.
	// Round numbers stay as assigned in generation order, so a shuffled
	// list no longer guarantees one match per team per nominal round.
	ShuffleOrder bool
}

// GenerateFixtures produces the complete round robin over teams: every
// unordered pair exactly once, generated in lexicographic (i,j) order.
// Rounds are chunked as ceil(matchIndex / floor(n/2)) over the generation
// order. Fewer than two teams yields an empty fixture list, not an error.
// The returned round count is the highest assigned round, or 0 for no
// matches.
func GenerateFixtures(rng *rand.Rand, teams []models.Team, opts FixtureOptions) ([]models.Match, int) {
	n := len(teams)
	if n < 2 {
		return []models.Match{}, 0
	}

	matchesPerRound := n / 2
	matches := make([]models.Match, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			idx := len(matches) + 1 // 1-based position in generation order
			m := models.Match{
				ID:        uuid.NewString(),
				Round:     (idx + matchesPerRound - 1) / matchesPerRound,
				TeamAID:   teams[i].ID,
				TeamBID:   teams[j].ID,
				TeamAName: teams[i].Name,
				TeamBName: teams[j].Name,
			}
			if opts.Schedule {
				m.TimeSlot = timeSlot(idx-1, matchesPerRound)
				m.Court = (idx-1)%scheduleCourtCount + 1
			}
			matches = append(matches, m)
		}
	}

	totalRounds := matches[len(matches)-1].Round

	if opts.ShuffleOrder {
		matches = Shuffle(rng, matches)
	}
	return matches, totalRounds
}

// timeSlot returns the clock time of the match at 0-based position idx.
// Play starts at 09:00, every match takes 30 minutes and each new round is
// preceded by a 15 minute break.
func timeSlot(idx, matchesPerRound int) string {
	minutes := scheduleStartHour * 60
	minutes += idx * matchMinutes
	minutes += (idx / matchesPerRound) * roundBreakMinutes
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
