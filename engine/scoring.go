package engine

import (
	"errors"
	"strconv"
	"strings"

	"github.com/winzz-app/tournament-server/models"
)

// MaxScore is the highest score a side can record in one match.
const MaxScore = 21

// Side selects which team's score a SetScore call targets.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

var (
	ErrMatchCompleted    = errors.New("match is already completed")
	ErrMatchNotCompleted = errors.New("match is not completed")
	ErrInvalidSide       = errors.New("side must be A or B")
	ErrScoreInvalid      = errors.New("score must be an integer")
	ErrScoreOutOfRange   = errors.New("score must be between 0 and 21")
	ErrScoreMissing      = errors.New("both scores must be entered")
	ErrScoresTied        = errors.New("scores must not tie")
)

// SetScore records a raw score entry for one side of an open match. An empty
// value clears that side back to unset. Non-integer, negative or over-limit
// values are rejected without mutating the match.
func SetScore(m *models.Match, side Side, raw string) error {
	if m.Completed {
		return ErrMatchCompleted
	}
	if side != SideA && side != SideB {
		return ErrInvalidSide
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		setSide(m, side, nil)
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return ErrScoreInvalid
	}
	if value < 0 || value > MaxScore {
		return ErrScoreOutOfRange
	}
	setSide(m, side, &value)
	return nil
}

func setSide(m *models.Match, side Side, score *int) {
	if side == SideA {
		m.ScoreA = score
	} else {
		m.ScoreB = score
	}
}

// Complete closes an open match. Both scores must be set and unequal; a tie
// leaves the match open and returns ErrScoresTied. On success the winner is
// fixed by straight score comparison.
func Complete(m *models.Match) error {
	if m.Completed {
		return ErrMatchCompleted
	}
	if m.ScoreA == nil || m.ScoreB == nil {
		return ErrScoreMissing
	}
	if *m.ScoreA == *m.ScoreB {
		return ErrScoresTied
	}

	m.Completed = true
	if *m.ScoreA > *m.ScoreB {
		m.WinnerID = m.TeamAID
	} else {
		m.WinnerID = m.TeamBID
	}
	return nil
}

// Reopen makes a completed match editable again. Scores stay as last
// recorded; the standings stop counting the match until it is completed
// again.
func Reopen(m *models.Match) error {
	if !m.Completed {
		return ErrMatchNotCompleted
	}
	m.Completed = false
	m.WinnerID = ""
	return nil
}
