package engine

import (
	"errors"
	"testing"

	"github.com/winzz-app/tournament-server/models"
)

func openMatch() *models.Match {
	return &models.Match{
		ID:        "m1",
		Round:     1,
		TeamAID:   "team-a",
		TeamBID:   "team-b",
		TeamAName: "Net Ninjas",
		TeamBName: "Hot Shots",
	}
}

func TestSetScoreAcceptsValidValues(t *testing.T) {
	m := openMatch()

	for _, raw := range []string{"0", "15", "21"} {
		if err := SetScore(m, SideA, raw); err != nil {
			t.Fatalf("SetScore(%q) failed: %v", raw, err)
		}
	}
	if m.ScoreA == nil || *m.ScoreA != 21 {
		t.Fatalf("expected last accepted score 21, got %v", m.ScoreA)
	}
}

func TestSetScoreRejectsInvalidValues(t *testing.T) {
	m := openMatch()
	if err := SetScore(m, SideA, "15"); err != nil {
		t.Fatalf("seeding score failed: %v", err)
	}

	cases := []struct {
		raw  string
		want error
	}{
		{"-1", ErrScoreOutOfRange},
		{"22", ErrScoreOutOfRange},
		{"abc", ErrScoreInvalid},
		{"7.5", ErrScoreInvalid},
	}
	for _, tc := range cases {
		if err := SetScore(m, SideA, tc.raw); !errors.Is(err, tc.want) {
			t.Fatalf("SetScore(%q): expected %v, got %v", tc.raw, tc.want, err)
		}
		if m.ScoreA == nil || *m.ScoreA != 15 {
			t.Fatalf("rejected input %q mutated the score to %v", tc.raw, m.ScoreA)
		}
	}
}

func TestSetScoreClearsOnEmpty(t *testing.T) {
	m := openMatch()
	if err := SetScore(m, SideB, "18"); err != nil {
		t.Fatalf("seeding score failed: %v", err)
	}

	if err := SetScore(m, SideB, ""); err != nil {
		t.Fatalf("clearing score failed: %v", err)
	}
	if m.ScoreB != nil {
		t.Fatalf("expected cleared score, got %v", *m.ScoreB)
	}
}

func TestSetScoreRejectedWhileCompleted(t *testing.T) {
	m := openMatch()
	mustScore(t, m, "21", "15")
	if err := Complete(m); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	if err := SetScore(m, SideA, "10"); !errors.Is(err, ErrMatchCompleted) {
		t.Fatalf("expected ErrMatchCompleted, got %v", err)
	}
	if *m.ScoreA != 21 {
		t.Fatalf("completed match score mutated to %d", *m.ScoreA)
	}
}

func TestCompleteRequiresBothScores(t *testing.T) {
	m := openMatch()
	if err := Complete(m); !errors.Is(err, ErrScoreMissing) {
		t.Fatalf("expected ErrScoreMissing, got %v", err)
	}

	if err := SetScore(m, SideA, "21"); err != nil {
		t.Fatal(err)
	}
	if err := Complete(m); !errors.Is(err, ErrScoreMissing) {
		t.Fatalf("expected ErrScoreMissing with one score, got %v", err)
	}
	if m.Completed {
		t.Fatal("match must stay open")
	}
}

func TestCompleteRejectsTies(t *testing.T) {
	m := openMatch()
	mustScore(t, m, "19", "19")

	if err := Complete(m); !errors.Is(err, ErrScoresTied) {
		t.Fatalf("expected ErrScoresTied, got %v", err)
	}
	if m.Completed {
		t.Fatal("tied match must never complete")
	}
	if m.WinnerID != "" {
		t.Fatalf("tied match has winner %s", m.WinnerID)
	}
}

func TestCompleteFixesWinner(t *testing.T) {
	m := openMatch()
	mustScore(t, m, "15", "21")

	if err := Complete(m); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if !m.Completed {
		t.Fatal("match not marked completed")
	}
	if m.WinnerID != "team-b" {
		t.Fatalf("expected winner team-b, got %s", m.WinnerID)
	}

	if err := Complete(m); !errors.Is(err, ErrMatchCompleted) {
		t.Fatalf("expected ErrMatchCompleted on double complete, got %v", err)
	}
}

func TestReopenKeepsScoresEditable(t *testing.T) {
	m := openMatch()
	mustScore(t, m, "21", "12")
	if err := Complete(m); err != nil {
		t.Fatal(err)
	}

	if err := Reopen(m); err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if m.Completed {
		t.Fatal("reopened match still completed")
	}
	if m.WinnerID != "" {
		t.Fatal("reopened match keeps a winner")
	}
	if m.ScoreA == nil || *m.ScoreA != 21 || m.ScoreB == nil || *m.ScoreB != 12 {
		t.Fatal("reopen must keep the recorded scores")
	}

	if err := SetScore(m, SideA, "10"); err != nil {
		t.Fatalf("score not editable after reopen: %v", err)
	}
	if err := Reopen(m); !errors.Is(err, ErrMatchNotCompleted) {
		t.Fatalf("expected ErrMatchNotCompleted, got %v", err)
	}
}

func mustScore(t *testing.T, m *models.Match, a, b string) {
	t.Helper()
	if err := SetScore(m, SideA, a); err != nil {
		t.Fatal(err)
	}
	if err := SetScore(m, SideB, b); err != nil {
		t.Fatal(err)
	}
}
