package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/winzz-app/tournament-server/models"
)

func snapshot(id string, createdAt time.Time, complete bool) *models.Tournament {
	return &models.Tournament{
		ID:         id,
		Name:       "Test " + id,
		Format:     models.FormatDoubles,
		Players:    []string{"A", "B", "C", "D"},
		IsComplete: complete,
		CreatedAt:  createdAt,
	}
}

func TestMemoryRepositoryRoundTrip(t *testing.T) {
	repo := NewMemoryTournamentRepository()
	ctx := context.Background()

	in := snapshot("t1-abc", time.Now().UTC(), false)
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	out, err := repo.Get(ctx, "t1-abc")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if out.Name != in.Name || len(out.Players) != 4 {
		t.Fatalf("snapshot mangled: %+v", out)
	}

	// Mutating the returned copy must not leak into the stored snapshot.
	out.Name = "changed"
	again, err := repo.Get(ctx, "t1-abc")
	if err != nil {
		t.Fatal(err)
	}
	if again.Name != in.Name {
		t.Fatal("returned snapshot aliases the stored one")
	}
}

func TestMemoryRepositoryGetMissing(t *testing.T) {
	repo := NewMemoryTournamentRepository()
	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, ErrTournamentNotFound) {
		t.Fatalf("expected ErrTournamentNotFound, got %v", err)
	}
}

func TestMemoryRepositoryListOrderAndFilter(t *testing.T) {
	repo := NewMemoryTournamentRepository()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	for _, tc := range []struct {
		id       string
		offset   time.Duration
		complete bool
	}{
		{"old-1111aaaa", 0, false},
		{"done-2222bbbb", time.Hour, true},
		{"new-3333cccc", 2 * time.Hour, false},
	} {
		if err := repo.Save(ctx, snapshot(tc.id, base.Add(tc.offset), tc.complete)); err != nil {
			t.Fatal(err)
		}
	}

	all, err := repo.List(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].ID != "new-3333cccc" || all[2].ID != "old-1111aaaa" {
		t.Fatalf("wrong order: %v", ids(all))
	}

	incomplete, err := repo.List(ctx, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(incomplete) != 2 {
		t.Fatalf("expected 2 incomplete tournaments, got %v", ids(incomplete))
	}
	for _, tr := range incomplete {
		if tr.IsComplete {
			t.Fatalf("completed tournament %s in continue list", tr.ID)
		}
	}
}

func TestMemoryRepositoryDelete(t *testing.T) {
	repo := NewMemoryTournamentRepository()
	ctx := context.Background()

	if err := repo.Save(ctx, snapshot("gone-4444dddd", time.Now(), false)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, "gone-4444dddd"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete(ctx, "gone-4444dddd"); !errors.Is(err, ErrTournamentNotFound) {
		t.Fatalf("expected ErrTournamentNotFound, got %v", err)
	}
}

func TestDecodeTournamentMalformed(t *testing.T) {
	if _, err := decodeTournament("x", []byte(`{not json`)); !errors.Is(err, ErrTournamentCorrupt) {
		t.Fatalf("expected ErrTournamentCorrupt, got %v", err)
	}
	// Missing players array is fatal-to-that-snapshot, not a zero value.
	if _, err := decodeTournament("x", []byte(`{"id":"x","name":"n"}`)); !errors.Is(err, ErrTournamentCorrupt) {
		t.Fatalf("expected ErrTournamentCorrupt for missing players, got %v", err)
	}
}

func ids(ts []*models.Tournament) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}
