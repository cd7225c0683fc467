package repositories

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestSQLiteRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteTournamentRepository(ctx, filepath.Join(t.TempDir(), "tournaments.db"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	base := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	if err := repo.Save(ctx, snapshot("first-aaaa1111", base, false)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := repo.Save(ctx, snapshot("second-bbbb2222", base.Add(time.Hour), true)); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(ctx, "first-aaaa1111")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Test first-aaaa1111" || len(got.Players) != 4 {
		t.Fatalf("snapshot mangled: %+v", got)
	}

	// Upsert overwrites in place.
	updated := snapshot("first-aaaa1111", base, true)
	updated.Name = "Renamed"
	if err := repo.Save(ctx, updated); err != nil {
		t.Fatal(err)
	}
	got, err = repo.Get(ctx, "first-aaaa1111")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Renamed" || !got.IsComplete {
		t.Fatalf("upsert not applied: %+v", got)
	}

	incomplete, err := repo.List(ctx, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(incomplete) != 0 {
		t.Fatalf("expected no incomplete tournaments, got %v", ids(incomplete))
	}

	all, err := repo.List(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].ID != "second-bbbb2222" {
		t.Fatalf("wrong order: %v", ids(all))
	}

	if err := repo.Delete(ctx, "second-bbbb2222"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Get(ctx, "second-bbbb2222"); !errors.Is(err, ErrTournamentNotFound) {
		t.Fatalf("expected ErrTournamentNotFound, got %v", err)
	}
}
