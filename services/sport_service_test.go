package services

import (
	"context"
	"errors"
	"testing"
)

func TestSportCatalogue(t *testing.T) {
	svc := NewSportService()
	sports := svc.List(context.Background())

	if len(sports) != 5 {
		t.Fatalf("catalogue size = %d, want 5", len(sports))
	}
	available := 0
	for _, sport := range sports {
		if sport.Available {
			available++
			if sport.ID != "badminton" {
				t.Errorf("unexpected available sport %q", sport.ID)
			}
		}
	}
	if available != 1 {
		t.Errorf("available sports = %d, want 1", available)
	}
}

func TestSelectSport(t *testing.T) {
	svc := NewSportService()
	ctx := context.Background()

	sport, err := svc.Select(ctx, "badminton")
	if err != nil {
		t.Fatalf("Select badminton: %v", err)
	}
	if sport.Name != "Badminton" {
		t.Errorf("name = %q, want Badminton", sport.Name)
	}

	if _, err := svc.Select(ctx, "cricket"); !errors.Is(err, ErrSportLocked) {
		t.Errorf("Select cricket error = %v, want %v", err, ErrSportLocked)
	}
	if _, err := svc.Select(ctx, "chess"); !errors.Is(err, ErrSportNotFound) {
		t.Errorf("Select chess error = %v, want %v", err, ErrSportNotFound)
	}
}
