package services

import (
	"context"

	"github.com/winzz-app/tournament-server/models"
)

// The catalogue is static: badminton is live, everything else is shown as
// coming soon and rejected on selection.
var sportCatalogue = []models.Sport{
	{ID: "badminton", Name: "Badminton", Available: true},
	{ID: "cricket", Name: "Cricket", Available: false},
	{ID: "football", Name: "Football", Available: false},
	{ID: "tennis", Name: "Tennis", Available: false},
	{ID: "tabletennis", Name: "Table Tennis", Available: false},
}

type SportService interface {
	List(ctx context.Context) []models.Sport
	// Select verifies that a sport exists and is open for play.
	Select(ctx context.Context, id string) (*models.Sport, error)
}

type sportService struct{}

func NewSportService() SportService {
	return &sportService{}
}

func (s *sportService) List(ctx context.Context) []models.Sport {
	sports := make([]models.Sport, len(sportCatalogue))
	copy(sports, sportCatalogue)
	return sports
}

func (s *sportService) Select(ctx context.Context, id string) (*models.Sport, error) {
	for _, sport := range sportCatalogue {
		if sport.ID == id {
			if !sport.Available {
				return nil, ErrSportLocked
			}
			selected := sport
			return &selected, nil
		}
	}
	return nil, ErrSportNotFound
}
