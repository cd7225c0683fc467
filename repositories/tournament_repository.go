package repositories

import (
	"context"
	"errors"

	"github.com/winzz-app/tournament-server/models"
)

var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrTournamentCorrupt  = errors.New("stored tournament data is malformed")
)

// TournamentRepository persists tournament snapshots keyed by their
// identifier. Save is an upsert of the whole serialized snapshot; partial
// updates do not exist at this layer.
type TournamentRepository interface {
	Save(ctx context.Context, tournament *models.Tournament) error
	Get(ctx context.Context, id string) (*models.Tournament, error)
	// List returns snapshots sorted most-recent-first by creation time,
	// optionally filtered to incomplete tournaments (the "continue" list).
	List(ctx context.Context, onlyIncomplete bool) ([]*models.Tournament, error)
	Delete(ctx context.Context, id string) error
}
