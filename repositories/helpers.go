package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/winzz-app/tournament-server/models"
)

func encodeTournament(tournament *models.Tournament) ([]byte, error) {
	data, err := json.Marshal(tournament)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize tournament %s: %w", tournament.ID, err)
	}
	return data, nil
}

// decodeTournament unpacks a stored snapshot, mapping malformed payloads to
// ErrTournamentCorrupt so callers can surface a retryable error state
// instead of crashing.
func decodeTournament(id string, data []byte) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := json.Unmarshal(data, &tournament); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTournamentCorrupt, id, err)
	}
	if tournament.ID == "" || tournament.Players == nil {
		return nil, fmt.Errorf("%w: %s: missing id or players", ErrTournamentCorrupt, id)
	}
	return &tournament, nil
}
