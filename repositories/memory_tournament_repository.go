package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/winzz-app/tournament-server/models"
)

type memoryTournamentRepository struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewMemoryTournamentRepository returns a repository holding snapshots in
// process memory. Used when no database is configured, and in tests.
// Snapshots go through the same JSON round-trip as the SQL repositories so
// aliasing bugs surface the same way everywhere.
func NewMemoryTournamentRepository() TournamentRepository {
	return &memoryTournamentRepository{snapshots: make(map[string][]byte)}
}

func (r *memoryTournamentRepository) Save(_ context.Context, tournament *models.Tournament) error {
	data, err := encodeTournament(tournament)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[tournament.ID] = data
	return nil
}

func (r *memoryTournamentRepository) Get(_ context.Context, id string) (*models.Tournament, error) {
	r.mu.RLock()
	data, ok := r.snapshots[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrTournamentNotFound
	}
	return decodeTournament(id, data)
}

func (r *memoryTournamentRepository) List(_ context.Context, onlyIncomplete bool) ([]*models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tournaments := make([]*models.Tournament, 0, len(r.snapshots))
	for id, data := range r.snapshots {
		tournament, err := decodeTournament(id, data)
		if err != nil {
			return nil, err
		}
		if onlyIncomplete && tournament.IsComplete {
			continue
		}
		tournaments = append(tournaments, tournament)
	}
	sort.Slice(tournaments, func(i, j int) bool {
		return tournaments[i].CreatedAt.After(tournaments[j].CreatedAt)
	})
	return tournaments, nil
}

func (r *memoryTournamentRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.snapshots[id]; !ok {
		return ErrTournamentNotFound
	}
	delete(r.snapshots, id)
	return nil
}
