package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/winzz-app/tournament-server/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS tournaments (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	is_complete BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL,
	data        JSONB NOT NULL
)`

type postgresTournamentRepository struct {
	db *sql.DB
}

// NewPostgresTournamentRepository creates the snapshot table if needed and
// returns a Postgres-backed repository.
func NewPostgresTournamentRepository(ctx context.Context, db *sql.DB) (TournamentRepository, error) {
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("failed to ensure tournaments table: %w", err)
	}
	return &postgresTournamentRepository{db: db}, nil
}

func (r *postgresTournamentRepository) Save(ctx context.Context, tournament *models.Tournament) error {
	data, err := encodeTournament(tournament)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO tournaments (id, name, is_complete, created_at, data)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			is_complete = EXCLUDED.is_complete,
			data = EXCLUDED.data`
	_, err = r.db.ExecContext(ctx, query,
		tournament.ID, tournament.Name, tournament.IsComplete, tournament.CreatedAt, data)
	if err != nil {
		return fmt.Errorf("failed to save tournament %s: %w", tournament.ID, err)
	}
	return nil
}

func (r *postgresTournamentRepository) Get(ctx context.Context, id string) (*models.Tournament, error) {
	var data []byte
	query := `SELECT data FROM tournaments WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return decodeTournament(id, data)
}

func (r *postgresTournamentRepository) List(ctx context.Context, onlyIncomplete bool) ([]*models.Tournament, error) {
	query := `SELECT id, data FROM tournaments`
	if onlyIncomplete {
		query += ` WHERE is_complete = FALSE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]*models.Tournament, 0)
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, err
		}
		tournament, err := decodeTournament(id, data)
		if err != nil {
			return nil, err
		}
		tournaments = append(tournaments, tournament)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *postgresTournamentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTournamentNotFound
	}
	return nil
}
