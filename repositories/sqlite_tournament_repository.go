package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/winzz-app/tournament-server/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tournaments (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	is_complete INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL,
	data        TEXT NOT NULL
)`

type sqliteTournamentRepository struct {
	db *sql.DB
}

// NewSQLiteTournamentRepository opens (or creates) the SQLite file at path
// and returns a repository backed by it. Suitable for single-node setups
// without a Postgres instance.
func NewSQLiteTournamentRepository(ctx context.Context, path string) (TournamentRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	// modernc sqlite is not safe for concurrent writers on one connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure tournaments table: %w", err)
	}
	return &sqliteTournamentRepository{db: db}, nil
}

func (r *sqliteTournamentRepository) Save(ctx context.Context, tournament *models.Tournament) error {
	data, err := encodeTournament(tournament)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO tournaments (id, name, is_complete, created_at, data)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			is_complete = excluded.is_complete,
			data = excluded.data`
	_, err = r.db.ExecContext(ctx, query,
		tournament.ID, tournament.Name, boolToInt(tournament.IsComplete),
		tournament.CreatedAt.UTC().Format(time.RFC3339Nano), data)
	if err != nil {
		return fmt.Errorf("failed to save tournament %s: %w", tournament.ID, err)
	}
	return nil
}

func (r *sqliteTournamentRepository) Get(ctx context.Context, id string) (*models.Tournament, error) {
	var data []byte
	if err := r.db.QueryRowContext(ctx, `SELECT data FROM tournaments WHERE id = ?`, id).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return decodeTournament(id, data)
}

func (r *sqliteTournamentRepository) List(ctx context.Context, onlyIncomplete bool) ([]*models.Tournament, error) {
	query := `SELECT id, data FROM tournaments`
	if onlyIncomplete {
		query += ` WHERE is_complete = 0`
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

func (r *sqliteTournamentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tournaments WHERE id = ?`, id)
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

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
