package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

var _ model.SnapshotStore = (*SnapshotRepository)(nil)

// SnapshotRepository keeps one row per snapshot key.
type SnapshotRepository struct {
	db *Connection
}

func NewSnapshotRepository(db *Connection) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	query := `SELECT data FROM snapshots WHERE key = $1`

	err := r.db.QueryRowContext(ctx, query, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return data, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, key string, data []byte) error {
	query := `INSERT INTO snapshots (key, data, updated_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query, key, data)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

func (r *SnapshotRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM snapshots WHERE key = $1`

	_, err := r.db.ExecContext(ctx, query, key)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}
