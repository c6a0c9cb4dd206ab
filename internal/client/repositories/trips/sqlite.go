package trips

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/seungyeonleeee/triply/internal/common"
	"github.com/seungyeonleeee/triply/internal/dbx"
)

// SQLiteRepository implements Repository over a *sql.DB or *sql.Tx.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, c CachedTrip) error {
	query := `INSERT INTO trips (id, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, c.ID, c.Payload, c.UpdatedAt.UTC()); err != nil {
		return fmt.Errorf("save trip %s: %w", c.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*CachedTrip, error) {
	c := &CachedTrip{}
	err := r.db.QueryRowContext(ctx, `SELECT id, payload, updated_at FROM trips WHERE id = ?`, id).
		Scan(&c.ID, &c.Payload, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get trip %s: %w", id, err)
	}
	return c, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]CachedTrip, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, payload, updated_at FROM trips ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()

	var result []CachedTrip
	for rows.Next() {
		var c CachedTrip
		if err := rows.Scan(&c.ID, &c.Payload, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return result, nil
}

// Delete is a no-op for an id that is not cached.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete trip %s: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM trips`); err != nil {
		return fmt.Errorf("clear trips: %w", err)
	}
	return nil
}
