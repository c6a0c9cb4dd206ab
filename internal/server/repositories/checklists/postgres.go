package checklists

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/seungyeonleeee/triply/internal/common"
	"github.com/seungyeonleeee/triply/internal/dbx"
	"github.com/seungyeonleeee/triply/internal/domain"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByTrip(ctx context.Context, userID, tripID string) ([]domain.ChecklistItem, error) {
	query :=
		`SELECT id, trip_id, label, checked, category
		 FROM trip_checklists
		 WHERE trip_id = $1 AND user_id = $2
		 ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, query, tripID, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []domain.ChecklistItem
	for rows.Next() {
		var c domain.ChecklistItem
		if err := rows.Scan(&c.ID, &c.TripID, &c.Label, &c.Checked, &c.Category); err != nil {
			return nil, fmt.Errorf("scan checklist item: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Create(ctx context.Context, userID string, item *domain.ChecklistItem) error {
	query :=
		`INSERT INTO trip_checklists (id, trip_id, user_id, label, checked, category)
		 SELECT $1, t.id, t.user_id, $4, $5, $6
		 FROM trips t
		 WHERE t.id = $2 AND t.user_id = $3`

	res, err := r.db.ExecContext(ctx, query, item.ID, item.TripID, userID, item.Label, item.Checked, item.Category)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) SetChecked(ctx context.Context, userID, itemID string, checked bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE trip_checklists SET checked = $3 WHERE id = $1 AND user_id = $2`, itemID, userID, checked)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, itemID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trip_checklists WHERE id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
