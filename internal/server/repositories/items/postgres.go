package items

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

func (r *PostgresRepository) ListByTrip(ctx context.Context, userID, tripID string) ([]domain.Item, error) {
	query :=
		`SELECT id, trip_id, name, day, type, time, category, transport_kind, address, lat, lng, memo
		 FROM trip_places
		 WHERE trip_id = $1 AND user_id = $2
		 ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, query, tripID, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []domain.Item
	for rows.Next() {
		var (
			it       domain.Item
			lat, lng sql.NullFloat64
		)
		err := rows.Scan(&it.ID, &it.TripID, &it.Name, &it.Day, &it.Type, &it.Time,
			&it.Category, &it.TransportKind, &it.Address, &lat, &lng, &it.Memo)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if lat.Valid && lng.Valid {
			it.SetCoordinates(domain.LatLng{Lat: lat.Float64, Lng: lng.Float64})
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

// Create inserts through a SELECT on trips so that the ownership check and
// the write are one statement.
func (r *PostgresRepository) Create(ctx context.Context, userID string, item *domain.Item) error {
	query :=
		`INSERT INTO trip_places (id, trip_id, user_id, name, day, type, time, category, transport_kind, address, lat, lng, memo)
		 SELECT $1, t.id, t.user_id, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		 FROM trips t
		 WHERE t.id = $2 AND t.user_id = $3`

	res, err := r.db.ExecContext(ctx, query,
		item.ID, item.TripID, userID, item.Name, item.Day, string(item.Type), item.Time,
		string(item.Category), string(item.TransportKind), item.Address, item.Lat, item.Lng, item.Memo)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) Update(ctx context.Context, userID string, item *domain.Item) error {
	query :=
		`UPDATE trip_places
		 SET name = $3, day = $4, type = $5, time = $6, category = $7, transport_kind = $8,
		     address = $9, lat = $10, lng = $11, memo = $12
		 WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query,
		item.ID, userID, item.Name, item.Day, string(item.Type), item.Time,
		string(item.Category), string(item.TransportKind), item.Address, item.Lat, item.Lng, item.Memo)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, itemID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trip_places WHERE id = $1 AND user_id = $2`, itemID, userID)
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
