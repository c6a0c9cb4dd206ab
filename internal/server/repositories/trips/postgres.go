package trips

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/seungyeonleeee/triply/internal/common"
	"github.com/seungyeonleeee/triply/internal/dbx"
	"github.com/seungyeonleeee/triply/internal/domain"
)

const selectColumns = `id, user_id, title, start_date, end_date, companions, travel_styles, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func dateArg(d *domain.Date) any {
	if d == nil || d.IsZero() {
		return nil
	}
	return d.Time()
}

func dateFrom(t sql.NullTime) *domain.Date {
	if !t.Valid {
		return nil
	}
	d := domain.DateOf(t.Time)
	return &d
}

func stylesArg(styles []domain.TravelStyle) (string, error) {
	if styles == nil {
		styles = []domain.TravelStyle{}
	}
	b, err := json.Marshal(styles)
	return string(b), err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrip(s scanner) (*domain.Trip, error) {
	var (
		t          domain.Trip
		start, end sql.NullTime
		styles     []byte
	)
	if err := s.Scan(&t.ID, &t.UserID, &t.Title, &start, &end, &t.Companions, &styles, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.StartDate, t.EndDate = dateFrom(start), dateFrom(end)
	if len(styles) > 0 {
		if err := json.Unmarshal(styles, &t.TravelStyles); err != nil {
			return nil, fmt.Errorf("decode travel styles: %w", err)
		}
	}
	return &t, nil
}

func (r *PostgresRepository) Create(ctx context.Context, trip *domain.Trip) error {
	styles, err := stylesArg(trip.TravelStyles)
	if err != nil {
		return err
	}

	query :=
		`INSERT INTO trips (id, user_id, title, start_date, end_date, companions, travel_styles)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`

	err = r.db.QueryRowContext(ctx, query,
		trip.ID, trip.UserID, trip.Title, dateArg(trip.StartDate), dateArg(trip.EndDate), trip.Companions, styles,
	).Scan(&trip.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, tripID string) (*domain.Trip, error) {
	query := `SELECT ` + selectColumns + ` FROM trips WHERE id = $1 AND user_id = $2`

	t, err := scanTrip(r.db.QueryRowContext(ctx, query, tripID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]domain.Trip, error) {
	query := `SELECT ` + selectColumns + ` FROM trips WHERE user_id = $1 ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Update(ctx context.Context, trip *domain.Trip) error {
	styles, err := stylesArg(trip.TravelStyles)
	if err != nil {
		return err
	}

	query :=
		`UPDATE trips
		 SET title = $3, start_date = $4, end_date = $5, companions = $6, travel_styles = $7
		 WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query,
		trip.ID, trip.UserID, trip.Title, dateArg(trip.StartDate), dateArg(trip.EndDate), trip.Companions, styles)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, tripID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = $1 AND user_id = $2`, tripID, userID)
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
