package geo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) LoadLocation(ctx context.Context, userID string) (*Location, error) {
	var loc Location
	err := r.db.QueryRow(ctx, `
		SELECT lat, lng, name
		FROM selected_locations
		WHERE user_id = $1
	`, userID).Scan(&loc.Lat, &loc.Lng, &loc.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *PostgresRepository) SaveLocation(ctx context.Context, userID string, loc Location) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO selected_locations (user_id, lat, lng, name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET lat = EXCLUDED.lat, lng = EXCLUDED.lng, name = EXCLUDED.name,
			updated_at = CURRENT_TIMESTAMP
	`, userID, loc.Lat, loc.Lng, loc.Name)
	return err
}
