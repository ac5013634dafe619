package cart

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

func (r *PostgresRepository) LoadCart(ctx context.Context, userID string) (string, error) {
	var data string
	err := r.db.QueryRow(ctx, `
		SELECT items FROM carts WHERE user_id = $1
	`, userID).Scan(&data)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return data, nil
}

func (r *PostgresRepository) SaveCart(ctx context.Context, userID, data string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO carts (user_id, items, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET items = EXCLUDED.items, updated_at = NOW()
	`, userID, data)
	return err
}

func (r *PostgresRepository) LoadSummary(ctx context.Context, userID string) (string, error) {
	var data string
	err := r.db.QueryRow(ctx, `
		SELECT summary FROM cart_summaries WHERE user_id = $1
	`, userID).Scan(&data)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return data, nil
}

func (r *PostgresRepository) SaveSummary(ctx context.Context, userID, data string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO cart_summaries (user_id, summary, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET summary = EXCLUDED.summary, updated_at = NOW()
	`, userID, data)
	return err
}

func (r *PostgresRepository) MarkClicked(ctx context.Context, userID, productID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO clicked_products (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, productID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
