package shop

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const shopColumns = `
	id, name, area_id, COALESCE(owner_id::text, ''), rating, rating_label,
	delivery_fee, free_delivery, delivery_time_minutes,
	min_order_amount, discount_percent, image_urls, created_at
`

func scanShops(rows pgx.Rows) ([]Shop, error) {
	defer rows.Close()

	var shops []Shop
	for rows.Next() {
		var s Shop
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.AreaID,
			&s.OwnerID,
			&s.Rating,
			&s.RatingLabel,
			&s.DeliveryFee,
			&s.FreeDelivery,
			&s.DeliveryTimeMinutes,
			&s.MinOrderAmount,
			&s.DiscountPercent,
			&s.ImageURLs,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		shops = append(shops, s)
	}
	return shops, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, shop *Shop) error {
	query := `
		INSERT INTO shops (
			id, name, area_id, owner_id, rating, rating_label,
			delivery_fee, free_delivery, delivery_time_minutes,
			min_order_amount, discount_percent, image_urls
		)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`
	return r.db.QueryRow(ctx, query,
		shop.ID,
		shop.Name,
		shop.AreaID,
		shop.OwnerID,
		shop.Rating,
		shop.RatingLabel,
		shop.DeliveryFee,
		shop.FreeDelivery,
		shop.DeliveryTimeMinutes,
		shop.MinOrderAmount,
		shop.DiscountPercent,
		shop.ImageURLs,
	).Scan(&shop.CreatedAt)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]Shop, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+shopColumns+`
		FROM shops
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	return scanShops(rows)
}

func (r *PostgresRepository) ListByArea(ctx context.Context, areaID string) ([]Shop, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+shopColumns+`
		FROM shops
		WHERE area_id = $1
		ORDER BY created_at
	`, areaID)
	if err != nil {
		return nil, err
	}
	return scanShops(rows)
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]Shop, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+shopColumns+`
		FROM shops
		WHERE owner_id = $1::uuid
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	return scanShops(rows)
}

func (r *PostgresRepository) GetByIDs(ctx context.Context, ids []string) ([]Shop, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+shopColumns+`
		FROM shops
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	return scanShops(rows)
}

func (r *PostgresRepository) AddImages(ctx context.Context, shopID string, urls []string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE shops
		SET image_urls = image_urls || $1
		WHERE id = $2
	`, urls, shopID)
	return err
}

func (r *PostgresRepository) IsOwner(ctx context.Context, shopID, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM shops
			WHERE id = $1 AND owner_id = $2::uuid
		)
	`, shopID, userID).Scan(&exists)
	return exists, err
}
