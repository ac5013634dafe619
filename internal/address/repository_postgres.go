package address

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

const addressColumns = `
	id, user_id, location_type, state, city, address_line, street,
	building, floor_number, apartment_number, department_number, house,
	mobile, phone, instructions
`

func scanAddresses(rows pgx.Rows) ([]Address, error) {
	defer rows.Close()

	var out []Address
	for rows.Next() {
		var a Address
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.LocationType,
			&a.State,
			&a.City,
			&a.AddressLine,
			&a.Street,
			&a.Building,
			&a.FloorNumber,
			&a.ApartmentNumber,
			&a.DepartmentNumber,
			&a.House,
			&a.Mobile,
			&a.Phone,
			&a.Instructions,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]Address, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+addressColumns+`
		FROM addresses
		WHERE user_id = $1
		ORDER BY position
	`, userID)
	if err != nil {
		return nil, err
	}
	return scanAddresses(rows)
}

func (r *PostgresRepository) Create(ctx context.Context, addr *Address) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO addresses (
			id, user_id, location_type, state, city, address_line, street,
			building, floor_number, apartment_number, department_number, house,
			mobile, phone, instructions
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`,
		addr.ID, addr.UserID, addr.LocationType, addr.State, addr.City,
		addr.AddressLine, addr.Street, addr.Building, addr.FloorNumber,
		addr.ApartmentNumber, addr.DepartmentNumber, addr.House,
		addr.Mobile, addr.Phone, addr.Instructions,
	)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, addr Address) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE addresses
		SET location_type = $3, state = $4, city = $5, address_line = $6,
			street = $7, building = $8, floor_number = $9,
			apartment_number = $10, department_number = $11, house = $12,
			mobile = $13, phone = $14, instructions = $15
		WHERE id = $1 AND user_id = $2
	`,
		addr.ID, addr.UserID, addr.LocationType, addr.State, addr.City,
		addr.AddressLine, addr.Street, addr.Building, addr.FloorNumber,
		addr.ApartmentNumber, addr.DepartmentNumber, addr.House,
		addr.Mobile, addr.Phone, addr.Instructions,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM addresses
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
