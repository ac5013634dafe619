package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// SHOPS
	// -------------------------------
	shopTableSQL := `
		CREATE TABLE IF NOT EXISTS shops (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			area_id VARCHAR(100) NOT NULL DEFAULT '',
			owner_id UUID,
			rating NUMERIC(3,1) NOT NULL DEFAULT 0,
			rating_label VARCHAR(50) NOT NULL DEFAULT '',
			delivery_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			free_delivery BOOLEAN NOT NULL DEFAULT FALSE,
			delivery_time_minutes INT NOT NULL DEFAULT 0,
			min_order_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			discount_percent NUMERIC(5,2) NOT NULL DEFAULT 0,
			image_urls TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, shopTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// CARTS (one serialized item list per user, plus summary cache)
	// -------------------------------
	cartTableSQL := `
		CREATE TABLE IF NOT EXISTS carts (
			user_id VARCHAR(100) PRIMARY KEY,
			items TEXT NOT NULL DEFAULT '[]',
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, cartTableSQL); err != nil {
		return err
	}

	cartSummarySQL := `
		CREATE TABLE IF NOT EXISTS cart_summaries (
			user_id VARCHAR(100) PRIMARY KEY,
			summary TEXT NOT NULL DEFAULT '{}',
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, cartSummarySQL); err != nil {
		return err
	}

	clickedProductsSQL := `
		CREATE TABLE IF NOT EXISTS clicked_products (
			user_id VARCHAR(100) NOT NULL,
			product_id VARCHAR(100) NOT NULL,
			PRIMARY KEY (user_id, product_id)
		)
	`
	if _, err := db.Exec(ctx, clickedProductsSQL); err != nil {
		return err
	}

	// -------------------------------
	// SELECTED LOCATIONS (current map pick, one row per user)
	// -------------------------------
	selectedLocationSQL := `
		CREATE TABLE IF NOT EXISTS selected_locations (
			user_id VARCHAR(100) PRIMARY KEY,
			lat DOUBLE PRECISION,
			lng DOUBLE PRECISION,
			name TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, selectedLocationSQL); err != nil {
		return err
	}

	// -------------------------------
	// SAVED ADDRESSES
	// -------------------------------
	addressTableSQL := `
		CREATE TABLE IF NOT EXISTS addresses (
			id UUID PRIMARY KEY,
			user_id VARCHAR(100) NOT NULL,
			position SERIAL,
			state VARCHAR(100) NOT NULL,
			city VARCHAR(100) NOT NULL DEFAULT '',
			address_line TEXT NOT NULL DEFAULT '',
			street VARCHAR(255) NOT NULL DEFAULT '',
			building VARCHAR(50) NOT NULL DEFAULT '',
			floor_number VARCHAR(50) NOT NULL DEFAULT '',
			apartment_number VARCHAR(50) NOT NULL DEFAULT '',
			department_number VARCHAR(50) NOT NULL DEFAULT '',
			house VARCHAR(50) NOT NULL DEFAULT '',
			mobile VARCHAR(50) NOT NULL DEFAULT '',
			phone VARCHAR(50) NOT NULL DEFAULT '',
			instructions TEXT NOT NULL DEFAULT '',
			location_type VARCHAR(20) NOT NULL DEFAULT 'apartment',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, addressTableSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
