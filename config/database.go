package config

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var DB *pgxpool.Pool

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		roll_number TEXT NOT NULL UNIQUE,
		dob TIMESTAMPTZ,
		phone TEXT NOT NULL DEFAULT '',
		verified BOOLEAN NOT NULL DEFAULT FALSE,
		verification_pin TEXT,
		pin_expiry TIMESTAMPTZ,
		role TEXT NOT NULL DEFAULT 'student',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		order_id TEXT NOT NULL UNIQUE,
		student_email TEXT NOT NULL,
		items JSONB NOT NULL,
		total_amount NUMERIC(10,2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		payment_status TEXT NOT NULL DEFAULT 'pending',
		delivery_time TIMESTAMPTZ,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id SERIAL PRIMARY KEY,
		external_id INTEGER NOT NULL UNIQUE,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		available BOOLEAN NOT NULL DEFAULT TRUE,
		preparation_time INTEGER NOT NULL DEFAULT 15,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_student_email ON orders (student_email)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status)`,
	`CREATE INDEX IF NOT EXISTS idx_menu_items_category ON menu_items (category)`,
}

func ConnectDB() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		AppConfig.DBHost,
		AppConfig.DBPort,
		AppConfig.DBUser,
		AppConfig.DBPassword,
		AppConfig.DBName,
		AppConfig.DBSSLMode,
	)

	var err error
	DB, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("Unable to create connection pool: %v\n", err)
	}

	if err = DB.Ping(context.Background()); err != nil {
		log.Fatalf("Unable to ping database: %v\n", err)
	}

	if err = initSchema(context.Background()); err != nil {
		log.Fatalf("Unable to initialize schema: %v\n", err)
	}

	log.Println("Database connected successfully")
}

func initSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := DB.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Println("Database connection closed")
	}
}
