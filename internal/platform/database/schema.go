package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

func InitialiseDB(ctx context.Context, db *sqlx.DB) error {
	if err := CreateUsersTable(ctx, db); err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	if err := CreateBookingsTables(ctx, db); err != nil {
		return fmt.Errorf("creating bookings tables: %w", err)
	}

	if err := CreateHistoryIndex(ctx, db); err != nil {
		return fmt.Errorf("creating history index: %w", err)
	}

	return nil
}

func CreateUsersTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		display_name VARCHAR(255) NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);`)
	return err
}

func CreateBookingsTables(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		user_id VARCHAR(255) NOT NULL,
		user_email VARCHAR(255) NOT NULL,
		total_amount NUMERIC(12, 2) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS booking_items (
		booking_id UUID NOT NULL REFERENCES bookings (id),
		position INTEGER NOT NULL,
		event_id VARCHAR(255) NOT NULL,
		title VARCHAR(255) NOT NULL,
		unit_price NUMERIC(12, 2) NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		location VARCHAR(255) NOT NULL DEFAULT '',
		thumbnail VARCHAR(1024) NOT NULL DEFAULT '',
		PRIMARY KEY (booking_id, position)
	);`)
	return err
}

// CreateHistoryIndex adds the index that ordered booking history relies on.
func CreateHistoryIndex(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS bookings_user_created_idx
		ON bookings (user_id, created_at DESC);`)
	return err
}
