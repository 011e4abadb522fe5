package postgres_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/srgjo27/ticket_storefront/internal/platform/database"
)

var db *sqlx.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	var err error
	db, err = sqlx.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to db: %s", err)
	}

	if err := database.InitialiseDB(context.Background(), db); err != nil {
		log.Fatalf("failed to initialise db: %s", err)
	}

	code := m.Run()

	if err := db.Close(); err != nil {
		log.Fatalf("failed to close db connection: %s", err)
	}

	os.Exit(code)
}

func requireDB(t *testing.T) *sqlx.DB {
	t.Helper()

	if db == nil {
		t.Skip("POSTGRES_URL not set")
	}

	return db
}
