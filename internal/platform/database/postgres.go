package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

func (c Config) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

const (
	maxRetries    = 10
	retryInterval = 2 * time.Second
)

func NewPostgresDB(ctx context.Context, cfg Config, logger logrus.FieldLogger) (*sqlx.DB, error) {
	var db *sqlx.DB
	var err error

	for i := 1; i <= maxRetries; i++ {
		logger.Infof("Connecting to database (attempt %d/%d)...", i, maxRetries)
		db, err = sqlx.ConnectContext(ctx, "postgres", cfg.URL())
		if err == nil {
			logger.Info("Database connected successfully")

			db.SetMaxOpenConns(25)
			db.SetMaxIdleConns(25)
			db.SetConnMaxLifetime(5 * time.Minute)

			return db, nil
		}

		logger.WithError(err).Warn("Database not ready yet")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}

	return nil, fmt.Errorf("connecting to database: %w", err)
}
