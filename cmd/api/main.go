package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/srgjo27/ticket_storefront/internal/adapter/catalog"
	"github.com/srgjo27/ticket_storefront/internal/adapter/events"
	"github.com/srgjo27/ticket_storefront/internal/adapter/handler"
	"github.com/srgjo27/ticket_storefront/internal/adapter/repository/postgres"
	storage "github.com/srgjo27/ticket_storefront/internal/adapter/storage/redis"
	"github.com/srgjo27/ticket_storefront/internal/core/services"
	"github.com/srgjo27/ticket_storefront/internal/platform/config"
	"github.com/srgjo27/ticket_storefront/internal/platform/database"
	"github.com/srgjo27/ticket_storefront/internal/platform/logging"
)

func main() {
	cfg := config.Load(".env")
	logger := logging.Init(cfg.LogLevel, cfg.LogJSON)

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Fatal("Service failed")
	}
}

func run(cfg config.Config, logger *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eventCatalog, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	logger.WithField("events", len(eventCatalog.All())).Info("Catalog loaded")

	db, err := database.NewPostgresDB(ctx, cfg.DB, logger)
	if err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Error("Failed to close db connection")
		}
	}()

	if err := database.InitialiseDB(ctx, db); err != nil {
		return fmt.Errorf("initialising db: %w", err)
	}

	logger.Infof("Connecting to Redis at %s...", cfg.RedisAddr)
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.WithError(err).Error("Failed to close redis connection")
		}
	}()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	logger.Info("Redis connected successfully")

	streamPublisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: redisClient,
	}, watermill.NewStdLogger(false, false))
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}
	defer func() {
		if err := streamPublisher.Close(); err != nil {
			logger.WithError(err).Error("Failed to close publisher")
		}
	}()

	bookingRepo := postgres.NewBookingRepository(db)
	userRepo := postgres.NewUserRepository(db)
	cartSlot := storage.NewCartSlot(redisClient)
	bookingEvents := events.NewPublisher(streamPublisher, cfg.BookingTopic)

	storefront := services.NewStorefront(cartSlot, cfg.ProfileIdleTime, logger)
	defer storefront.Close()

	checkouts := services.NewCheckoutRegistry(bookingRepo, bookingEvents, cfg.CheckoutRetention, logger)

	profileSecret := []byte(cfg.ProfileSecret)
	if len(profileSecret) == 0 {
		logger.Warn("PROFILE_SECRET not set, profile cookies will not survive a restart")
		profileSecret = make([]byte, 32)
		if _, err := rand.Read(profileSecret); err != nil {
			return fmt.Errorf("generating profile secret: %w", err)
		}
	}

	router := handler.NewRouter(handler.Deps{
		Storefront: storefront,
		Catalog:    services.NewCatalogService(eventCatalog),
		Auth:       services.NewAuthService(userRepo, logger),
		Checkouts:  checkouts,
		History:    services.NewHistoryService(bookingRepo, logger),
		Logger:     logger,

		ProfileSecret: profileSecret,
	})

	g, runCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		checkouts.RunBackgroundCleanup(runCtx)
		return nil
	})

	g.Go(func() error {
		storefront.RunBackgroundCleanup(runCtx)
		return nil
	})

	g.Go(func() error {
		logger.Infof("Server starting on %s", cfg.HTTPAddr)
		err := router.Start(cfg.HTTPAddr)
		if err != nil && !errors.Is(err, handler.ErrServerClosed) {
			return fmt.Errorf("starting http server: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-runCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		logger.Info("Shutting down server...")
		if err := router.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Server exiting")

	return nil
}
