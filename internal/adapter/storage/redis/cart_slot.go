package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// CartSlot keeps each profile's cart under its own key, without expiry.
type CartSlot struct {
	client *redis.Client
}

func NewCartSlot(client *redis.Client) *CartSlot {
	return &CartSlot{client: client}
}

func (s *CartSlot) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("reading slot %s: %w", key, err)
	}

	return value, true, nil
}

func (s *CartSlot) Set(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("writing slot %s: %w", key, err)
	}

	return nil
}
