package idempotency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"restaurant-booking/pkg/utils"
)

// Store reserves payment idempotency keys in redis. A key is claimed with
// SETNX before any database write; a second attempt with the same key fails
// the reservation and the payment is rejected as a duplicate.
//
// A nil client disables the store: reservations then always succeed, which
// restores the source system's non-idempotent behavior instead of taking
// payments down with redis.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisClient connects to redis; returns nil when the server is not
// reachable so callers can degrade gracefully.
func NewRedisClient(config utils.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}

func NewStore(client *redis.Client, ttl time.Duration, log *zap.Logger) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("component", "idempotency")),
	}
}

// Reserve claims the key. Returns false when the key was already used.
func (s *Store) Reserve(ctx context.Context, key string) (bool, error) {
	if s.client == nil {
		return true, nil
	}

	ok, err := s.client.SetNX(ctx, "idem:"+key, 1, s.ttl).Result()
	if err != nil {
		s.log.Error("Failed to reserve idempotency key", zap.Error(err), zap.String("key", key))
		return false, err
	}
	return ok, nil
}

// Release frees a reserved key so a client may retry after a local failure
// that never reached the gateway.
func (s *Store) Release(ctx context.Context, key string) {
	if s.client == nil {
		return
	}

	if err := s.client.Del(ctx, "idem:"+key).Err(); err != nil {
		s.log.Warn("Failed to release idempotency key", zap.Error(err), zap.String("key", key))
	}
}
