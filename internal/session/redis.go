package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/payroll-admin-console/internal/config"
)

// RedisStore хранит токен в redis под фиксированным ключом.
type RedisStore struct {
	Db  *redis.Client
	key string
}

// NewRedisStore подключается к redis и проверяет соединение.
func NewRedisStore(ctx context.Context, cfg config.RedisConnection, key string) (*RedisStore, error) {
	const op = "session.NewRedisStore"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{Db: db, key: key}, nil
}

func (r *RedisStore) Load(ctx context.Context) (string, error) {
	const op = "session.RedisStore.Load"
	val, err := r.Db.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return val, nil
}

// Save сохраняет токен без TTL, срок жизни определяет бэкенд.
func (r *RedisStore) Save(ctx context.Context, token string) error {
	const op = "session.RedisStore.Save"
	if err := r.Db.Set(ctx, r.key, token, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	const op = "session.RedisStore.Clear"
	if err := r.Db.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает соединение с redis.
func (r *RedisStore) Close() error {
	return r.Db.Close()
}
