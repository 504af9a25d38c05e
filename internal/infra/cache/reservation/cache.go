package reservation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Abdo0422/GestionReservation/internal/calendar"
	"github.com/Abdo0422/GestionReservation/internal/domain"
)

const keyPrefix = "calendar:reservations"

// Cache кэш бронирований отдела за месяц в Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кэш поверх готового клиента Redis
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Connect создает клиент Redis и проверяет соединение
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: Connect - ping %s: %v", ErrCache, addr, err)
	}

	return client, nil
}

// Key ключ бронирований отдела за месяц
func Key(department string, month calendar.Cursor) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, department, month)
}

// Get возвращает бронирования отдела за месяц или ErrCacheMiss
func (c *Cache) Get(ctx context.Context, department string, month calendar.Cursor) ([]*domain.Reservation, error) {
	key := Key(department, month)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("%w: Get - key %s: %v", ErrCache, key, err)
	}

	var cached []cachedReservation
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("%w: Get - key %s: %v", ErrDecode, key, err)
	}

	return toDomain(cached), nil
}

// Set сохраняет бронирования отдела за месяц на время TTL
func (c *Cache) Set(ctx context.Context, department string, month calendar.Cursor, reservations []*domain.Reservation) error {
	key := Key(department, month)

	data, err := json.Marshal(fromDomain(reservations))
	if err != nil {
		return fmt.Errorf("%w: Set - key %s: %v", ErrEncode, key, err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - key %s: %v", ErrCache, key, err)
	}

	return nil
}

// Delete удаляет бронирования отдела за месяц (после смены статуса)
func (c *Cache) Delete(ctx context.Context, department string, month calendar.Cursor) error {
	key := Key(department, month)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: Delete - key %s: %v", ErrCache, key, err)
	}

	return nil
}
