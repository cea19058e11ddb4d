package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dlevchenko/airagency/config"
	"github.com/dlevchenko/airagency/internal/domain"
)

type RedisCache struct {
	client  *redis.Client
	listTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, listTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:  redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		listTTL: listTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	var flights []domain.Flight
	if err := c.getList(ctx, flightsKey, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	return c.setList(ctx, flightsKey, flights)
}

// InvalidateFlights drops the cached flight list after a create or delete.
func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey).Err()
}

func (c *RedisCache) GetCustomers(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	if err := c.getList(ctx, customersKey, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *RedisCache) SetCustomers(ctx context.Context, customers []domain.Customer) error {
	return c.setList(ctx, customersKey, customers)
}

func (c *RedisCache) InvalidateCustomers(ctx context.Context) error {
	return c.client.Del(ctx, customersKey).Err()
}

// getList leaves dst untouched on a cache miss.
func (c *RedisCache) getList(ctx context.Context, key string, dst interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, dst)
}

func (c *RedisCache) setList(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.listTTL).Err()
}

const (
	flightsKey   = "cache:flights"
	customersKey = "cache:customers"
)
