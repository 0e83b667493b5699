// Package cache is an optional TTL-bounded cache of consolidated search
// results, keyed by the search request. The pipeline itself is stateless;
// this sits in front of it at the transport layer.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aeropoints/awardsearch/internal/models"
)

type Cache interface {
	Get(ctx context.Context, req models.SearchRequest) ([]models.ConsolidatedFlight, bool)
	Set(ctx context.Context, req models.SearchRequest, flights []models.ConsolidatedFlight) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host: "localhost",
		Port: "6379",
		TTL:  5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, req models.SearchRequest) ([]models.ConsolidatedFlight, bool) {
	data, err := c.client.Get(ctx, generateKey(req)).Bytes()
	if err != nil {
		return nil, false
	}

	var flights []models.ConsolidatedFlight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, false
	}
	return flights, true
}

func (c *RedisCache) Set(ctx context.Context, req models.SearchRequest, flights []models.ConsolidatedFlight) error {
	data, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, generateKey(req), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, req models.SearchRequest) ([]models.ConsolidatedFlight, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, req models.SearchRequest, flights []models.ConsolidatedFlight) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

func generateKey(req models.SearchRequest) string {
	keyData := struct {
		From           string
		To             string
		Date           string
		CabinClass     string
		Passengers     int
		LoyaltyProgram string
	}{
		From:           req.From,
		To:             req.To,
		Date:           req.Date,
		CabinClass:     req.CabinClass,
		Passengers:     req.Passengers,
		LoyaltyProgram: req.LoyaltyProgram,
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "award:" + hex.EncodeToString(hash[:])
}
