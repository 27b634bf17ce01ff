// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"meditrip/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (weather snapshots, listings).
	CacheClient *redis.Client
	// RatesCacheClient is the dedicated client for exchange-rate caching.
	RatesCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitRatesCache initializes the Redis client for exchange-rate caching.
func InitRatesCache() {
	RatesCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisRatesDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := RatesCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Rates Cache): %v", err)
	}
}

// GetRatesCacheClient returns the Redis client for exchange-rate caching.
func GetRatesCacheClient() *redis.Client {
	if RatesCacheClient == nil {
		InitRatesCache()
	}
	return RatesCacheClient
}
