package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to Redis for rate limiting. A nil client is returned when
// Redis is not configured or unreachable; callers must treat that as "limiter off".
func InitRedis(addr string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARNING: failed to connect to Redis at %s: %v. Rate limiting disabled.", addr, err)
		return nil
	}

	log.Println("Redis connected:", addr)
	return client
}
