package data

import (
	"log"

	"github.com/redis/go-redis/v9"
)

// MustRedis connects to the counter store or exits. Only call it when a
// counter store URL is actually configured; the quota governor runs without
// one.
func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}
