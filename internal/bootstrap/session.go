package bootstrap

import (
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/damataprodutora/portfolio-backend/internal/session"
)

// BuildSessionStore picks the session backend. With no Redis address the
// sessions live in process memory, which is all a single-instance deployment
// needs; setting REDIS_ADDR moves them to Redis.
func BuildSessionStore(redisAddr string, ttl time.Duration) session.Store {
	if redisAddr == "" {
		log.Println("Sessions: in-memory store")
		return session.NewMemoryStore(ttl)
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	log.Printf("Sessions: redis store at %s", redisAddr)
	return session.NewRedisStore(client, ttl)
}
