// internal/notify/redis.go

package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// RedisPublisher publishes events on a per-user pub/sub channel so
// other services (push delivery, web frontends) can subscribe.
type RedisPublisher struct {
	client *redis.Client
	prefix string
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		client: client,
		prefix: "amora:events",
	}
}

// Channel returns the pub/sub channel name for a user
func (p *RedisPublisher) Channel(userID int64) string {
	return fmt.Sprintf("%s:%d", p.prefix, userID)
}

func (p *RedisPublisher) Notify(ctx context.Context, userID int64, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("notify: failed to marshal event for user %d: %v", userID, err)
		return
	}

	if err := p.client.Publish(ctx, p.Channel(userID), payload).Err(); err != nil {
		log.Printf("notify: redis publish failed for user %d: %v", userID, err)
	}
}
