package export

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/graphsketch/pkg/graph"
)

// RedisClient is the subset of *redis.Client used by [RedisPublisher].
type RedisClient interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Close() error
}

// RedisPublisher publishes each snapshot on Channel and, when Key is set,
// stores it under Key. Either may be empty but not both.
type RedisPublisher struct {
	client  RedisClient
	Channel string
	Key     string
}

// RedisOptions configures [NewRedisPublisher].
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Channel  string
	Key      string
}

// NewRedisPublisher connects to Redis and checks the connection with PING.
func NewRedisPublisher(ctx context.Context, opts RedisOptions) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis %s: %w", opts.Addr, err)
	}
	return NewRedisPublisherWithClient(client, opts.Channel, opts.Key), nil
}

// NewRedisPublisherWithClient wraps an existing client.
func NewRedisPublisherWithClient(client RedisClient, channel, key string) *RedisPublisher {
	return &RedisPublisher{client: client, Channel: channel, Key: key}
}

// Publish sends s as JSON.
func (p *RedisPublisher) Publish(ctx context.Context, s graph.Snapshot) error {
	data, err := graph.MarshalSnapshot(s)
	if err != nil {
		return err
	}
	if p.Key != "" {
		if err := p.client.Set(ctx, p.Key, data, 0).Err(); err != nil {
			return fmt.Errorf("redis set %s: %w", p.Key, err)
		}
	}
	if p.Channel != "" {
		if err := p.client.Publish(ctx, p.Channel, data).Err(); err != nil {
			return fmt.Errorf("redis publish %s: %w", p.Channel, err)
		}
	}
	return nil
}

// Close closes the underlying client.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
