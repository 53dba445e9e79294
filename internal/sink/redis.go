package sink

import (
	"context"
	"fmt"

	backend "github.com/redis/go-redis/v9"
)

// Redis appends lines to a Redis list (RPUSH) or stream (XADD).
type Redis struct {
	client *backend.Client
	key    string
	stream bool
	maxLen int64
}

// RedisOption defines configuration for Redis.
type RedisOption func(*Redis)

// AsStream writes entries with XADD, each carrying a "line" field.
func AsStream() RedisOption {
	return func(r *Redis) {
		r.stream = true
	}
}

// WithMaxLen trims the list or stream to the newest n entries. Zero means unbounded.
func WithMaxLen(n int64) RedisOption {
	return func(r *Redis) {
		r.maxLen = n
	}
}

// NewRedis creates a sink on an existing client. Close closes the client.
func NewRedis(client *backend.Client, key string, opts ...RedisOption) *Redis {
	r := &Redis{
		client: client,
		key:    key,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DialRedis connects to addr and checks the connection with PING.
func DialRedis(ctx context.Context, addr, key string, opts ...RedisOption) (*Redis, error) {
	client := backend.NewClient(&backend.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return NewRedis(client, key, opts...), nil
}

func (r *Redis) Write(ctx context.Context, line string) error {
	if r.stream {
		args := &backend.XAddArgs{
			Stream: r.key,
			MaxLen: r.maxLen,
			Values: map[string]any{"line": line},
		}
		if err := r.client.XAdd(ctx, args).Err(); err != nil {
			return fmt.Errorf("redis xadd %s: %w", r.key, err)
		}
		return nil
	}

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, r.key, line)
	if r.maxLen > 0 {
		pipe.LTrim(ctx, r.key, -r.maxLen, -1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis rpush %s: %w", r.key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
