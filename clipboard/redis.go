// This file is part of m64edit.
//
// m64edit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// m64edit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with m64edit.  If not, see <https://www.gnu.org/licenses/>.

package clipboard

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jetsetilly/m64edit/curated"
	"github.com/jetsetilly/m64edit/logger"
)

// DefaultRedisKey is the key of the hash used when no other key is specified.
const DefaultRedisKey = "m64edit:clipboard"

// DefaultRedisTimeout is used when a timeout of zero or less is specified.
const DefaultRedisTimeout = 2 * time.Second

// the fields of the redis hash.
const (
	fieldTag     = "tag"
	fieldPayload = "payload"
)

// Redis is a clipboard slot stored as a hash on a redis server.
type Redis struct {
	client  *redis.Client
	key     string
	timeout time.Duration
}

// NewRedis is the preferred method of initialisation for the Redis type. The
// connection to the server is not made until the first request.
func NewRedis(addr string, key string, timeout time.Duration) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return NewRedisWithClient(client, key, timeout)
}

// NewRedisWithClient uses an existing client.
func NewRedisWithClient(client *redis.Client, key string, timeout time.Duration) *Redis {
	if key == "" {
		key = DefaultRedisKey
	}
	if timeout <= 0 {
		timeout = DefaultRedisTimeout
	}
	return &Redis{
		client:  client,
		key:     key,
		timeout: timeout,
	}
}

func (r *Redis) String() string {
	return fmt.Sprintf("redis (%s %s)", r.client.Options().Addr, r.key)
}

// Publish implements the m64.Medium interface. The existing hash is replaced
// in a single transaction.
func (r *Redis) Publish(tag string, payload []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.key)
		pipe.HSet(ctx, r.key, fieldTag, tag, fieldPayload, payload)
		return nil
	})
	if err != nil {
		return curated.Errorf(MediumError, err)
	}

	logger.Logf(logger.Allow, "clipboard", "published %d bytes to %s", len(payload), r.key)

	return nil
}

// TryConsume implements the m64.Medium interface. A missing hash is an empty
// slot.
func (r *Redis) TryConsume(tag string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	vals, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, false, curated.Errorf(MediumError, err)
	}

	t, ok := vals[fieldTag]
	if !ok || t != tag {
		return nil, false, nil
	}

	p, ok := vals[fieldPayload]
	if !ok {
		return nil, false, nil
	}

	return []byte(p), true, nil
}

// Close the connection to the redis server.
func (r *Redis) Close() error {
	return r.client.Close()
}
