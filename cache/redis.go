package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/studykorea/uniclient/model"
)

// ErrNotFound is returned when a key is absent from the Redis tier.
var ErrNotFound = errors.New("key not found in cache")

// DefaultTTL bounds how long mirrored records may outlive the process that
// wrote them.
const DefaultTTL = 15 * time.Minute

const (
	universityKeyPrefix = "university:"
	defaultListKey      = "universities:default"
)

// Redis is the optional second cache tier. The client consults it on
// memory misses and writes through best-effort; every failure here
// degrades silently to the network path, so no method is load-bearing.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to Redis and verifies the connection.
func NewRedis(redisURL string) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Redis{client: client, ttl: DefaultTTL}, nil
}

// NewRedisWithClient wraps an existing client; tests inject mocks here.
func NewRedisWithClient(client *redis.Client) *Redis {
	return &Redis{client: client, ttl: DefaultTTL}
}

// GetUniversity fetches a mirrored record by id.
func (r *Redis) GetUniversity(ctx context.Context, id int) (model.University, error) {
	var u model.University
	if err := r.getJSON(ctx, universityKey(id), &u); err != nil {
		return model.University{}, err
	}
	return u, nil
}

// SetUniversity mirrors a record with the standard TTL.
func (r *Redis) SetUniversity(ctx context.Context, u model.University) error {
	return r.setJSON(ctx, universityKey(u.ID), u)
}

// GetDefaultList fetches the mirrored default list.
func (r *Redis) GetDefaultList(ctx context.Context) ([]model.University, error) {
	var list []model.University
	if err := r.getJSON(ctx, defaultListKey, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetDefaultList mirrors the default list with the standard TTL.
func (r *Redis) SetDefaultList(ctx context.Context, list []model.University) error {
	return r.setJSON(ctx, defaultListKey, list)
}

// FlushAll clears the tier; paired with Store.InvalidateAll.
func (r *Redis) FlushAll(ctx context.Context) error {
	return r.client.FlushDB(ctx).Err()
}

// Close closes the underlying connection.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) getJSON(ctx context.Context, key string, dest any) error {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func (r *Redis) setJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, r.ttl).Err()
}

func universityKey(id int) string {
	return fmt.Sprintf("%s%d", universityKeyPrefix, id)
}
