// Package kv is a thin typed wrapper over the remote key-value store. It
// exposes exactly the command surface the repositories need and nothing
// else; callers parse the raw values they get back.
package kv

import (
	"context"

	"github.com/redis/go-redis/v9"

	"friendzone/config"
)

// ZMember pairs a sorted-set member with its score.
type ZMember struct {
	Score  float64
	Member string
}

// Store is the command interface the repositories are written against.
// The production implementation talks to Redis; tests substitute a mock.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	SAdd(ctx context.Context, key, member string) error
	SRem(ctx context.Context, key, member string) error
	SIsMember(ctx context.Context, key, member string) (bool, error)
	SMembers(ctx context.Context, key string) ([]string, error)
	ZAdd(ctx context.Context, key string, member ZMember) error
	ZRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// ErrNil is returned by Get when the key does not exist.
var ErrNil = redis.Nil

type redisStore struct {
	client *redis.Client
}

// NewStore opens a client against the configured Redis instance. The
// returned store is a process-wide handle, constructed once at startup and
// passed into repositories.
func NewStore(cfg *config.Config) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &redisStore{client: client}, nil
}

// NewStoreWithClient wraps an existing client. Used by tests that provision
// their own container-backed instance.
func NewStoreWithClient(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	return s.client.Get(ctx, key).Result()
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *redisStore) SAdd(ctx context.Context, key, member string) error {
	return s.client.SAdd(ctx, key, member).Err()
}

func (s *redisStore) SRem(ctx context.Context, key, member string) error {
	return s.client.SRem(ctx, key, member).Err()
}

func (s *redisStore) SIsMember(ctx context.Context, key, member string) (bool, error) {
	return s.client.SIsMember(ctx, key, member).Result()
}

func (s *redisStore) SMembers(ctx context.Context, key string) ([]string, error) {
	return s.client.SMembers(ctx, key).Result()
}

func (s *redisStore) ZAdd(ctx context.Context, key string, member ZMember) error {
	return s.client.ZAdd(ctx, key, redis.Z{Score: member.Score, Member: member.Member}).Err()
}

func (s *redisStore) ZRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	return s.client.ZRange(ctx, key, start, stop).Result()
}
