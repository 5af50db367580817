package kv

import (
	"context"
	"errors"

	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/config"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// kv 是通用KV存储的边界: 单键操作原子, 支持批量读删, 无跨键事务
// 上层mapper负责把无模式的值还原为强类型记录

// ErrNotFound 键不存在
var ErrNotFound = errors.New("kv: key not found")

type Store interface {
	// Get 读取单键, 键不存在时返回ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Set 写入单键, 覆盖旧值
	Set(ctx context.Context, key string, value []byte) error
	// Del 批量删除, 不存在的键直接跳过
	Del(ctx context.Context, keys ...string) error
	// MGet 批量读取, 缺失的键对应nil
	MGet(ctx context.Context, keys ...string) ([][]byte, error)
}

var _ Store = (*redisStore)(nil)

type redisStore struct {
	rs *redis.Redis
}

func NewRedisStore(c *config.Config) Store {
	return &redisStore{rs: redis.MustNewRedis(c.Redis)}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.rs.GetCtx(ctx, key)
	if err != nil {
		return nil, err
	}
	if v == "" {
		return nil, ErrNotFound
	}
	return []byte(v), nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.rs.SetCtx(ctx, key, string(value))
}

func (s *redisStore) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := s.rs.DelCtx(ctx, keys...)
	return err
}

func (s *redisStore) MGet(ctx context.Context, keys ...string) ([][]byte, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	vals, err := s.rs.MgetCtx(ctx, keys...)
	if err != nil {
		return nil, err
	}
	out := make([][]byte, len(vals))
	for i, v := range vals {
		if v == "" {
			continue
		}
		out[i] = []byte(v)
	}
	return out, nil
}
