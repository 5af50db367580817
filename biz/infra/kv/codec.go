package kv

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
)

// GetAs 读取并反序列化key对应的记录
func GetAs[T any](ctx context.Context, s Store, key string) (*T, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	v := new(T)
	if err = sonic.Unmarshal(raw, v); err != nil {
		return nil, err
	}
	return v, nil
}

// SetAs 序列化并写入
func SetAs(ctx context.Context, s Store, key string, v any) error {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}

// MGetAs 批量读取记录, 缺失或无法解析的条目直接丢弃
func MGetAs[T any](ctx context.Context, s Store, keys ...string) ([]*T, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	raws, err := s.MGet(ctx, keys...)
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(raws))
	for _, raw := range raws {
		if raw == nil {
			continue
		}
		v := new(T)
		if sonic.Unmarshal(raw, v) != nil {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// GetList 读取字符串列表型的索引键, 键不存在视作空列表
func GetList(ctx context.Context, s Store, key string) ([]string, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	if err = sonic.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
