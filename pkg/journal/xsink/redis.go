package xsink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/omeyang/xjournal/pkg/journal/xentry"
)

var _ Sink = (*RedisSink)(nil)

// RedisSink 以 Redis list 保存记录，每个元素是一条 JSON 可移植形式
type RedisSink struct {
	client redis.UniversalClient
	key    string
	opts   *sinkOptions
}

// NewRedis 创建 Redis sink
//
// 客户端由调用方持有并负责关闭。不存在的 key 读取为空列表，无需初始化。
func NewRedis(client redis.UniversalClient, key string, opts ...Option) (*RedisSink, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if key == "" {
		return nil, ErrEmptyKey
	}
	return &RedisSink{client: client, key: key, opts: applyOptions(opts)}, nil
}

// String 返回诊断名称
func (s *RedisSink) String() string {
	return "redis:" + s.key
}

// Key 返回 list key
func (s *RedisSink) Key() string {
	return s.key
}

// Persist RPUSH 一条记录
func (s *RedisSink) Persist(ctx context.Context, e xentry.Entry) error {
	data, err := json.Marshal(e.ToPortable())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := s.client.RPush(ctx, s.key, data).Err(); err != nil {
		return unavailable("redis rpush", err)
	}
	return nil
}

// RetrieveAll LRANGE 0 -1，无法解码的元素被跳过
func (s *RedisSink) RetrieveAll(ctx context.Context) ([]xentry.Entry, error) {
	items, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, unavailable("redis lrange", err)
	}

	entries := make([]xentry.Entry, 0, len(items))
	for i, item := range items {
		var fields map[string]string
		if err := json.Unmarshal([]byte(item), &fields); err != nil {
			s.opts.reportDecode(ctx, s, fmt.Errorf("%w: item %d: %w", xentry.ErrMalformedEntry, i, err))
			continue
		}
		e, err := xentry.FromPortable(fields)
		if err != nil {
			s.opts.reportDecode(ctx, s, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}
