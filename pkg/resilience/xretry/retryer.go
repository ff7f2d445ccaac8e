package xretry

import (
	"context"
	"math"
	"time"

	retry "github.com/avast/retry-go/v5"
)

// Retryer 固定间隔重试执行器，零值不可用，使用 NewRetryer 创建
type Retryer struct {
	attempts uint
	delay    time.Duration
	onRetry  func(attempt int, err error)
}

// Option 执行器配置选项
type Option func(*Retryer)

// WithAttempts 设置总尝试次数（包含首次），小于 1 按 1 处理
func WithAttempts(n int) Option {
	return func(r *Retryer) {
		if n < 1 {
			n = 1
		}
		r.attempts = uint(n)
	}
}

// WithDelay 设置两次尝试之间的固定间隔，负数按 0 处理
func WithDelay(d time.Duration) Option {
	return func(r *Retryer) {
		r.delay = max(d, 0)
	}
}

// WithOnRetry 设置失败回调，attempt 为刚失败的尝试序号（从 1 开始）
//
// 每次可恢复的失败都会调用，包括最后一次；Permanent 错误不触发。传入 nil 会被忽略。
func WithOnRetry(fn func(attempt int, err error)) Option {
	return func(r *Retryer) {
		if fn != nil {
			r.onRetry = fn
		}
	}
}

// NewRetryer 创建执行器，默认只尝试一次
func NewRetryer(opts ...Option) *Retryer {
	r := &Retryer{attempts: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Do 执行 fn，失败时按配置重试，返回最后一次的错误
//
// ctx 取消时停止等待并返回 ctx 的错误。
func (r *Retryer) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if r == nil {
		return ErrNilRetryer
	}
	if fn == nil {
		return ErrNilFunc
	}
	if ctx == nil {
		ctx = context.Background()
	}

	opts := []retry.Option{
		retry.Context(ctx),
		retry.Attempts(max(r.attempts, 1)),
		retry.Delay(r.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	}
	if r.onRetry != nil {
		opts = append(opts, retry.OnRetry(func(n uint, err error) {
			// retry-go 的 n 从 0 开始
			r.onRetry(int(min(n, math.MaxInt32))+1, err)
		}))
	}

	return retry.New(opts...).Do(func() error {
		return fn(ctx)
	})
}
