// Package xretry 为存储写入提供固定间隔的重试执行器。
//
// 底层使用 [avast/retry-go/v5]。默认只执行一次（不重试），
// 调用方通过 WithAttempts/WithDelay 开启重试：
//
//	r := xretry.NewRetryer(xretry.WithAttempts(3), xretry.WithDelay(50*time.Millisecond))
//	err := r.Do(ctx, func(ctx context.Context) error {
//	    return sink.Persist(ctx, e)
//	})
//
// 用 Permanent 包装的错误立即返回，不再重试（例如编码失败）。
//
// [avast/retry-go/v5]: https://github.com/avast/retry-go
package xretry
