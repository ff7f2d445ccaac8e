// Package xlogger 把分级日志调用扇出到一组 sink。
//
// 每次调用先按最低级别过滤（唯一的过滤点），再构造一条 xentry.Entry，
// 按配置顺序逐个写入 sink。单个 sink 失败不影响其他 sink；只有全部 sink
// 都失败时才向诊断日志输出一条汇总错误。Log 系列方法从不返回错误，也不会
// 因为 sink 的异常行为 panic。
//
//	l := xlogger.New([]xsink.Sink{jsonSink, sqlSink},
//	    xlogger.WithMinimumLevel(xentry.LevelInfo),
//	    xlogger.WithRetry(3, 100*time.Millisecond),
//	)
//	l.Info(ctx, "service started")
//	l.SetMinimumLevel("WARNING")
//
// sink 由调用方持有，可以被多个 Logger 共享，Logger 不负责关闭。
// 最低级别是 Logger 唯一的可变状态，以原子方式读写。
package xlogger
