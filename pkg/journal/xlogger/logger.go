package xlogger

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/omeyang/xjournal/pkg/journal/xentry"
	"github.com/omeyang/xjournal/pkg/journal/xsink"
	"github.com/omeyang/xjournal/pkg/observability/xlog"
	"github.com/omeyang/xjournal/pkg/observability/xmetrics"
	"github.com/omeyang/xjournal/pkg/resilience/xretry"
)

// ErrSinkPanic sink 在写入时 panic
var ErrSinkPanic = errors.New("xlogger: sink panicked")

// Logger 分级日志扇出器
type Logger struct {
	sinks     []xsink.Sink
	threshold atomic.Int32
	diag      xlog.Logger
	now       func() time.Time
	retryers  []*xretry.Retryer
	recorder  xmetrics.Recorder
}

// New 创建 Logger
//
// sinks 按顺序写入；nil 元素被丢弃。sinks 为空时 Log 只做级别过滤。
func New(sinks []xsink.Sink, opts ...Option) *Logger {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	l := &Logger{
		diag:     xlog.OrDefault(o.diag).With(xlog.Component("xlogger")),
		now:      o.now,
		recorder: xmetrics.OrNoop(o.recorder),
	}
	for _, s := range sinks {
		if s != nil {
			l.sinks = append(l.sinks, s)
			l.retryers = append(l.retryers, l.newRetryer(o, xsink.Name(s)))
		}
	}
	l.storeThreshold(o.minimum)

	if o.meterProvider != nil {
		rec, err := xmetrics.NewOTelRecorder(xmetrics.WithMeterProvider(o.meterProvider))
		if err != nil {
			l.diag.Warn(context.Background(), "metrics disabled", xlog.Err(err))
		} else {
			l.recorder = rec
		}
	}
	return l
}

// Log 记录一条日志
//
// 未知级别被丢弃并输出诊断；低于最低级别时静默返回，不构造记录，不访问 sink。
func (l *Logger) Log(ctx context.Context, level xentry.Level, message string) {
	severity, ok := level.Severity()
	if !ok {
		l.diag.Warn(ctx, "drop entry with unrecognized level",
			xlog.Err(fmt.Errorf("%w: %q", xentry.ErrUnrecognizedLevel, string(level))))
		return
	}
	if int32(severity) < l.threshold.Load() {
		l.recorder.RecordDropped(ctx, string(level))
		return
	}

	e := xentry.New(l.now(), level, message)

	var (
		failed   int
		lastSink xsink.Sink
		lastErr  error
	)
	for i, s := range l.sinks {
		err := l.persist(ctx, l.retryers[i], s, e)
		l.recorder.RecordPersist(ctx, xsink.Name(s), err)
		if err != nil {
			failed++
			lastSink, lastErr = s, err
			l.diag.Debug(ctx, "sink persist failed", xlog.Sink(xsink.Name(s)), xlog.Err(err))
		}
	}

	if failed > 0 && failed == len(l.sinks) {
		l.diag.Error(ctx, "all sinks failed to persist entry",
			xlog.Count(failed),
			xlog.Sink(xsink.Name(lastSink)),
			xlog.Err(lastErr),
		)
	}
}

// newRetryer 为单个 sink 创建执行器，开启重试时每次失败的尝试输出一条 DEBUG 诊断
func (l *Logger) newRetryer(o *options, name string) *xretry.Retryer {
	opts := []xretry.Option{xretry.WithAttempts(o.attempts), xretry.WithDelay(o.delay)}
	if o.attempts > 1 {
		opts = append(opts, xretry.WithOnRetry(func(attempt int, err error) {
			l.diag.Debug(context.Background(), "sink persist attempt failed",
				xlog.Sink(name), xlog.Count(attempt), xlog.Err(err))
		}))
	}
	return xretry.NewRetryer(opts...)
}

// persist 写入单个 sink，panic 视为失败
func (l *Logger) persist(ctx context.Context, r *xretry.Retryer, s xsink.Sink, e xentry.Entry) error {
	return r.Do(ctx, func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = xretry.Permanent(fmt.Errorf("%w: %v", ErrSinkPanic, r))
			}
		}()
		err = s.Persist(ctx, e)
		if errors.Is(err, xsink.ErrEncode) {
			return xretry.Permanent(err)
		}
		return err
	})
}

// Debug 记录 DEBUG 级别日志
func (l *Logger) Debug(ctx context.Context, message string) {
	l.Log(ctx, xentry.LevelDebug, message)
}

// Info 记录 INFO 级别日志
func (l *Logger) Info(ctx context.Context, message string) {
	l.Log(ctx, xentry.LevelInfo, message)
}

// Warning 记录 WARNING 级别日志
func (l *Logger) Warning(ctx context.Context, message string) {
	l.Log(ctx, xentry.LevelWarning, message)
}

// Error 记录 ERROR 级别日志
func (l *Logger) Error(ctx context.Context, message string) {
	l.Log(ctx, xentry.LevelError, message)
}

// Critical 记录 CRITICAL 级别日志
func (l *Logger) Critical(ctx context.Context, message string) {
	l.Log(ctx, xentry.LevelCritical, message)
}

// SetMinimumLevel 按名称更新最低级别
//
// 名称区分大小写；未知名称被忽略并返回 false，原级别保持不变。
func (l *Logger) SetMinimumLevel(name string) bool {
	level, err := xentry.ParseLevel(name)
	if err != nil {
		l.diag.Debug(context.Background(), "ignore minimum level", xlog.Err(err))
		return false
	}
	l.storeThreshold(level)
	return true
}

// MinimumLevel 返回当前最低级别
func (l *Logger) MinimumLevel() xentry.Level {
	return xentry.Levels()[l.threshold.Load()]
}

// Sinks 返回 sink 列表的副本
func (l *Logger) Sinks() []xsink.Sink {
	return slices.Clone(l.sinks)
}

func (l *Logger) storeThreshold(level xentry.Level) {
	severity, _ := level.Severity()
	l.threshold.Store(int32(severity)) //nolint:gosec // 序数范围 0..4
}
