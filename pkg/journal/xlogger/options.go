package xlogger

import (
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/omeyang/xjournal/pkg/journal/xentry"
	"github.com/omeyang/xjournal/pkg/observability/xlog"
	"github.com/omeyang/xjournal/pkg/observability/xmetrics"
)

// DefaultMinimumLevel 默认最低级别，记录全部级别
const DefaultMinimumLevel = xentry.LevelDebug

type options struct {
	minimum       xentry.Level
	diag          xlog.Logger
	now           func() time.Time
	attempts      int
	delay         time.Duration
	meterProvider metric.MeterProvider
	recorder      xmetrics.Recorder
}

// Option Logger 配置选项
type Option func(*options)

func defaultOptions() *options {
	return &options{
		minimum:  DefaultMinimumLevel,
		now:      time.Now,
		attempts: 1,
	}
}

// WithMinimumLevel 设置初始最低级别，未知级别被忽略
func WithMinimumLevel(level xentry.Level) Option {
	return func(o *options) {
		if level.IsValid() {
			o.minimum = level
		}
	}
}

// WithDiagnostics 设置诊断日志，默认使用 xlog.Default()
func WithDiagnostics(l xlog.Logger) Option {
	return func(o *options) {
		o.diag = l
	}
}

// WithClock 设置时间源，nil 被忽略
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithRetry 设置每个 sink 的写入尝试次数和间隔
//
// attempts 包含首次写入，小于 1 按 1 处理。编码失败不重试。
func WithRetry(attempts int, delay time.Duration) Option {
	return func(o *options) {
		o.attempts = attempts
		o.delay = delay
	}
}

// WithMeterProvider 设置写入计数使用的 MeterProvider
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}

// WithRecorder 设置自定义计数器，同时设置 WithMeterProvider 时以后者为准
func WithRecorder(r xmetrics.Recorder) Option {
	return func(o *options) {
		o.recorder = r
	}
}
