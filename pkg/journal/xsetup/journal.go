package xsetup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.opentelemetry.io/otel/metric"

	"github.com/omeyang/xjournal/pkg/config/xconf"
	"github.com/omeyang/xjournal/pkg/journal/xentry"
	"github.com/omeyang/xjournal/pkg/journal/xlogger"
	"github.com/omeyang/xjournal/pkg/journal/xreader"
	"github.com/omeyang/xjournal/pkg/journal/xsink"
	"github.com/omeyang/xjournal/pkg/observability/xlog"
	"github.com/omeyang/xjournal/pkg/observability/xrotate"
)

// Journal 组装完成的日志系统
type Journal struct {
	// Logger 扇出到全部 sink
	Logger *xlogger.Logger

	// Diagnostics 运维诊断日志
	Diagnostics xlog.LoggerWithLevel

	sinks   []xsink.Sink
	readers []*xreader.Reader
	closers []func(context.Context) error

	closeOnce sync.Once
	closeErr  error
}

type buildOptions struct {
	meterProvider metric.MeterProvider
	diagOutput    io.Writer
}

// Option Build 选项
type Option func(*buildOptions)

// WithMeterProvider 为 Logger 开启写入计数
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *buildOptions) {
		o.meterProvider = mp
	}
}

// WithDiagnosticsOutput 覆盖诊断日志输出（配置了 diagnostics.file 时忽略）
func WithDiagnosticsOutput(w io.Writer) Option {
	return func(o *buildOptions) {
		o.diagOutput = w
	}
}

// Build 按配置创建全部组件
//
// 任一 sink 创建失败时释放已创建的资源并返回错误。
func Build(ctx context.Context, cfg *Config, opts ...Option) (*Journal, error) {
	if cfg == nil {
		return nil, ErrNoSinks
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &buildOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	diag, cleanup, err := buildDiagnostics(cfg.Diagnostics, o.diagOutput)
	if err != nil {
		return nil, err
	}

	j := &Journal{Diagnostics: diag}
	j.closers = append(j.closers, func(context.Context) error { return cleanup() })

	for i, sc := range cfg.Sinks {
		s, closer, err := openSink(ctx, sc, diag)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("sinks[%d] (%s): %w", i, sc.Type, err), j.Close(ctx))
		}
		if closer != nil {
			j.closers = append(j.closers, closer)
		}
		j.sinks = append(j.sinks, s)
		j.readers = append(j.readers, xreader.New(s, xreader.WithDiagnostics(diag)))
	}

	level, _ := xentry.ParseLevel(cfg.Level)
	j.Logger = xlogger.New(j.sinks,
		xlogger.WithMinimumLevel(level),
		xlogger.WithDiagnostics(diag),
		xlogger.WithRetry(cfg.Retry.Attempts, cfg.Retry.Delay),
		xlogger.WithMeterProvider(o.meterProvider),
	)

	diag.Debug(ctx, "journal ready", xlog.Count(len(j.sinks)))
	return j, nil
}

func buildDiagnostics(cfg DiagnosticsConfig, output io.Writer) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetLevelString(cfg.Level).
		SetFormat(cfg.Format).
		SetAttrs(xlog.Component("xjournal"))

	switch {
	case cfg.File != "":
		var ropts []xrotate.Option
		if cfg.MaxSizeMB > 0 {
			ropts = append(ropts, xrotate.WithMaxSize(cfg.MaxSizeMB))
		}
		if cfg.MaxBackups > 0 {
			ropts = append(ropts, xrotate.WithMaxBackups(cfg.MaxBackups))
		}
		if cfg.MaxAgeDays > 0 {
			ropts = append(ropts, xrotate.WithMaxAge(cfg.MaxAgeDays))
		}
		b = b.SetRotation(cfg.File, ropts...)
	case output != nil:
		b = b.SetOutput(output)
	}

	diag, cleanup, err := b.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: diagnostics: %w", ErrInvalidSetting, err)
	}
	return diag, cleanup, nil
}

// openSink 创建单个 sink；返回的 closer 释放 sink 独占的客户端
func openSink(ctx context.Context, sc SinkConfig, diag xlog.Logger) (xsink.Sink, func(context.Context) error, error) {
	sopts := []xsink.Option{xsink.WithDiagnostics(diag)}

	switch sc.Type {
	case SinkJSON:
		s, err := xsink.NewJSON(sc.Path, sopts...)
		return s, nil, err
	case SinkCSV:
		s, err := xsink.NewCSV(sc.Path, sopts...)
		return s, nil, err
	case SinkText:
		s, err := xsink.NewText(sc.Path, sopts...)
		return s, nil, err
	case SinkSQL:
		s, err := xsink.NewSQL(ctx, sc.Driver, sc.DSN, append(sopts, xsink.WithTable(sc.Table))...)
		return s, nil, err
	case SinkRedis:
		client := redis.NewClient(&redis.Options{Addr: sc.Addr, Password: sc.Password, DB: sc.DB})
		closer := func(context.Context) error { return client.Close() }
		s, err := xsink.NewRedis(client, sc.Key, sopts...)
		if err != nil {
			return nil, nil, errors.Join(err, client.Close())
		}
		return s, closer, nil
	case SinkMongo:
		client, err := mongo.Connect(options.Client().ApplyURI(sc.URI))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", xsink.ErrSinkUnavailable, err)
		}
		closer := func(ctx context.Context) error { return client.Disconnect(ctx) }
		s, err := xsink.NewMongo(client.Database(sc.Database).Collection(sc.Collection), sopts...)
		if err != nil {
			return nil, nil, errors.Join(err, client.Disconnect(ctx))
		}
		return s, closer, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSinkType, sc.Type)
	}
}

// Sinks 返回按配置顺序排列的 sink
func (j *Journal) Sinks() []xsink.Sink {
	return slices.Clone(j.sinks)
}

// Reader 返回第 i 个 sink 的 Reader
func (j *Journal) Reader(i int) (*xreader.Reader, error) {
	if i < 0 || i >= len(j.readers) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrSinkIndex, i, len(j.readers))
	}
	return j.readers[i], nil
}

// Close 逆序释放客户端和诊断日志文件，可重复调用
func (j *Journal) Close(ctx context.Context) error {
	j.closeOnce.Do(func() {
		var errs []error
		for i := len(j.closers) - 1; i >= 0; i-- {
			if err := j.closers[i](ctx); err != nil {
				errs = append(errs, err)
			}
		}
		j.closeErr = errors.Join(errs...)
	})
	return j.closeErr
}

// WatchLevel 监视配置文件，level 字段变化时更新 Logger 的最低级别
//
// 未知级别被忽略并记录诊断。返回的 Watcher 已启动，调用方负责 Stop。
func (j *Journal) WatchLevel(c xconf.Config, opts ...xconf.WatchOption) (*xconf.Watcher, error) {
	w, err := xconf.Watch(c, func(c xconf.Config, err error) {
		ctx := context.Background()
		if err != nil {
			j.Diagnostics.Warn(ctx, "config reload failed", xlog.Err(err))
			return
		}
		level := c.Client().String("level")
		if level == "" {
			level = string(xentry.LevelDebug)
		}
		if level == string(j.Logger.MinimumLevel()) {
			return
		}
		if !j.Logger.SetMinimumLevel(level) {
			j.Diagnostics.Warn(ctx, "ignore unrecognized level from config",
				xlog.Err(fmt.Errorf("%w: %q", xentry.ErrUnrecognizedLevel, level)))
			return
		}
		j.Diagnostics.Info(ctx, "minimum level changed")
	}, opts...)
	if err != nil {
		return nil, err
	}
	w.Start()
	return w, nil
}
