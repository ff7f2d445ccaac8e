package xmetrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	defaultInstrumentationName = "github.com/omeyang/xjournal/xmetrics"

	metricSinkPersist  = "xjournal.sink.persist"
	metricEntryDropped = "xjournal.entry.dropped"

	attrSink    = "sink"
	attrOutcome = "outcome"
	attrLevel   = "level"
)

type otelConfig struct {
	instrumentationName string
	meterProvider       metric.MeterProvider
}

// Option 定义 OTel Recorder 的配置选项。
type Option func(*otelConfig)

// WithInstrumentationName 设置 OTel instrumentation 名称。
func WithInstrumentationName(name string) Option {
	return func(cfg *otelConfig) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithMeterProvider 设置 MeterProvider。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *otelConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

// NewOTelRecorder 创建基于 OpenTelemetry 的 Recorder。
func NewOTelRecorder(opts ...Option) (Recorder, error) {
	cfg := &otelConfig{
		instrumentationName: defaultInstrumentationName,
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		if opt == nil {
			return nil, ErrNilOption
		}
		opt(cfg)
	}

	meter := cfg.meterProvider.Meter(cfg.instrumentationName)

	persist, err := meter.Int64Counter(
		metricSinkPersist,
		metric.WithDescription("sink persist attempts by outcome"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCreateCounter, metricSinkPersist, err)
	}

	dropped, err := meter.Int64Counter(
		metricEntryDropped,
		metric.WithDescription("entries below the minimum level"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCreateCounter, metricEntryDropped, err)
	}

	return &otelRecorder{persist: persist, dropped: dropped}, nil
}

type otelRecorder struct {
	persist metric.Int64Counter
	dropped metric.Int64Counter
}

// RecordPersist 记录一次写入。
//
// 使用不可取消的 context，请求 context 已取消时指标仍能记录。
func (r *otelRecorder) RecordPersist(ctx context.Context, sink string, err error) {
	r.persist.Add(metricsContext(ctx), 1, metric.WithAttributes(
		attribute.String(attrSink, sink),
		attribute.String(attrOutcome, string(OutcomeOf(err))),
	))
}

// RecordDropped 记录一条丢弃。
func (r *otelRecorder) RecordDropped(ctx context.Context, level string) {
	r.dropped.Add(metricsContext(ctx), 1, metric.WithAttributes(
		attribute.String(attrLevel, level),
	))
}

func metricsContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return context.WithoutCancel(ctx)
}
