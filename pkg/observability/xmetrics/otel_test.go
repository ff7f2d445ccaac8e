package xmetrics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// newTestMeterProvider 创建用于测试的 MeterProvider
func newTestMeterProvider(t *testing.T) (*sdkmetric.MeterProvider, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	return mp, reader
}

// sumByAttrs 汇总指定指标的数据点，key 为属性集的可读形式
func sumByAttrs(t *testing.T, reader *sdkmetric.ManualReader, name string) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				out[dp.Attributes.Encoded(attribute.DefaultEncoder())] += dp.Value
			}
		}
	}
	return out
}

func TestNewOTelRecorder_Default(t *testing.T) {
	rec, err := NewOTelRecorder()
	require.NoError(t, err)
	require.NotNil(t, rec)

	// 全局 provider 为空实现，调用不应 panic
	rec.RecordPersist(context.Background(), "json:a", nil)
	rec.RecordDropped(context.Background(), "DEBUG")
}

func TestNewOTelRecorder_NilOption(t *testing.T) {
	_, err := NewOTelRecorder(nil)
	assert.ErrorIs(t, err, ErrNilOption)
}

func TestOTelRecorder_Counts(t *testing.T) {
	mp, reader := newTestMeterProvider(t)
	rec, err := NewOTelRecorder(WithMeterProvider(mp), WithInstrumentationName("test"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec.RecordPersist(ctx, "json:a", nil)
	rec.RecordPersist(ctx, "json:a", nil)
	rec.RecordPersist(ctx, "sql:sqlite/logs", errors.New("locked"))
	rec.RecordDropped(ctx, "DEBUG")

	persist := sumByAttrs(t, reader, metricSinkPersist)
	assert.Equal(t, map[string]int64{
		"outcome=ok,sink=json:a":             2,
		"outcome=error,sink=sql:sqlite/logs": 1,
	}, persist)

	dropped := sumByAttrs(t, reader, metricEntryDropped)
	assert.Equal(t, map[string]int64{"level=DEBUG": 1}, dropped)
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, OutcomeOK, OutcomeOf(nil))
	assert.Equal(t, OutcomeError, OutcomeOf(errors.New("x")))
}

func TestOrNoop(t *testing.T) {
	assert.Equal(t, NoopRecorder{}, OrNoop(nil))

	mp, _ := newTestMeterProvider(t)
	rec, err := NewOTelRecorder(WithMeterProvider(mp))
	require.NoError(t, err)
	assert.Same(t, rec, OrNoop(rec))
}
