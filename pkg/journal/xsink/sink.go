package xsink

import (
	"context"
	"fmt"

	"github.com/omeyang/xjournal/pkg/journal/xentry"
	"github.com/omeyang/xjournal/pkg/observability/xlog"
)

// Sink 存储后端契约
type Sink interface {
	// Persist 追加一条记录
	Persist(ctx context.Context, e xentry.Entry) error

	// RetrieveAll 返回存储中的全部记录
	RetrieveAll(ctx context.Context) ([]xentry.Entry, error)
}

// DefaultTable SQL sink 默认表名
const DefaultTable = "logs"

type sinkOptions struct {
	table         string
	diag          xlog.Logger
	onDecodeError func(error)
}

// Option Sink 配置选项
type Option func(*sinkOptions)

func defaultOptions() *sinkOptions {
	return &sinkOptions{table: DefaultTable}
}

func applyOptions(opts []Option) *sinkOptions {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithTable 设置 SQL 表名（仅 SQL sink 使用）
func WithTable(name string) Option {
	return func(o *sinkOptions) {
		o.table = name
	}
}

// WithDiagnostics 设置诊断日志，默认使用 xlog.Default()
func WithDiagnostics(l xlog.Logger) Option {
	return func(o *sinkOptions) {
		o.diag = l
	}
}

// WithOnDecodeError 设置单条记录解码失败的回调
//
// 设置后不再写诊断日志。回调在 RetrieveAll 内同步执行。
func WithOnDecodeError(fn func(error)) Option {
	return func(o *sinkOptions) {
		o.onDecodeError = fn
	}
}

// reportDecode 上报被跳过的记录
func (o *sinkOptions) reportDecode(ctx context.Context, sink fmt.Stringer, err error) {
	if o.onDecodeError != nil {
		o.onDecodeError(err)
		return
	}
	xlog.OrDefault(o.diag).Warn(ctx, "xsink: skip undecodable record",
		xlog.Sink(sink.String()), xlog.Err(err))
}

// Name 返回 Sink 的诊断名称：实现了 fmt.Stringer 时使用 String()，否则为类型名
func Name(s Sink) string {
	if s == nil {
		return "<nil>"
	}
	if st, ok := s.(fmt.Stringer); ok {
		return st.String()
	}
	return fmt.Sprintf("%T", s)
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrSinkUnavailable, op, err)
}
