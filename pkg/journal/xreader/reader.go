package xreader

import (
	"context"
	"time"

	"github.com/omeyang/xjournal/pkg/journal/xentry"
	"github.com/omeyang/xjournal/pkg/journal/xsink"
	"github.com/omeyang/xjournal/pkg/observability/xlog"
)

// Reader 绑定单个 sink 的查询器，本身无状态
type Reader struct {
	sink xsink.Sink
	diag xlog.Logger
}

// Option Reader 配置选项
type Option func(*Reader)

// WithDiagnostics 设置诊断日志，默认使用 xlog.Default()
func WithDiagnostics(l xlog.Logger) Option {
	return func(r *Reader) {
		r.diag = l
	}
}

// New 创建绑定 sink 的 Reader
func New(sink xsink.Sink, opts ...Option) *Reader {
	r := &Reader{sink: sink}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.diag = xlog.OrDefault(r.diag).With(xlog.Component("xreader"), xlog.Sink(xsink.Name(sink)))
	return r
}

// Sink 返回绑定的 sink
func (r *Reader) Sink() xsink.Sink {
	return r.sink
}

// All 返回 sink 中的全部记录；读取失败时返回空切片
func (r *Reader) All(ctx context.Context) []xentry.Entry {
	if r.sink == nil {
		r.diag.Warn(ctx, "no sink bound")
		return []xentry.Entry{}
	}
	entries, err := r.sink.RetrieveAll(ctx)
	if err != nil {
		r.diag.Warn(ctx, "retrieve failed, returning no entries", xlog.Err(err))
		return []xentry.Entry{}
	}
	if entries == nil {
		return []xentry.Entry{}
	}
	return entries
}

// FilterByDate 返回落在 w 内的记录
func (r *Reader) FilterByDate(ctx context.Context, w Window) []xentry.Entry {
	return FilterByDate(r.All(ctx), w)
}

// FindByText 返回落在 w 内、消息包含 substring 的记录
func (r *Reader) FindByText(ctx context.Context, substring string, w Window) []xentry.Entry {
	return MatchText(r.FilterByDate(ctx, w), substring)
}

// FindByRegex 返回落在 w 内、消息与 pattern 忽略大小写部分匹配的记录
//
// pattern 无效时返回空切片并输出诊断。
func (r *Reader) FindByRegex(ctx context.Context, pattern string, w Window) []xentry.Entry {
	out, err := MatchRegex(r.FilterByDate(ctx, w), pattern)
	if err != nil {
		r.diag.Warn(ctx, "no entries for pattern", xlog.Err(err))
		return []xentry.Entry{}
	}
	return out
}

// GroupByLevel 将落在 w 内的记录按级别分组
func (r *Reader) GroupByLevel(ctx context.Context, w Window) map[xentry.Level][]xentry.Entry {
	return GroupByLevel(r.FilterByDate(ctx, w))
}

// GroupByMonth 将落在 w 内的记录按月份分组
func (r *Reader) GroupByMonth(ctx context.Context, w Window) map[string][]xentry.Entry {
	return GroupByMonth(r.FilterByDate(ctx, w))
}

// GroupByMonthIn 同 GroupByMonth，但月份在 loc 中计算
func (r *Reader) GroupByMonthIn(ctx context.Context, w Window, loc *time.Location) map[string][]xentry.Entry {
	return GroupByMonthIn(r.FilterByDate(ctx, w), loc)
}
