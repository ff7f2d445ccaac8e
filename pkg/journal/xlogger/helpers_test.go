package xlogger

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/omeyang/xjournal/pkg/journal/xentry"
	"github.com/omeyang/xjournal/pkg/observability/xlog"
)

// memorySink 内存 sink，可配置前 failFirst 次写入失败
type memorySink struct {
	name      string
	mu        sync.Mutex
	entries   []xentry.Entry
	calls     int
	failFirst int
	err       error
}

func (s *memorySink) String() string { return s.name }

func (s *memorySink) Persist(_ context.Context, e xentry.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil && (s.failFirst == 0 || s.calls <= s.failFirst) {
		return s.err
	}
	s.entries = append(s.entries, e)
	return nil
}

func (s *memorySink) RetrieveAll(context.Context) ([]xentry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]xentry.Entry(nil), s.entries...), nil
}

func (s *memorySink) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// panicSink 写入时 panic
type panicSink struct{}

func (panicSink) String() string { return "panic" }

func (panicSink) Persist(context.Context, xentry.Entry) error { panic("boom") }

func (panicSink) RetrieveAll(context.Context) ([]xentry.Entry, error) {
	return nil, errors.New("unreachable")
}

// record 一条诊断日志
type record struct {
	level slog.Level
	msg   string
	attrs map[string]string
}

// recordingLogger 收集诊断日志的 xlog.Logger
type recordingLogger struct {
	mu      *sync.Mutex
	records *[]record
	attrs   []slog.Attr
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{mu: &sync.Mutex{}, records: &[]record{}}
}

func (r *recordingLogger) add(level slog.Level, msg string, attrs []slog.Attr) {
	m := make(map[string]string, len(r.attrs)+len(attrs))
	for _, a := range append(append([]slog.Attr(nil), r.attrs...), attrs...) {
		if a.Key != "" {
			m[a.Key] = a.Value.String()
		}
	}
	r.mu.Lock()
	*r.records = append(*r.records, record{level: level, msg: msg, attrs: m})
	r.mu.Unlock()
}

func (r *recordingLogger) Debug(_ context.Context, msg string, attrs ...slog.Attr) {
	r.add(slog.LevelDebug, msg, attrs)
}

func (r *recordingLogger) Info(_ context.Context, msg string, attrs ...slog.Attr) {
	r.add(slog.LevelInfo, msg, attrs)
}

func (r *recordingLogger) Warn(_ context.Context, msg string, attrs ...slog.Attr) {
	r.add(slog.LevelWarn, msg, attrs)
}

func (r *recordingLogger) Error(_ context.Context, msg string, attrs ...slog.Attr) {
	r.add(slog.LevelError, msg, attrs)
}

func (r *recordingLogger) With(attrs ...slog.Attr) xlog.Logger {
	return &recordingLogger{
		mu:      r.mu,
		records: r.records,
		attrs:   append(append([]slog.Attr(nil), r.attrs...), attrs...),
	}
}

// at 返回指定级别的诊断日志
func (r *recordingLogger) at(level slog.Level) []record {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []record
	for _, rec := range *r.records {
		if rec.level == level {
			out = append(out, rec)
		}
	}
	return out
}
