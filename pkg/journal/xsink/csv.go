package xsink

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/omeyang/xjournal/pkg/journal/xentry"
	"github.com/omeyang/xjournal/pkg/util/xfile"
)

// csvHeader CSV 表头
var csvHeader = []string{xentry.FieldDate, xentry.FieldLevel, xentry.FieldMessage}

var _ Sink = (*CSVSink)(nil)

// CSVSink 以 CSV 文件保存记录
type CSVSink struct {
	path string
	opts *sinkOptions
	mu   sync.Mutex
}

// NewCSV 创建 CSV sink，文件不存在或为空时写入表头
func NewCSV(path string, opts ...Option) (*CSVSink, error) {
	safe, err := xfile.SanitizePath(path)
	if err != nil {
		return nil, unavailable("csv init", err)
	}
	if _, err := xfile.EnsureFile(safe, []byte(strings.Join(csvHeader, ",")+"\n")); err != nil {
		return nil, unavailable("csv init", err)
	}
	return &CSVSink{path: safe, opts: applyOptions(opts)}, nil
}

// String 返回诊断名称
func (s *CSVSink) String() string {
	return "csv:" + s.path
}

// Path 返回文件路径
func (s *CSVSink) Path() string {
	return s.path
}

// Persist 追加一行
func (s *CSVSink) Persist(_ context.Context, e xentry.Entry) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, xfile.DefaultFilePerm)
	if err != nil {
		return unavailable("csv open", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = unavailable("csv close", cerr)
		}
	}()

	p := e.ToPortable()
	w := csv.NewWriter(f)
	if err := w.Write([]string{p.Date, p.Level, p.Message}); err != nil {
		return unavailable("csv write", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return unavailable("csv write", err)
	}
	return nil
}

// RetrieveAll 按表头字段名映射各列，列数不符或无法解码的行被跳过
func (s *CSVSink) RetrieveAll(ctx context.Context) ([]xentry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		return nil, unavailable("csv open", err)
	}
	defer f.Close() //nolint:errcheck // 只读

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return []xentry.Entry{}, nil
	}
	if err != nil {
		return nil, unavailable("csv header", err)
	}

	var entries []xentry.Entry
	for row := 1; ; row++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return nil, unavailable("csv read", err)
			}
			s.opts.reportDecode(ctx, s, fmt.Errorf("%w: %w", xentry.ErrMalformedEntry, err))
			continue
		}
		if len(record) != len(header) {
			s.opts.reportDecode(ctx, s, fmt.Errorf("%w: row %d: got %d fields, want %d",
				xentry.ErrMalformedEntry, row, len(record), len(header)))
			continue
		}

		fields := make(map[string]string, len(header))
		for i, name := range header {
			fields[name] = record[i]
		}
		e, err := xentry.FromPortable(fields)
		if err != nil {
			s.opts.reportDecode(ctx, s, fmt.Errorf("row %d: %w", row, err))
			continue
		}
		entries = append(entries, e)
	}
	if entries == nil {
		entries = []xentry.Entry{}
	}
	return entries, nil
}
