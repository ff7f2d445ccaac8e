package xsink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/omeyang/xjournal/pkg/journal/xentry"
	"github.com/omeyang/xjournal/pkg/util/xfile"
	"github.com/omeyang/xjournal/pkg/util/xjson"
)

// jsonIndent JSON 文件缩进宽度
const jsonIndent = 4

var _ Sink = (*JSONSink)(nil)

// JSONSink 以单个 JSON 数组保存全部记录
type JSONSink struct {
	path string
	opts *sinkOptions
	mu   sync.Mutex
}

// NewJSON 创建 JSON sink，文件不存在或为空时写入 "[]"
func NewJSON(path string, opts ...Option) (*JSONSink, error) {
	safe, err := xfile.SanitizePath(path)
	if err != nil {
		return nil, unavailable("json init", err)
	}
	if _, err := xfile.EnsureFile(safe, []byte("[]")); err != nil {
		return nil, unavailable("json init", err)
	}
	return &JSONSink{path: safe, opts: applyOptions(opts)}, nil
}

// String 返回诊断名称
func (s *JSONSink) String() string {
	return "json:" + s.path
}

// Path 返回文件路径
func (s *JSONSink) Path() string {
	return s.path
}

// Persist 读取整个数组、追加记录后整体替换文件
//
// 文件内容不是合法 JSON 数组时拒绝写入，避免覆盖已有数据。
func (s *JSONSink) Persist(_ context.Context, e xentry.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readRaw()
	if err != nil {
		return err
	}

	record, err := json.Marshal(e.ToPortable())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	records = append(records, record)

	data, err := xjson.Indent(records, jsonIndent)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := xfile.WriteFileAtomic(s.path, data, xfile.DefaultFilePerm); err != nil {
		return unavailable("json write", err)
	}
	return nil
}

// RetrieveAll 按数组顺序返回记录，无法解码的元素被跳过
func (s *JSONSink) RetrieveAll(ctx context.Context) ([]xentry.Entry, error) {
	s.mu.Lock()
	records, err := s.readRaw()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	entries := make([]xentry.Entry, 0, len(records))
	for i, raw := range records {
		var fields map[string]string
		if err := json.Unmarshal(raw, &fields); err != nil {
			s.opts.reportDecode(ctx, s, fmt.Errorf("%w: element %d: %w", xentry.ErrMalformedEntry, i, err))
			continue
		}
		e, err := xentry.FromPortable(fields)
		if err != nil {
			s.opts.reportDecode(ctx, s, fmt.Errorf("element %d: %w", i, err))
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// readRaw 读取数组元素的原始字节；空文件视为空数组
func (s *JSONSink) readRaw() ([]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, unavailable("json read", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, unavailable("json decode", err)
	}
	return records, nil
}
