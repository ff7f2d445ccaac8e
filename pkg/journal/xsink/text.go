package xsink

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/omeyang/xjournal/pkg/journal/xentry"
	"github.com/omeyang/xjournal/pkg/util/xfile"
)

// lineBreaks 消息中的换行写入时替换为空格，保证一条记录一行
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

var _ Sink = (*TextSink)(nil)

// TextSink 以纯文本行保存记录
type TextSink struct {
	path string
	opts *sinkOptions
	mu   sync.Mutex
}

// NewText 创建纯文本 sink，文件不存在时创建空文件
func NewText(path string, opts ...Option) (*TextSink, error) {
	safe, err := xfile.SanitizePath(path)
	if err != nil {
		return nil, unavailable("text init", err)
	}
	if _, err := xfile.EnsureFile(safe, nil); err != nil {
		return nil, unavailable("text init", err)
	}
	return &TextSink{path: safe, opts: applyOptions(opts)}, nil
}

// String 返回诊断名称
func (s *TextSink) String() string {
	return "text:" + s.path
}

// Path 返回文件路径
func (s *TextSink) Path() string {
	return s.path
}

// FormatLine 返回 e 在文本文件中的一行（不含换行符）
func FormatLine(e xentry.Entry) string {
	return xentry.FormatTime(e.Time()) + " " + string(e.Level()) + " " + lineBreaks.Replace(e.Message())
}

// ParseLine 解析一行：前两个空格分隔时间戳与级别，其余为消息
func ParseLine(line string) (xentry.Entry, error) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) != 3 {
		return xentry.Entry{}, fmt.Errorf("%w: expected \"timestamp level message\"", xentry.ErrMalformedEntry)
	}
	t, err := xentry.ParseTime(parts[0])
	if err != nil {
		return xentry.Entry{}, err
	}
	return xentry.New(t, xentry.Level(parts[1]), parts[2]), nil
}

// Persist 追加一行
func (s *TextSink) Persist(_ context.Context, e xentry.Entry) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, xfile.DefaultFilePerm)
	if err != nil {
		return unavailable("text open", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = unavailable("text close", cerr)
		}
	}()

	if _, err := f.WriteString(FormatLine(e) + "\n"); err != nil {
		return unavailable("text write", err)
	}
	return nil
}

// RetrieveAll 逐行解析，空行忽略，无法解析的行被跳过
func (s *TextSink) RetrieveAll(ctx context.Context) ([]xentry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		return nil, unavailable("text open", err)
	}
	defer f.Close() //nolint:errcheck // 只读

	// 不限制行长，超长消息同样可以读回
	reader := bufio.NewReader(f)
	entries := []xentry.Entry{}
	for n := 1; ; n++ {
		line, rerr := reader.ReadString('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return nil, unavailable("text read", rerr)
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" {
			e, err := ParseLine(line)
			if err != nil {
				s.opts.reportDecode(ctx, s, fmt.Errorf("line %d: %w", n, err))
			} else {
				entries = append(entries, e)
			}
		}
		if rerr != nil {
			return entries, nil
		}
	}
}
