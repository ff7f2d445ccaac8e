package xentry

import (
	"fmt"
	"strings"
	"time"
)

// zonedLayouts 带时区的 ISO-8601 形式。解析时小数秒可选。
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
}

// naiveLayouts 不带时区的形式，按 time.Local 解释。
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatTime 按 RFC3339Nano 格式化时间戳。
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ParseTime 解析 ISO-8601 时间戳，失败返回 ErrMalformedEntry。
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrMalformedEntry, s)
}
