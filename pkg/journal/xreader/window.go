package xreader

import (
	"time"

	"github.com/omeyang/xjournal/pkg/journal/xentry"
)

// Window 时间窗口 (Start, End]，零值字段表示该侧不设界
type Window struct {
	Start time.Time
	End   time.Time
}

// Since 返回只有下界的窗口
func Since(start time.Time) Window { return Window{Start: start} }

// Until 返回只有上界的窗口
func Until(end time.Time) Window { return Window{End: end} }

// Between 返回 (start, end] 窗口
func Between(start, end time.Time) Window { return Window{Start: start, End: end} }

// Unbounded 判断两侧都不设界
func (w Window) Unbounded() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// Contains 判断 t 是否落在窗口内
func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() && !t.After(w.Start) {
		return false
	}
	if !w.End.IsZero() && t.After(w.End) {
		return false
	}
	return true
}

// FilterByDate 保留时间戳落在 w 内的记录，保持原有顺序
//
// 窗口两侧都不设界时原样返回 entries。
func FilterByDate(entries []xentry.Entry, w Window) []xentry.Entry {
	if w.Unbounded() {
		return entries
	}
	out := make([]xentry.Entry, 0, len(entries))
	for _, e := range entries {
		if w.Contains(e.Time()) {
			out = append(out, e)
		}
	}
	return out
}
