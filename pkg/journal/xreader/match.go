package xreader

import (
	"cmp"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/omeyang/xjournal/pkg/journal/xentry"
)

// MonthLayout 月份分组键格式
const MonthLayout = "2006-01"

// MatchText 保留消息包含 substring 的记录（区分大小写的字面量匹配）
func MatchText(entries []xentry.Entry, substring string) []xentry.Entry {
	out := make([]xentry.Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(e.Message(), substring) {
			out = append(out, e)
		}
	}
	return out
}

// MatchRegex 保留消息与 pattern 部分匹配的记录
//
// 匹配前 pattern 与消息都转为小写，因此 "info" 能匹配 "INFO test"。
// pattern 无法编译时返回 ErrInvalidPattern。
func MatchRegex(entries []xentry.Entry, pattern string) ([]xentry.Entry, error) {
	re, err := regexp.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	out := make([]xentry.Entry, 0, len(entries))
	for _, e := range entries {
		if re.MatchString(strings.ToLower(e.Message())) {
			out = append(out, e)
		}
	}
	return out, nil
}

// GroupByLevel 按级别分组，组内保持原有顺序，不产生空组
func GroupByLevel(entries []xentry.Entry) map[xentry.Level][]xentry.Entry {
	return groupBy(entries, xentry.Entry.Level)
}

// GroupByMonth 按 "YYYY-MM" 分组（使用记录自身的时区），组内保持原有顺序，不产生空组
//
// 各 sink 读回的时区不同（SQL 为 UTC，文件保留写入时的偏移），
// 跨 sink 比较分组结果时使用 GroupByMonthIn 固定时区。
func GroupByMonth(entries []xentry.Entry) map[string][]xentry.Entry {
	return GroupByMonthIn(entries, nil)
}

// GroupByMonthIn 在 loc 中计算月份后分组，loc 为 nil 时等同 GroupByMonth
func GroupByMonthIn(entries []xentry.Entry, loc *time.Location) map[string][]xentry.Entry {
	return groupBy(entries, func(e xentry.Entry) string {
		t := e.Time()
		if loc != nil {
			t = t.In(loc)
		}
		return t.Format(MonthLayout)
	})
}

func groupBy[K comparable](entries []xentry.Entry, key func(xentry.Entry) K) map[K][]xentry.Entry {
	groups := make(map[K][]xentry.Entry)
	for _, e := range entries {
		k := key(e)
		groups[k] = append(groups[k], e)
	}
	return groups
}

// SortedKeys 返回升序排列的分组键，用于确定性遍历
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}

// LevelKeys 返回级别分组键：已知级别按严重程度升序，未知级别按字典序排在最后
func LevelKeys[V any](m map[xentry.Level]V) []xentry.Level {
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, func(a, b xentry.Level) int {
		sa, oka := a.Severity()
		sb, okb := b.Severity()
		switch {
		case oka && okb:
			return cmp.Compare(sa, sb)
		case oka:
			return -1
		case okb:
			return 1
		default:
			return cmp.Compare(a, b)
		}
	})
	return keys
}
