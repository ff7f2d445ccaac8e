package xreader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xjournal/pkg/journal/xentry"
)

var t0 = time.Date(2025, 6, 25, 18, 30, 0, 0, time.UTC)

func at(offset time.Duration, level xentry.Level, msg string) xentry.Entry {
	return xentry.New(t0.Add(offset), level, msg)
}

func messages(entries []xentry.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Message())
	}
	return out
}

func TestFilterByDate(t *testing.T) {
	entries := []xentry.Entry{
		at(-time.Second, xentry.LevelInfo, "T-1"),
		at(0, xentry.LevelInfo, "T"),
		at(time.Second, xentry.LevelInfo, "T+1"),
	}

	tests := []struct {
		name string
		w    Window
		want []string
	}{
		{"Unbounded", Window{}, []string{"T-1", "T", "T+1"}},
		{"StartExclusiveEndInclusive", Between(t0, t0.Add(time.Second)), []string{"T+1"}},
		{"OnlyStart", Since(t0), []string{"T+1"}},
		{"OnlyEnd", Until(t0), []string{"T-1", "T"}},
		{"EmptyWindow", Between(t0, t0), []string{}},
		{"InvertedWindow", Between(t0.Add(time.Second), t0), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messages(FilterByDate(entries, tt.w)))
		})
	}
}

func TestFilterByDate_ChainedWindowsPartition(t *testing.T) {
	var entries []xentry.Entry
	for i := range 10 {
		entries = append(entries, at(time.Duration(i)*time.Minute, xentry.LevelInfo, "m"))
	}

	first := FilterByDate(entries, Until(t0.Add(3*time.Minute)))
	second := FilterByDate(entries, Between(t0.Add(3*time.Minute), t0.Add(6*time.Minute)))
	third := FilterByDate(entries, Since(t0.Add(6*time.Minute)))
	assert.Len(t, first, 4)
	assert.Len(t, second, 3)
	assert.Len(t, third, 3)
}

func TestFilterByDate_ZoneIndependent(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*3600)
	e := xentry.New(t0.In(shanghai), xentry.LevelInfo, "same instant")

	assert.Empty(t, FilterByDate([]xentry.Entry{e}, Since(t0)))
	assert.Len(t, FilterByDate([]xentry.Entry{e}, Until(t0)), 1)
}

func TestMatchText(t *testing.T) {
	entries := []xentry.Entry{
		at(0, xentry.LevelInfo, "INFO test"),
		at(0, xentry.LevelInfo, "info lower"),
		at(0, xentry.LevelInfo, "a.b literal"),
	}
	assert.Equal(t, []string{"INFO test"}, messages(MatchText(entries, "INFO")))
	assert.Equal(t, []string{"a.b literal"}, messages(MatchText(entries, "a.b")))
	assert.Len(t, MatchText(entries, ""), 3)
}

func TestMatchRegex(t *testing.T) {
	entries := []xentry.Entry{
		at(0, xentry.LevelInfo, "INFO test"),
		at(0, xentry.LevelInfo, "Information"),
		at(0, xentry.LevelInfo, "unrelated"),
		at(0, xentry.LevelInfo, "First run"),
	}

	got, err := MatchRegex(entries, "info")
	require.NoError(t, err)
	assert.Equal(t, []string{"INFO test", "Information"}, messages(got))

	got, err = MatchRegex(entries, "^FIRST")
	require.NoError(t, err)
	assert.Equal(t, []string{"First run"}, messages(got))

	got, err = MatchRegex(entries, "(")
	assert.ErrorIs(t, err, ErrInvalidPattern)
	assert.Nil(t, got)
}

func TestGroupByLevel(t *testing.T) {
	var entries []xentry.Entry
	for i, l := range xentry.Levels() {
		entries = append(entries, at(time.Duration(i)*time.Second, l, string(l)))
	}
	entries = append(entries, at(time.Minute, xentry.LevelInfo, "second info"))

	groups := GroupByLevel(entries)
	require.Len(t, groups, 5)
	for _, l := range xentry.Levels() {
		assert.NotEmpty(t, groups[l])
	}
	assert.Equal(t, []string{"INFO", "second info"}, messages(groups[xentry.LevelInfo]))

	assert.Empty(t, GroupByLevel(nil))
}

func TestGroupByMonth(t *testing.T) {
	entries := []xentry.Entry{
		xentry.New(time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC), xentry.LevelInfo, "dec"),
		xentry.New(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), xentry.LevelInfo, "jan-1"),
		xentry.New(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), xentry.LevelError, "jan-2"),
		// 记录自身时区中仍是 12 月
		xentry.New(time.Date(2024, 12, 31, 23, 30, 0, 0, time.FixedZone("", -5*3600)), xentry.LevelInfo, "dec-local"),
	}

	groups := GroupByMonth(entries)
	assert.Equal(t, []string{"2024-12", "2025-01"}, SortedKeys(groups))
	assert.Equal(t, []string{"dec", "dec-local"}, messages(groups["2024-12"]))
	assert.Equal(t, []string{"jan-1", "jan-2"}, messages(groups["2025-01"]))
	for _, g := range groups {
		assert.NotEmpty(t, g)
	}
}

func TestGroupByMonthIn(t *testing.T) {
	// 同一时刻：UTC 已是 1 月，-05:00 仍是 12 月
	local := xentry.New(time.Date(2024, 12, 31, 23, 30, 0, 0, time.FixedZone("", -5*3600)), xentry.LevelInfo, "local")
	utc := xentry.New(local.Time().UTC(), xentry.LevelInfo, "utc")
	entries := []xentry.Entry{local, utc}

	own := GroupByMonthIn(entries, nil)
	assert.Equal(t, []string{"2024-12", "2025-01"}, SortedKeys(own))
	assert.Equal(t, own, GroupByMonth(entries))

	fixed := GroupByMonthIn(entries, time.UTC)
	assert.Equal(t, []string{"2025-01"}, SortedKeys(fixed))
	assert.Equal(t, []string{"local", "utc"}, messages(fixed["2025-01"]))
	assert.Equal(t, -5*3600, zoneOffset(fixed["2025-01"][0]), "entries keep their own zone")
}

func zoneOffset(e xentry.Entry) int {
	_, off := e.Time().Zone()
	return off
}

func TestLevelKeys(t *testing.T) {
	groups := map[xentry.Level][]xentry.Entry{
		"TRACE":              nil,
		xentry.LevelCritical: nil,
		xentry.LevelDebug:    nil,
		"AUDIT":              nil,
		xentry.LevelWarning:  nil,
	}
	assert.Equal(t, []xentry.Level{
		xentry.LevelDebug, xentry.LevelWarning, xentry.LevelCritical, "AUDIT", "TRACE",
	}, LevelKeys(groups))
}
