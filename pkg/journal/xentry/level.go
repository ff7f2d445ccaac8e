package xentry

import "fmt"

// Level 日志级别名称（规范大写形式）。
type Level string

// 已知级别。
const (
	LevelDebug    Level = "DEBUG"
	LevelInfo     Level = "INFO"
	LevelWarning  Level = "WARNING"
	LevelError    Level = "ERROR"
	LevelCritical Level = "CRITICAL"
)

// severityTable 级别到序数的固定映射，仅在包内只读访问。
var severityTable = map[Level]int{
	LevelDebug:    0,
	LevelInfo:     1,
	LevelWarning:  2,
	LevelError:    3,
	LevelCritical: 4,
}

// Levels 按严重程度升序返回全部已知级别。
func Levels() []Level {
	return []Level{LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical}
}

// Severity 返回级别序数；未知级别返回 (0, false)。
func (l Level) Severity() (int, bool) {
	s, ok := severityTable[l]
	return s, ok
}

// IsValid 判断是否为已知级别。
func (l Level) IsValid() bool {
	_, ok := severityTable[l]
	return ok
}

// String 返回级别名称。
func (l Level) String() string {
	return string(l)
}

// ParseLevel 解析级别名称。
//
// 区分大小写："info" 不是合法级别。这样拼写错误不会被静默接受。
func ParseLevel(name string) (Level, error) {
	l := Level(name)
	if !l.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedLevel, name)
	}
	return l, nil
}
