package xlog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level 诊断日志级别，取值与 slog.Level 相同
type Level slog.Level

const (
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// levelNames 配置中可用的名称，warning 是 warn 的别名
var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// String 与 slog 一致："DEBUG"、"WARN"、"INFO+2" 等
func (l Level) String() string {
	return slog.Level(l).String()
}

// ParseLevel 解析级别名称，忽略大小写与首尾空白
func ParseLevel(s string) (Level, error) {
	if l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l, nil
	}
	return LevelInfo, fmt.Errorf("xlog: unknown level %q", s)
}
