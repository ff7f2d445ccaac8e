package xlog

import "log/slog"

// 常用属性 key
const (
	KeyError     = "error"
	KeyComponent = "component"
	KeySink      = "sink"
	KeyCount     = "count"
)

// Err 创建错误属性；err 为 nil 时返回空属性（被 slog 忽略）
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Component 组件名称属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Sink 存储后端名称属性
func Sink(name string) slog.Attr {
	return slog.String(KeySink, name)
}

// Count 计数属性
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}
