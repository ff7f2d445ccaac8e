package xentry

import "errors"

var (
	// ErrMalformedEntry 存储的记录无法解码为 Entry（如时间戳不是 ISO-8601）。
	ErrMalformedEntry = errors.New("xentry: malformed entry")

	// ErrMissingField 存储的记录缺少 date、level 或 message 字段。
	ErrMissingField = errors.New("xentry: missing field")

	// ErrUnrecognizedLevel 级别名称不在级别表中。
	ErrUnrecognizedLevel = errors.New("xentry: unrecognized level")
)
