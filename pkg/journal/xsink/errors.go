package xsink

import "errors"

var (
	// ErrSinkUnavailable 无法访问存储（I/O 失败、连接失败、存储内容整体不可读）。
	ErrSinkUnavailable = errors.New("xsink: sink unavailable")

	// ErrEncode 记录无法编码为存储格式。
	ErrEncode = errors.New("xsink: encode failed")

	// ErrInvalidTable SQL 表名不是合法标识符。
	ErrInvalidTable = errors.New("xsink: invalid table name")

	// ErrUnsupportedDriver 不支持的 SQL 驱动。
	ErrUnsupportedDriver = errors.New("xsink: unsupported sql driver")

	// ErrNilClient 未提供客户端。
	ErrNilClient = errors.New("xsink: client is nil")

	// ErrEmptyKey Redis key 为空。
	ErrEmptyKey = errors.New("xsink: key is required")
)
