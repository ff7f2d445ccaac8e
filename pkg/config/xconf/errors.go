package xconf

import "errors"

var (
	// ErrEmptyPath New 的 path 为空
	ErrEmptyPath = errors.New("xconf: empty config path")

	// ErrUnsupportedFormat 扩展名或格式名不是 yaml/json
	ErrUnsupportedFormat = errors.New("xconf: unsupported config format")

	// ErrLoadFailed 读取文件失败，包装底层 I/O 错误
	ErrLoadFailed = errors.New("xconf: failed to load config")

	// ErrParseFailed 内容不是合法的 YAML/JSON
	ErrParseFailed = errors.New("xconf: failed to parse config")

	// ErrUnmarshalFailed 无法映射到目标结构体（如 "abc" 写入 Duration 字段）
	ErrUnmarshalFailed = errors.New("xconf: failed to unmarshal config")

	// ErrNotFromFile NewFromBytes 创建的 Config 不能 Reload 或 Watch
	ErrNotFromFile = errors.New("xconf: config not created from file")
)
