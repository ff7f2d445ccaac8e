package xsetup

import "errors"

var (
	// ErrNoSinks 配置中没有 sink。
	ErrNoSinks = errors.New("xsetup: no sinks configured")

	// ErrUnknownSinkType 未知的 sink 类型。
	ErrUnknownSinkType = errors.New("xsetup: unknown sink type")

	// ErrMissingSetting sink 缺少必填字段。
	ErrMissingSetting = errors.New("xsetup: missing setting")

	// ErrInvalidSetting 字段取值非法。
	ErrInvalidSetting = errors.New("xsetup: invalid setting")

	// ErrSinkIndex sink 下标越界。
	ErrSinkIndex = errors.New("xsetup: sink index out of range")
)
