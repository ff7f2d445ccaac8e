package xretry

import (
	"errors"

	retry "github.com/avast/retry-go/v5"
)

var (
	// ErrNilRetryer 接收者为 nil。
	ErrNilRetryer = errors.New("xretry: nil retryer")

	// ErrNilFunc 未提供待执行函数。
	ErrNilFunc = errors.New("xretry: nil function")
)

// Permanent 将错误标记为不可恢复，Do 遇到后立即返回
//
// 返回的错误保留原错误链，errors.Is 仍可匹配。nil 原样返回。
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return retry.Unrecoverable(err)
}

