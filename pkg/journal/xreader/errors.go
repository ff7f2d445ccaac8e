package xreader

import "errors"

// ErrInvalidPattern 正则表达式无法编译。
var ErrInvalidPattern = errors.New("xreader: invalid pattern")
