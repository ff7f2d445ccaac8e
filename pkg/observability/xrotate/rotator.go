package xrotate

import "io"

var _ io.WriteCloser = (Rotator)(nil)

// Rotator 日志轮转器
type Rotator interface {
	// Write 写入数据，达到轮转条件时自动轮转
	Write(p []byte) (n int, err error)

	// Close 关闭轮转器
	Close() error

	// Rotate 手动轮转：当前文件改名为备份，创建新文件
	Rotate() error
}
