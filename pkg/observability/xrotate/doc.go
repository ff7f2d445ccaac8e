// Package xrotate 为诊断日志提供按大小轮转的文件输出。
//
// [Rotator] 是 io.WriteCloser 的超集，额外提供 Rotate 手动触发轮转。
// 当前实现 [NewLumberjack] 基于 lumberjack v2，写入并发安全。
//
// 关闭后 Write/Rotate 返回 [ErrClosed]，重复 Close 也返回 [ErrClosed]。
package xrotate
