// Package xlog 基于 log/slog 的诊断日志库。
//
// xjournal 的各组件不会把内部故障（Sink 写入失败、读取失败、正则无效等）抛给调用方，
// 而是通过本包输出给运维人员。
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到第一个配置错误后，后续 Set 操作被跳过）：
//
//	logger, cleanup, err := xlog.New().
//		SetLevel(xlog.LevelWarn).
//		SetFormat("json").
//		SetRotation("/var/log/xjournal/diag.log").
//		Build()
//	defer cleanup()
//
// # 全局 Logger
//
//   - [Default]: 惰性初始化（stderr、Info 级别、text 格式）
//   - [SetDefault]: 替换全局 Logger（nil 被忽略）
//   - [ResetDefault]: 重置为未初始化状态（仅用于测试）
//   - [Discard]: 丢弃所有输出的 Logger，用于测试和静默场景
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)，与 slog 一致。
// [ParseLevel] 大小写不敏感，支持 "warning" 作为 "warn" 的别名。
//
// # 写入失败
//
// Handler 写入失败不会返回给调用方，只计数并调用 SetOnError 注册的回调。
package xlog
