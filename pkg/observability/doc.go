// Package observability 提供日志系统自身的运维观测子包。
//
// 子包列表：
//   - xlog: 诊断日志，基于 log/slog，记录 sink 失败、读取失败等内部事件
//   - xrotate: 诊断日志文件轮转
//   - xmetrics: 写入与丢弃计数，基于 OpenTelemetry metric
//
// 这些子包只服务于运维排查，与用户通过 xlogger 写入的日志记录互不相干。
package observability
