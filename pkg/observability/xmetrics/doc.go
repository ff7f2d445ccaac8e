// Package xmetrics 提供日志扇出路径上的计数指标。
//
// # 设计理念
//
// 业务代码只依赖 Recorder 接口；默认实现基于 OpenTelemetry metric API，
// 未配置 MeterProvider 时使用全局 provider（默认即空实现）。
//
//	rec, err := xmetrics.NewOTelRecorder(xmetrics.WithMeterProvider(mp))
//	rec.RecordPersist(ctx, "json:/var/log/app.json", err)
//
// # 指标命名
//
//   - xjournal.sink.persist：每次写入 sink 计数一次，属性 sink / outcome（ok|error）
//   - xjournal.entry.dropped：低于最低级别被丢弃的记录，属性 level
package xmetrics
