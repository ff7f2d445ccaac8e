// Package xsetup 从配置文件组装一套可用的日志系统。
//
// 配置示例（YAML，JSON 结构相同）：
//
//	level: INFO
//	retry: {attempts: 3, delay: 100ms}
//	diagnostics: {level: warn, format: text, file: ""}
//	sinks:
//	  - {type: json, path: logs.json}
//	  - {type: sql, driver: sqlite, dsn: logs.db, table: logs}
//	  - {type: redis, addr: 127.0.0.1:6379, key: "xjournal:logs"}
//	  - {type: mongo, uri: "mongodb://localhost:27017", database: xjournal, collection: logs}
//
// Build 按配置顺序创建 sink、诊断日志、Logger 和每个 sink 的 Reader。
// Journal.Close 释放 Redis/Mongo 客户端和诊断日志的轮转文件。
// WatchLevel 监视配置文件，level 变化时实时调整 Logger 的最低级别。
package xsetup
