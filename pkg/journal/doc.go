// Package journal 提供日志记录的写入、持久化与查询。
//
// 子包列表：
//   - xentry: 日志记录与级别，时间戳的 ISO-8601 格式化与解析
//   - xsink: 持久化后端（JSON、CSV、文本、SQL、Redis、MongoDB）
//   - xlogger: 按最低级别过滤并扇出到全部 sink
//   - xreader: 对单个 sink 的时间窗口、文本、正则查询与分组
//   - xsetup: 从配置文件组装上述组件
//
// 依赖方向：xentry ← xsink ← xlogger/xreader ← xsetup。
package journal
