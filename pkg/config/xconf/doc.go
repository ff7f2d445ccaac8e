// Package xconf 提供配置加载和解析功能，基于 koanf 实现。
//
// # 设计理念
//
// xconf 只负责文件/字节数据的加载、反序列化、重载和文件监视，
// 不负责配置治理（必选字段校验、默认值注入），这些由上层按需实现。
//
//   - 工厂函数：New, NewFromBytes
//   - Client() 暴露底层 koanf 实例
//   - 增值功能：并发安全的 Reload、Unmarshal、Watch
//
// # 支持的格式
//
//   - YAML（推荐）：.yaml, .yml
//   - JSON：.json
//
// # 并发安全
//
// Reload() 通过互斥锁串行化，解析成功后原子替换 koanf 实例；
// Client() 与 Unmarshal() 无锁读取当前实例。Client() 返回的指针在 Reload()
// 之后仍然可用，但指向旧快照，不要长期缓存。
//
// # Unmarshal
//
// 使用 mapstructure 反序列化，允许弱类型转换，字符串 "100ms" 可以解到 time.Duration。
//
// # 配置监视
//
// Watch 基于 fsnotify 监视配置文件所在目录（兼容编辑器的原子写入），
// 内置防抖。Stop() 返回后监视 goroutine 已退出。
package xconf
