// Package xentry 定义日志条目（Entry）与严重级别表。
//
// # 条目
//
// [Entry] 是不可变值：时间戳、级别、消息三者缺一不可。
// 由 Logger 在记录时创建（时间戳取当前时间），或由 Sink 在读取时解码得到。
// 构造时剥离单调时钟读数，因此相等性只比较墙上时间。
//
// # 可移植形式
//
// [Entry.ToPortable] 输出三个命名字段（date/level/message），date 为 ISO-8601 文本
// （RFC3339Nano，保留时区偏移）。[FromPortable] 与 [Portable.Entry] 为其逆操作：
//
//   - 缺少字段返回 [ErrMissingField]
//   - date 无法按 ISO-8601 解析返回 [ErrMalformedEntry]
//
// 解析时同时接受不带时区的 "YYYY-MM-DDTHH:MM:SS[.ffffff]" 等形式（按 time.Local 解释），
// 便于读取其他工具写入的文件。
//
// # 级别
//
// DEBUG(0) < INFO(1) < WARNING(2) < ERROR(3) < CRITICAL(4)。
// 名称区分大小写，只认规范大写形式。级别表是包内常量，不可修改。
package xentry
