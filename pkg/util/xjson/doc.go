// Package xjson 提供 JSON 序列化工具函数。
//
//   - [PrettyE]: 缩进格式化，返回 (string, error)，失败时包装 [ErrMarshal]
//   - [Pretty]: 便捷版本，失败时返回 "<marshal error: ...>" 标记字符串（非合法 JSON），
//     用于命令行输出和调试
//   - [Indent]: 指定缩进宽度的字节形式，供需要固定文件格式的调用方使用
//
// 遵循 [encoding/json] 默认行为，HTML 特殊字符会被转义。
package xjson
