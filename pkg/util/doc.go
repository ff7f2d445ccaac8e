// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xfile: 路径清理、目录与文件创建、原子写文件
//   - xjson: JSON 缩进输出
package util
