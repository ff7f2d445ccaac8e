// Package xfile 提供日志存储使用的文件系统工具。
//
//   - [SanitizePath]: 路径格式净化（空路径、空字节、相对路径穿越、目录路径）
//   - [EnsureDir]: 确保文件的父目录存在
//   - [EnsureFile]: 文件不存在或为空时写入初始内容
//   - [WriteFileAtomic]: 临时文件 + rename 的整文件替换
//
// 路径穿越检测按路径段精确匹配，"..config" 这类文件名不会被误判。
// SanitizePath 接受绝对路径，只做格式校验，不做目录隔离。
package xfile
