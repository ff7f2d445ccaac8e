package xfile

import (
	"os"
	"path/filepath"
)

// DefaultDirPerm 默认目录权限（gosec G301）。
const DefaultDirPerm = 0750

// DefaultFilePerm 默认文件权限。
const DefaultFilePerm = 0644

// EnsureDir 确保 filename 的父目录存在，已存在时不做修改。
func EnsureDir(filename string) error {
	if filename == "" {
		return ErrEmptyPath
	}
	if containsNullByte(filename) {
		return ErrNullByte
	}
	dir := filepath.Dir(filename)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, DefaultDirPerm)
}

// EnsureFile 在文件不存在或为空时写入 initial，返回是否发生了写入。
//
// 已有内容的文件保持原样。父目录不存在时自动创建。
func EnsureFile(filename string, initial []byte) (bool, error) {
	info, err := os.Stat(filename)
	switch {
	case err == nil && info.Size() > 0:
		return false, nil
	case err != nil && !os.IsNotExist(err):
		return false, err
	}
	if err := EnsureDir(filename); err != nil {
		return false, err
	}
	if err := os.WriteFile(filename, initial, DefaultFilePerm); err != nil {
		return false, err
	}
	return true, nil
}
