package xfile

import (
	"os"
	"path/filepath"
)

// WriteFileAtomic 以"写临时文件再 rename"的方式整体替换文件内容。
//
// 临时文件与目标位于同一目录，保证 rename 不跨文件系统。
// 任一步骤失败都会删除临时文件，原文件保持不变。
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()         //nolint:errcheck // 失败路径上的清理
			_ = os.Remove(tmpName) //nolint:errcheck // 失败路径上的清理
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, filename)
}
