package xfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

func containsNullByte(path string) bool {
	return strings.ContainsRune(path, 0)
}

// hasDotDotSegment 判断路径是否含有恰好为 ".." 的路径段，'/' 与 '\' 都视为分隔符。
func hasDotDotSegment(path string) bool {
	for _, seg := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return true
		}
	}
	return false
}

// SanitizePath 校验并规范化文件路径。
//
// 拒绝空路径、含空字节的路径、以分隔符结尾的目录路径，以及规范化后仍含 ".." 段的
// 相对路径。绝对路径中的 ".." 由 filepath.Clean 消解，不视为穿越。
func SanitizePath(filename string) (string, error) {
	if filename == "" {
		return "", ErrEmptyPath
	}
	if containsNullByte(filename) {
		return "", ErrNullByte
	}
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, "\\") {
		return "", fmt.Errorf("%w: %q is a directory", ErrInvalidPath, filename)
	}

	cleaned := filepath.Clean(filename)
	if hasDotDotSegment(cleaned) {
		return "", fmt.Errorf("%w: %q", ErrPathTraversal, filename)
	}

	base := filepath.Base(cleaned)
	if base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%w: no file name in %q", ErrInvalidPath, filename)
	}
	return cleaned, nil
}
