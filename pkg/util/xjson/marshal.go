package xjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMarshal JSON 序列化失败。
var ErrMarshal = errors.New("xjson: marshal failed")

// defaultIndent 默认缩进宽度。
const defaultIndent = 2

// Indent 以 width 个空格缩进序列化 v。width <= 0 时输出紧凑形式。
func Indent(v any, width int) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if width <= 0 {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", width))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMarshal, err)
	}
	return data, nil
}

// PrettyE 将 v 序列化为两空格缩进的 JSON 字符串。
func PrettyE(v any) (string, error) {
	data, err := Indent(v, defaultIndent)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Pretty 与 PrettyE 相同，失败时返回 "<marshal error: ...>"。
func Pretty(v any) string {
	s, err := PrettyE(v)
	if err != nil {
		return fmt.Sprintf("<marshal error: %v>", err)
	}
	return s
}
