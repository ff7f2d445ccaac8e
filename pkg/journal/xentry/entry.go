package xentry

import (
	"fmt"
	"time"
)

// 可移植形式的字段名。
const (
	FieldDate    = "date"
	FieldLevel   = "level"
	FieldMessage = "message"
)

// Entry 一条不可变日志记录。
type Entry struct {
	t       time.Time
	level   Level
	message string
}

// New 创建 Entry。
//
// 单调时钟读数会被剥离（t.Round(0)），使 == 与 Equal 只比较墙上时间。
func New(t time.Time, level Level, message string) Entry {
	return Entry{t: t.Round(0), level: level, message: message}
}

// Time 返回时间戳。
func (e Entry) Time() time.Time { return e.t }

// Level 返回级别。
func (e Entry) Level() Level { return e.level }

// Message 返回消息。
func (e Entry) Message() string { return e.message }

// Equal 逐字段比较，时间戳使用 time.Time.Equal（忽略时区表示差异）。
func (e Entry) Equal(other Entry) bool {
	return e.t.Equal(other.t) && e.level == other.level && e.message == other.message
}

// String 返回便于阅读的表示。
func (e Entry) String() string {
	return fmt.Sprintf("Entry(date=%s, level='%s', message='%s')", FormatTime(e.t), e.level, e.message)
}

// Portable Entry 的可序列化形式，三个字段均为文本。
type Portable struct {
	Date    string `json:"date" bson:"date"`
	Level   string `json:"level" bson:"level"`
	Message string `json:"message" bson:"message"`
}

// ToPortable 转换为可移植形式。
func (e Entry) ToPortable() Portable {
	return Portable{
		Date:    FormatTime(e.t),
		Level:   string(e.level),
		Message: e.message,
	}
}

// Map 以字段名为 key 返回可移植形式。
func (p Portable) Map() map[string]string {
	return map[string]string{
		FieldDate:    p.Date,
		FieldLevel:   p.Level,
		FieldMessage: p.Message,
	}
}

// Entry 将可移植形式解码为 Entry。
//
// 结构体形式无法区分"缺失"与"空值"，因此 date、level 为空视为缺失；
// message 允许为空字符串。
func (p Portable) Entry() (Entry, error) {
	if p.Date == "" {
		return Entry{}, fmt.Errorf("%w: %s", ErrMissingField, FieldDate)
	}
	if p.Level == "" {
		return Entry{}, fmt.Errorf("%w: %s", ErrMissingField, FieldLevel)
	}
	t, err := ParseTime(p.Date)
	if err != nil {
		return Entry{}, err
	}
	return New(t, Level(p.Level), p.Message), nil
}

// FromPortable 从字段映射解码 Entry。
//
// 任一字段缺失返回 ErrMissingField；date 不可解析返回 ErrMalformedEntry。
// 级别不做校验：读取到的未知级别原样保留，由使用方决定如何处理。
func FromPortable(fields map[string]string) (Entry, error) {
	for _, key := range []string{FieldDate, FieldLevel, FieldMessage} {
		if _, ok := fields[key]; !ok {
			return Entry{}, fmt.Errorf("%w: %s", ErrMissingField, key)
		}
	}
	t, err := ParseTime(fields[FieldDate])
	if err != nil {
		return Entry{}, err
	}
	return New(t, Level(fields[FieldLevel]), fields[FieldMessage]), nil
}
