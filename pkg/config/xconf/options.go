package xconf

// loadOptions 加载选项，零值由 applyOptions 补全
type loadOptions struct {
	delim string
	tag   string
}

// Option 配置加载选项
type Option func(*loadOptions)

func applyOptions(opts []Option) *loadOptions {
	o := &loadOptions{delim: ".", tag: "koanf"}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithDelim 设置嵌套键的分隔符（默认 "."），空串忽略
func WithDelim(delim string) Option {
	return func(o *loadOptions) {
		if delim != "" {
			o.delim = delim
		}
	}
}

// WithTag 设置 Unmarshal 读取的结构体标签（默认 "koanf"），空串忽略
func WithTag(tag string) Option {
	return func(o *loadOptions) {
		if tag != "" {
			o.tag = tag
		}
	}
}
