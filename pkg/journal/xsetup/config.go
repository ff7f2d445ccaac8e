package xsetup

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/omeyang/xjournal/pkg/config/xconf"
	"github.com/omeyang/xjournal/pkg/journal/xentry"
	"github.com/omeyang/xjournal/pkg/journal/xsink"
	"github.com/omeyang/xjournal/pkg/observability/xlog"
)

// DefaultConfigFile 默认配置文件名
const DefaultConfigFile = "xjournal.yaml"

// Sink 类型
const (
	SinkJSON  = "json"
	SinkCSV   = "csv"
	SinkText  = "text"
	SinkSQL   = "sql"
	SinkRedis = "redis"
	SinkMongo = "mongo"
)

// 默认值
const (
	DefaultDriver     = "sqlite"
	DefaultRedisKey   = "xjournal:logs"
	DefaultDatabase   = "xjournal"
	DefaultCollection = "logs"
	DefaultDiagLevel  = "warn"
)

// Config 顶层配置
type Config struct {
	// Level 最低级别，空值为 DEBUG
	Level       string            `koanf:"level"`
	Retry       RetryConfig       `koanf:"retry"`
	Diagnostics DiagnosticsConfig `koanf:"diagnostics"`
	Sinks       []SinkConfig      `koanf:"sinks"`
}

// RetryConfig 每个 sink 的写入重试
type RetryConfig struct {
	Attempts int           `koanf:"attempts"`
	Delay    time.Duration `koanf:"delay"`
}

// DiagnosticsConfig 诊断日志
type DiagnosticsConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	// File 非空时写入按大小轮转的文件，否则写 stderr
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
}

// SinkConfig 单个 sink，按 Type 使用不同字段
type SinkConfig struct {
	Type string `koanf:"type"`

	// json / csv / text
	Path string `koanf:"path"`

	// sql
	Driver string `koanf:"driver"`
	DSN    string `koanf:"dsn"`
	Table  string `koanf:"table"`

	// redis
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	Key      string `koanf:"key"`

	// mongo
	URI        string `koanf:"uri"`
	Database   string `koanf:"database"`
	Collection string `koanf:"collection"`
}

// Load 读取配置文件（.yaml/.yml/.json）并校验
func Load(path string) (*Config, error) {
	c, err := xconf.New(path)
	if err != nil {
		return nil, err
	}
	return FromConfig(c)
}

// Parse 从字节数据解析配置并校验，format 为 "yaml" 或 "json"
func Parse(data []byte, format string) (*Config, error) {
	f, err := xconf.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	c, err := xconf.NewFromBytes(data, f)
	if err != nil {
		return nil, err
	}
	return FromConfig(c)
}

// FromConfig 从已加载的 xconf.Config 反序列化并校验
func FromConfig(c xconf.Config) (*Config, error) {
	var cfg Config
	if err := c.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults 补齐可选字段
func (c *Config) applyDefaults() {
	if c.Level == "" {
		c.Level = string(xentry.LevelDebug)
	}
	if c.Retry.Attempts == 0 {
		c.Retry.Attempts = 1
	}
	if c.Diagnostics.Level == "" {
		c.Diagnostics.Level = DefaultDiagLevel
	}
	for i := range c.Sinks {
		s := &c.Sinks[i]
		s.Type = strings.ToLower(strings.TrimSpace(s.Type))
		switch s.Type {
		case SinkSQL:
			if s.Driver == "" {
				s.Driver = DefaultDriver
			}
			if s.Table == "" {
				s.Table = xsink.DefaultTable
			}
		case SinkRedis:
			if s.Key == "" {
				s.Key = DefaultRedisKey
			}
		case SinkMongo:
			if s.Database == "" {
				s.Database = DefaultDatabase
			}
			if s.Collection == "" {
				s.Collection = DefaultCollection
			}
		}
	}
}

// Validate 校验配置，返回全部问题
func (c *Config) Validate() error {
	var errs []error
	if _, err := xentry.ParseLevel(c.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: level: %w", ErrInvalidSetting, err))
	}
	if c.Retry.Attempts < 0 || c.Retry.Delay < 0 {
		errs = append(errs, fmt.Errorf("%w: retry must not be negative", ErrInvalidSetting))
	}
	if c.Diagnostics.Level != "" {
		if _, err := xlog.ParseLevel(c.Diagnostics.Level); err != nil {
			errs = append(errs, fmt.Errorf("%w: diagnostics.level: %w", ErrInvalidSetting, err))
		}
	}
	if len(c.Sinks) == 0 {
		errs = append(errs, ErrNoSinks)
	}
	for i, s := range c.Sinks {
		if err := s.validate(); err != nil {
			errs = append(errs, fmt.Errorf("sinks[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (s SinkConfig) validate() error {
	switch s.Type {
	case SinkJSON, SinkCSV, SinkText:
		return requireSetting("path", s.Path)
	case SinkSQL:
		if !slices.Contains(xsink.Drivers(), s.Driver) {
			return fmt.Errorf("%w: driver %q", ErrInvalidSetting, s.Driver)
		}
		return requireSetting("dsn", s.DSN)
	case SinkRedis:
		return requireSetting("addr", s.Addr)
	case SinkMongo:
		return requireSetting("uri", s.URI)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSinkType, s.Type)
	}
}

func requireSetting(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrMissingSetting, name)
	}
	return nil
}
