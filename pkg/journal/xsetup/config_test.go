package xsetup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xjournal/pkg/config/xconf"
	"github.com/omeyang/xjournal/pkg/journal/xsink"
)

const fullYAML = `
level: WARNING
retry: {attempts: 3, delay: 150ms}
diagnostics: {level: error, format: json}
sinks:
  - {type: json, path: logs.json}
  - {type: CSV, path: logs.csv}
  - {type: text, path: logs.txt}
  - {type: sql, dsn: logs.db}
  - {type: redis, addr: "127.0.0.1:6379"}
  - {type: mongo, uri: "mongodb://localhost:27017"}
`

func TestParse_Full(t *testing.T) {
	cfg, err := Parse([]byte(fullYAML), "yaml")
	require.NoError(t, err)

	assert.Equal(t, "WARNING", cfg.Level)
	assert.Equal(t, RetryConfig{Attempts: 3, Delay: 150 * time.Millisecond}, cfg.Retry)
	assert.Equal(t, "error", cfg.Diagnostics.Level)
	assert.Equal(t, "json", cfg.Diagnostics.Format)

	require.Len(t, cfg.Sinks, 6)
	assert.Equal(t, SinkCSV, cfg.Sinks[1].Type)
	assert.Equal(t, SinkConfig{Type: SinkSQL, Driver: DefaultDriver, DSN: "logs.db", Table: xsink.DefaultTable}, cfg.Sinks[3])
	assert.Equal(t, DefaultRedisKey, cfg.Sinks[4].Key)
	assert.Equal(t, DefaultDatabase, cfg.Sinks[5].Database)
	assert.Equal(t, DefaultCollection, cfg.Sinks[5].Collection)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(`{"sinks": [{"type": "text", "path": "a.txt"}]}`), "json")
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.Level)
	assert.Equal(t, 1, cfg.Retry.Attempts)
	assert.Equal(t, DefaultDiagLevel, cfg.Diagnostics.Level)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("sinks: []"), "toml")
	assert.ErrorIs(t, err, xconf.ErrUnsupportedFormat)

	_, err = Parse([]byte("sinks: [unclosed"), "yaml")
	assert.ErrorIs(t, err, xconf.ErrParseFailed)

	_, err = Parse([]byte("retry: {delay: later}\nsinks: [{type: text, path: a}]"), "yaml")
	assert.ErrorIs(t, err, xconf.ErrUnmarshalFailed)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want []error
	}{
		{"NoSinks", "level: INFO", []error{ErrNoSinks}},
		{"UnknownType", "sinks: [{type: kafka}]", []error{ErrUnknownSinkType}},
		{"MissingPath", "sinks: [{type: json}]", []error{ErrMissingSetting}},
		{"MissingDSN", "sinks: [{type: sql}]", []error{ErrMissingSetting}},
		{"BadDriver", "sinks: [{type: sql, driver: mysql, dsn: x}]", []error{ErrInvalidSetting}},
		{"MissingAddr", "sinks: [{type: redis}]", []error{ErrMissingSetting}},
		{"MissingURI", "sinks: [{type: mongo}]", []error{ErrMissingSetting}},
		{"LowercaseLevel", "level: info\nsinks: [{type: text, path: a}]", []error{ErrInvalidSetting}},
		{"BadDiagLevel", "diagnostics: {level: loud}\nsinks: [{type: text, path: a}]", []error{ErrInvalidSetting}},
		{"NegativeRetry", "retry: {attempts: -1}\nsinks: [{type: text, path: a}]", []error{ErrInvalidSetting}},
		{"Several", "level: nope\nsinks: [{type: json}, {type: ftp}]", []error{ErrInvalidSetting, ErrMissingSetting, ErrUnknownSinkType}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), "yaml")
			require.Error(t, err)
			for _, want := range tt.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journal.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"level": "ERROR", "sinks": [{"type": "json", "path": "x.json"}]}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ERROR", cfg.Level)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, xconf.ErrLoadFailed)
}
