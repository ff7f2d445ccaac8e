package xfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"simple", "logs.json", "logs.json", nil},
		{"nested", "var/log/./app.csv", filepath.Clean("var/log/app.csv"), nil},
		{"absolute_dotdot", "/var/log/../tmp/a.txt", "/var/tmp/a.txt", nil},
		{"dotdot_prefix_name", "..config", "..config", nil},
		{"empty", "", "", ErrEmptyPath},
		{"null_byte", "a\x00b", "", ErrNullByte},
		{"directory", "logs/", "", ErrInvalidPath},
		{"backslash_directory", `logs\`, "", ErrInvalidPath},
		{"traversal", "../etc/passwd", "", ErrPathTraversal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizePath(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasDotDotSegment(t *testing.T) {
	assert.True(t, hasDotDotSegment("a/../b"))
	assert.True(t, hasDotDotSegment(`a\..\b`))
	assert.False(t, hasDotDotSegment("app..2024.log"))
	assert.False(t, hasDotDotSegment("...hidden"))
}
