package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"", LogLevelInfo},
		{" warn ", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"none", LogLevelNone},
		{"off", LogLevelNone},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "NONE", LogLevelNone.String())
	assert.Equal(t, "UNKNOWN(9)", LogLevel(9).String())
}

func TestDefault(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	assert.IsType(t, &GologLogger{}, prev)

	var buf bytes.Buffer
	l := NewWriterGologLogger(&buf, LogLevelDebug)
	SetDefault(l)
	assert.Same(t, l, Default())

	OrDefault(nil).Info("resources for %s", "Optics")
	assert.Contains(t, buf.String(), "resources for Optics")

	other := &NoOpLogger{}
	assert.Same(t, other, OrDefault(other))

	SetDefault(nil)
	assert.IsType(t, &NoOpLogger{}, Default())
}
