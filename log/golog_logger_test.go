package log

import (
	"bytes"
	"testing"

	"github.com/kataras/golog"
	"github.com/stretchr/testify/assert"
)

func TestNewGologLogger(t *testing.T) {
	logger := NewGologLogger(golog.New())

	assert.NotNil(t, logger)
	assert.Equal(t, LogLevelInfo, logger.GetLevel())
}

func TestGologLogger_LevelControl(t *testing.T) {
	logger := NewGologLogger(golog.New())

	logger.SetLevel(LogLevelDebug)
	assert.Equal(t, LogLevelDebug, logger.GetLevel())

	logger.SetLevel(LogLevelError)
	assert.Equal(t, LogLevelError, logger.GetLevel())

	logger.SetLevel(LogLevelNone)
	assert.Equal(t, LogLevelNone, logger.GetLevel())
}

func TestGologLogger_FormatsMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterGologLogger(&buf, LogLevelDebug)

	logger.Debug("roadmap for %q", "Optics")
	logger.Info("found %d articles", 3)
	logger.Warn("no video for %s", "Vectors")
	logger.Error("upstream: %v", "quota exceeded")

	out := buf.String()
	assert.Contains(t, out, `roadmap for "Optics"`)
	assert.Contains(t, out, "found 3 articles")
	assert.Contains(t, out, "no video for Vectors")
	assert.Contains(t, out, "upstream: quota exceeded")
	assert.Contains(t, out, "[studymap] ")
	assert.NotContains(t, out, "%!")
}

func TestGologLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterGologLogger(&buf, LogLevelError)

	logger.Debug("filtered debug")
	logger.Info("filtered info")
	logger.Warn("filtered warn")
	logger.Error("kept error")

	out := buf.String()
	assert.NotContains(t, out, "filtered")
	assert.Contains(t, out, "kept error")

	buf.Reset()
	logger.SetLevel(LogLevelNone)
	logger.Error("silenced")
	assert.Empty(t, buf.String())
}
