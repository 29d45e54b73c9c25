package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.grampus.dev/grampus/internal/adapters/logger"
)

func TestLogger(t *testing.T) {
	l := logger.New()
	buf := new(bytes.Buffer)
	l.SetOutput(buf)

	l.Info("loading documents")
	l.Warn("edges will be duplicated")
	l.Error(errors.New("store unavailable"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "loading documents")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "edges will be duplicated")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "store unavailable")
}
