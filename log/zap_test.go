// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buffer *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buffer.String()), "\n") {
		if line == "" {
			continue
		}
		entry := make(map[string]any)
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestZap(t *testing.T) {
	t.Run("With Debug level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(DebugLevel, buffer)
		logger.Debug("test debug")
		logger.Debugf("hello %s", "world")

		entries := decodeLines(t, buffer)
		require.Len(t, entries, 2)
		assert.Equal(t, "test debug", entries[0]["msg"])
		assert.Equal(t, "debug", entries[0]["level"])
		assert.Equal(t, "hello world", entries[1]["msg"])
		assert.Equal(t, DebugLevel, logger.LogLevel())
		assert.True(t, logger.Enabled(DebugLevel))
	})
	t.Run("With Info level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		logger.Debug("ignored")
		logger.Info("test info")
		logger.Infof("hello %s", "world")

		entries := decodeLines(t, buffer)
		require.Len(t, entries, 2)
		assert.Equal(t, "info", entries[0]["level"])
		assert.Equal(t, "hello world", entries[1]["msg"])
		assert.Equal(t, InfoLevel, logger.LogLevel())
		assert.False(t, logger.Enabled(DebugLevel))
	})
	t.Run("With Warn level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(WarningLevel, buffer)
		logger.Info("ignored")
		logger.Warn("test warn")
		logger.Warnf("hello %s", "world")

		entries := decodeLines(t, buffer)
		require.Len(t, entries, 2)
		assert.Equal(t, "warn", entries[0]["level"])
		assert.Equal(t, WarningLevel, logger.LogLevel())
	})
	t.Run("With Error level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(ErrorLevel, buffer)
		logger.Warn("ignored")
		logger.Error("test error")
		logger.Errorf("hello %s", "world")

		entries := decodeLines(t, buffer)
		require.Len(t, entries, 2)
		assert.Equal(t, "error", entries[0]["level"])
		assert.Contains(t, entries[0], "stacktrace")
		assert.Equal(t, ErrorLevel, logger.LogLevel())
	})
	t.Run("With fields", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer).With("actor", "counter", "processed", 3, "cause", errors.New("boom"), "dangling")
		logger.Info("with fields")

		entries := decodeLines(t, buffer)
		require.Len(t, entries, 1)
		assert.Equal(t, "counter", entries[0]["actor"])
		assert.EqualValues(t, 3, entries[0]["processed"])
		assert.Equal(t, "boom", entries[0]["cause"])
		assert.Equal(t, "dangling", entries[0]["_"])
	})
	t.Run("With no usable fields", func(t *testing.T) {
		logger := NewZap(InfoLevel, io.Discard)
		assert.Same(t, logger, logger.With())
		assert.Same(t, logger, logger.With(1, "non string key"))
	})
	t.Run("With outputs", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer, os.Stdout)
		assert.Equal(t, []io.Writer{buffer, os.Stdout}, logger.LogOutput())
		assert.NoError(t, logger.Flush())
	})
	t.Run("With file output", func(t *testing.T) {
		file, err := os.Create(filepath.Join(t.TempDir(), "actor.log"))
		require.NoError(t, err)
		defer file.Close()

		logger := NewZap(InfoLevel, file)
		logger.Info("persisted")
		require.NoError(t, logger.Flush())

		content, err := os.ReadFile(file.Name())
		require.NoError(t, err)
		assert.Contains(t, string(content), "persisted")
	})
}

func TestDiscard(t *testing.T) {
	logger := DiscardLogger
	logger.Debug("x")
	logger.Debugf("%s", "x")
	logger.Info("x")
	logger.Infof("%s", "x")
	logger.Warn("x")
	logger.Warnf("%s", "x")
	logger.Error("x")
	logger.Errorf("%s", "x")

	assert.Equal(t, InfoLevel, logger.LogLevel())
	assert.False(t, logger.Enabled(ErrorLevel))
	assert.Equal(t, DiscardLogger, logger.With("key", "value"))
	assert.Equal(t, []io.Writer{io.Discard}, logger.LogOutput())
	assert.NoError(t, logger.Flush())
}

func TestLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "INFO", InfoLevel.String())
	assert.Equal(t, "WARNING", WarningLevel.String())
	assert.Equal(t, "ERROR", ErrorLevel.String())
	assert.Equal(t, "INVALID", Level(42).String())
	assert.Equal(t, "INVALID", Level(-1).String())
}
