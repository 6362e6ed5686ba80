package main

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "") // restored on cleanup
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetenv(t, "GARDENPLOTS_LOG_LEVEL")
	unsetenv(t, "GARDENPLOTS_LOG_FORMAT")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "info", LogFormat: "auto"}, cfg)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("GARDENPLOTS_LOG_LEVEL", "debug")
	t.Setenv("GARDENPLOTS_LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestNewLogger(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := newLogger(&buf, "warn", "json")
		require.NoError(t, err)
		l.Info("dropped")
		l.Warn("kept", "n", 3)
		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), `"msg":"kept"`)
		assert.Contains(t, buf.String(), `"n":3`)
	})

	t.Run("Text", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := newLogger(&buf, "DEBUG", "text")
		require.NoError(t, err)
		l.Debug("hello")
		assert.Contains(t, buf.String(), "level=DEBUG msg=hello")
	})

	t.Run("AutoOffTerminal", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := newLogger(&buf, "info", "auto")
		require.NoError(t, err)
		l.Info("hello")
		assert.Contains(t, buf.String(), `"msg":"hello"`)
	})

	t.Run("BadLevel", func(t *testing.T) {
		_, err := newLogger(&bytes.Buffer{}, "loud", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `log level "loud"`)
	})

	t.Run("BadFormat", func(t *testing.T) {
		_, err := newLogger(&bytes.Buffer{}, "info", "xml")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrLogFormat))
	})
}
