package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizbox/internal/config"
)

func TestNew_NoFileIsNop(t *testing.T) {
	l, err := New(&config.Config{Log: config.Log{Level: "info"}})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quiz.log")
	cfg := &config.Config{Env: "production", Log: config.Log{File: path, Level: "debug"}}

	l, err := New(cfg)
	require.NoError(t, err)
	l.Debug("hello")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"app":"quizbox"`)
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.log")
	l, err := New(&config.Config{Log: config.Log{File: path, Level: "warn"}})
	require.NoError(t, err)

	l.Info("skipped")
	l.Warn("kept")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "skipped")
	assert.Contains(t, string(data), "kept")
}
