package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty working dir with no user config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.Int64("seed", 0, "")
	fs.String("log-file", "", "")
	fs.String("log-level", "info", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("QUIZBOX_ENV", "production")
	t.Setenv("QUIZBOX_SEED", "42")
	t.Setenv("QUIZBOX_LOG_LEVEL", "debug")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("QUIZBOX_SEED=7\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("QUIZBOX_SEED") })

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	yaml := "seed: 11\nlog:\n  file: quiz.log\n  level: warn\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(11), cfg.Seed)
	assert.Equal(t, "quiz.log", cfg.Log.File)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_ExplicitConfigFlag(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env: production\n"), 0o644))

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--config", path}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_BadConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: [unterminated\n"), 0o644))

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--config", path}))

	_, err := Load(fs)
	require.Error(t, err)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("QUIZBOX_SEED", "42")
	t.Setenv("QUIZBOX_LOG_FILE", "env.log")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--seed", "5"}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cfg.Seed)
	// Unset flags do not shadow env values.
	assert.Equal(t, "env.log", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	isolate(t)
	t.Setenv("QUIZBOX_LOG_LEVEL", "loud")

	_, err := Load(nil)
	require.ErrorIs(t, err, ErrInvalidLogLevel)
}
