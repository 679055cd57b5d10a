package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ezrec/risc16/engine"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.NoError(cfg.Validate())
	assert.Equal(engine.DefaultOptions(), cfg.Options())
	assert.Empty(cfg.Exercises)

	level, err := cfg.Level()
	assert.NoError(err)
	assert.Equal(zapcore.InfoLevel, level)

	names, err := cfg.Store().List()
	assert.NoError(err)
	assert.Contains(names, "add.txt")
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(ENV_EXERCISES, "")
	os.Unsetenv(ENV_EXERCISES)
	t.Setenv(ENV_LOG_LEVEL, "")
	os.Unsetenv(ENV_LOG_LEVEL)

	dir := t.TempDir()
	path := filepath.Join(dir, "risc16.yaml")
	err := os.WriteFile(path, []byte("max_instructions: 500\ntrace: true\nlog_level: debug\n"), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(500, cfg.MaxInstructions)
	assert.Equal(engine.DEFAULT_ARCHITECTURE, cfg.Architecture)
	assert.True(cfg.Trace)
	assert.Equal(0, cfg.Parallelism)

	level, err := cfg.Level()
	assert.NoError(err)
	assert.Equal(zapcore.DebugLevel, level)

	cfg, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.NoError(err)
	assert.Equal(Default(), cfg)
}

func TestLoadInvalid(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	table := map[string]string{
		"budget.yaml":   "max_instructions: -1\n",
		"parallel.yaml": "parallelism: -4\n",
		"level.yaml":    "log_level: chatty\n",
	}

	for name, text := range table {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(text), 0644))
		_, err := Load(path)
		assert.ErrorIs(err, ErrConfigInvalid, name)
	}

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_instructions: [\n"), 0644))
	_, err := Load(path)
	assert.Error(err)
}

func TestEnvOverrides(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mine.txt"), []byte("in: r1=1;\nout: r1=1;\n"), 0644))

	t.Setenv(ENV_EXERCISES, dir)
	t.Setenv(ENV_LOG_LEVEL, "warn")

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(dir, cfg.Exercises)
	assert.Equal("warn", cfg.LogLevel)

	names, err := cfg.Store().List()
	assert.NoError(err)
	assert.Equal([]string{"mine.txt"}, names)
}

func TestSave(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(ENV_EXERCISES, "")
	os.Unsetenv(ENV_EXERCISES)
	t.Setenv(ENV_LOG_LEVEL, "")
	os.Unsetenv(ENV_LOG_LEVEL)

	path := filepath.Join(t.TempDir(), "risc16.yaml")

	cfg := Default()
	cfg.Parallelism = 3
	cfg.Exercises = "/srv/exercises"
	assert.NoError(cfg.Save(path))

	loaded, err := Load(path)
	assert.NoError(err)
	assert.Equal(cfg, loaded)
}

func TestEnvOverridesInvalid(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(ENV_LOG_LEVEL, "bogus")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(err, ErrConfigInvalid)
	assert.Nil(cfg)
}
