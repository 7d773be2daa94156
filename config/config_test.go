package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.LevelPath)
	assert.True(t, cfg.Audio)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.Equal(t, 250*time.Millisecond, cfg.TransitionDuration)
	assert.Equal(t, 150.0, cfg.StackOffset)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STACKMATCH_LEVEL", "levels/two.yaml")
	t.Setenv("STACKMATCH_AUDIO", "false")
	t.Setenv("STACKMATCH_TRANSITION", "1s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "levels/two.yaml", cfg.LevelPath)
	assert.False(t, cfg.Audio)
	assert.Equal(t, time.Second, cfg.TransitionDuration)
}

func TestLoadError(t *testing.T) {
	t.Setenv("STACKMATCH_STACK_OFFSET", "wide")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("STACKMATCH_DEBUG", "false")
	cfg, err := Load()
	require.NoError(t, err)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-debug", "-offset", "90", "-color", "256"}))

	assert.True(t, cfg.Debug)
	assert.Equal(t, 90.0, cfg.StackOffset)
	assert.Equal(t, Color256, cfg.ColorMode)
	assert.Equal(t, "logs", cfg.LogDir)
}

func TestValidate(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.TransitionDuration = 0
	cfg.StackOffset = -1
	cfg.ColorMode = "mono"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transition duration")
	assert.Contains(t, err.Error(), "stack offset")
	assert.Contains(t, err.Error(), "mono")
}
