// Package config resolves runtime settings from the environment and command-line flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Color modes accepted by ColorMode
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config holds every runtime setting; flags override environment values
type Config struct {
	LevelPath string `env:"STACKMATCH_LEVEL"`     // Single level file, built-in level when empty
	LevelDir  string `env:"STACKMATCH_LEVEL_DIR"` // Directory of level files, takes precedence over LevelPath
	Debug     bool   `env:"STACKMATCH_DEBUG"`
	Audio     bool   `env:"STACKMATCH_AUDIO" envDefault:"true"`
	LogDir    string `env:"STACKMATCH_LOG_DIR" envDefault:"logs"`
	ColorMode string `env:"STACKMATCH_COLOR" envDefault:"auto"`

	TransitionDuration time.Duration `env:"STACKMATCH_TRANSITION" envDefault:"250ms"`
	StackOffset        float64       `env:"STACKMATCH_STACK_OFFSET" envDefault:"150"`
}

// Load parses the environment into a Config with defaults applied
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// BindFlags registers flags on fs using the current values as defaults
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.LevelPath, "level", c.LevelPath, "Level file (YAML), built-in level when empty")
	fs.StringVar(&c.LevelDir, "levels", c.LevelDir, "Directory of level files played in name order")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Write JSON debug logs to the log directory")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "Enable sound cues")
	fs.StringVar(&c.LogDir, "logdir", c.LogDir, "Log directory used with -debug")
	fs.StringVar(&c.ColorMode, "color", c.ColorMode, "Color mode: auto, truecolor, 256")
	fs.DurationVar(&c.TransitionDuration, "transition", c.TransitionDuration, "Card move duration")
	fs.Float64Var(&c.StackOffset, "offset", c.StackOffset, "X offset of an accepted card from the stack top")
}

// Validate reports every invalid setting
func (c Config) Validate() error {
	var errs []error
	if c.TransitionDuration <= 0 {
		errs = append(errs, fmt.Errorf("transition duration must be positive, got %s", c.TransitionDuration))
	}
	if c.StackOffset <= 0 {
		errs = append(errs, fmt.Errorf("stack offset must be positive, got %g", c.StackOffset))
	}
	switch c.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		errs = append(errs, fmt.Errorf("unknown color mode %q", c.ColorMode))
	}
	return errors.Join(errs...)
}
