// Package config provides YAML-based configuration loading for gridsnake.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Tick    TickConfig    `yaml:"tick"`
	Seed    int64         `yaml:"seed"`
	Theme   string        `yaml:"theme"` // "ascii" or "emoji"
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TickConfig defines the simulation cadence.
type TickConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// Interval returns the tick interval as a duration.
func (t TickConfig) Interval() time.Duration {
	return time.Duration(t.IntervalMS) * time.Millisecond
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig defines the remote play server.
type SSHConfig struct {
	Address        string `yaml:"address"`
	HostKey        string `yaml:"host_key"`
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMin) * time.Minute
}

// Validate checks the values a session cannot run without.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("config: grid %dx%d must be positive: %w", c.Grid.Width, c.Grid.Height, ErrInvalidConfig)
	}
	if c.Grid.Width*c.Grid.Height < 2 {
		return fmt.Errorf("config: grid %dx%d needs at least two cells: %w", c.Grid.Width, c.Grid.Height, ErrInvalidConfig)
	}
	if c.Tick.IntervalMS <= 0 {
		return fmt.Errorf("config: tick interval %dms must be positive: %w", c.Tick.IntervalMS, ErrInvalidConfig)
	}
	switch c.Theme {
	case "", "ascii", "emoji":
	default:
		return fmt.Errorf("config: unknown theme %q: %w", c.Theme, ErrInvalidConfig)
	}
	return nil
}
