package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration: a 15x15 grid
// advanced every 200ms.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  15,
			Height: 15,
		},
		Tick: TickConfig{
			IntervalMS: 200,
		},
		Seed:  0,
		Theme: "ascii",
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			DBPath: "~/.snake/history.db",
		},
		SSH: SSHConfig{
			Address:        ":23235",
			IdleTimeoutMin: 30,
		},
	}
}
