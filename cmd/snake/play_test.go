package main

import (
	"errors"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/config"
)

func TestWithTheme(t *testing.T) {
	tests := []struct {
		name     string
		theme    string
		expected string
		wantErr  bool
	}{
		{"no override", "", "ascii", false},
		{"emoji", "emoji", "emoji", false},
		{"unknown theme", "bogus", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := withTheme(config.DefaultSnakeConfig(), tt.theme)
			if tt.wantErr {
				if !errors.Is(err, config.ErrInvalidConfig) {
					t.Errorf("withTheme(%q) error = %v, expected ErrInvalidConfig", tt.theme, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("withTheme(%q) failed: %v", tt.theme, err)
			}
			if cfg.Theme != tt.expected {
				t.Errorf("Theme = %q, expected %q", cfg.Theme, tt.expected)
			}
		})
	}
}
