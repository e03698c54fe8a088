package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:   4,
			Target: 2048,
		},
		Render: RenderConfig{
			CellWidth: 7,
			Colors:    true,
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/records.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.t2048/t2048.log",
		},
	}
}
