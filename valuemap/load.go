// SPDX-License-Identifier: MIT
//
// File: load.go
// Role: File loading with warn-and-degrade for optional value maps.

package valuemap

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/combispec/variables"
)

// Load parses the value-map document stored at path.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}

	return m, nil
}

// LoadOrEmpty loads an optional value map. An empty path yields an empty
// map silently; a missing or malformed file yields an empty map and a
// warning on logger (slog.Default() when nil).
func LoadOrEmpty(path string, logger *slog.Logger) *Map {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		return New(variables.NewSpace())
	}
	m, err := Load(path)
	if err != nil {
		logger.Warn("Value map unavailable, using empty map",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return New(variables.NewSpace())
	}
	logger.Debug("Loaded value map", slog.String("path", path), slog.Int("entries", m.Len()))

	return m
}
