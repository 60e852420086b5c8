// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package deckconfig

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"

	"github.com/philocalyst/anki/cerrs"
)

// RunOptions holds the settings for one flashdeck invocation that aren't
// already implied by the command line: logging verbosity and the
// substrate-cache location.
type RunOptions struct {
	Logging LoggingOptions_t `json:"Logging"`
	Cache   CacheOptions_t   `json:"Cache"`
}

// LoggingOptions_t configures the ambient slog handler.
type LoggingOptions_t struct {
	Debug bool   `json:"Debug,omitempty"`
	Quiet bool   `json:"Quiet,omitempty"`
	Level string `json:"Level,omitempty"`
}

// CacheOptions_t configures the substrate cache (package substratecache).
type CacheOptions_t struct {
	Enabled bool   `json:"Enabled,omitempty"`
	Path    string `json:"Path,omitempty"`
}

// Default returns the baseline RunOptions applied before any file on disk
// is consulted.
func Default() *RunOptions {
	return &RunOptions{
		Logging: LoggingOptions_t{Level: "info"},
		Cache:   CacheOptions_t{Enabled: true, Path: ".anki-cache.db"},
	}
}

// Load reads RunOptions from name, a JSON file. A missing file is not an
// error: Load returns Default() unchanged.
func Load(name string) (*RunOptions, error) {
	slog.Debug("loading run options", "path", name)

	cfg := Default()
	sb, err := os.Stat(name)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("run options not found, using defaults", "path", name)
		return cfg, nil
	} else if err != nil {
		return cfg, err
	} else if sb.IsDir() {
		return cfg, cerrs.ErrNotDirectory
	} else if !sb.Mode().IsRegular() {
		return cfg, cerrs.ErrNotAFile
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return cfg, err
	}

	tmp := *cfg
	if err := json.Unmarshal(data, &tmp); err != nil {
		return cfg, err
	}
	slog.Debug("loaded run options", "path", name, "options", tmp)
	return &tmp, nil
}
