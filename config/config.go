// Package config holds the configuration for embedding hosts: where the
// ledger database lives, which store backend to use, and how verbose the
// host should be.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Backend names for the ledger and registry stores.
const (
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// Config holds all configurable values.
type Config struct {
	// DataDir is the directory holding the ledger database and, by
	// default, the journal database.
	DataDir string

	// Backend selects the store backend: "bolt" or "memory".
	Backend string

	// JournalPath is the journal database path. Empty means an
	// in-memory journal.
	JournalPath string

	// LogLevel is the log verbosity for the embedding host: debug,
	// info, warn, or error.
	LogLevel string
}

// DefaultConfig returns the default configuration. The data directory is
// .canvas under the user's home directory.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataDir:  filepath.Join(home, ".canvas"),
		Backend:  BackendBolt,
		LogLevel: "info",
	}
}

// SaveConfig writes cfg to path as key=value lines.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("# canvas configuration\n")
	entries := map[string]string{
		"datadir":  cfg.DataDir,
		"backend":  cfg.Backend,
		"journal":  cfg.JournalPath,
		"loglevel": cfg.LogLevel,
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, entries[k])
	}

	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("config: write file: %w", err)
	}
	return nil
}

// LoadConfig reads a configuration file written by SaveConfig. Missing
// keys keep their default values; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, ErrConfigNotFound
		}
		return cfg, fmt.Errorf("config: read file: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return cfg, fmt.Errorf("%w: %q", ErrInvalidConfigLine, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "datadir":
			cfg.DataDir = value
		case "backend":
			cfg.Backend = value
		case "journal":
			cfg.JournalPath = value
		case "loglevel":
			cfg.LogLevel = value
		default:
			return cfg, fmt.Errorf("%w: unknown key %q", ErrInvalidConfigLine, key)
		}
	}

	return cfg, nil
}
