// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const fileName = ".pklformation.toml"

// Config is the optional per-user/per-project tool configuration. Command
// line flags always win over values found here; a missing file simply
// yields the defaults.
type Config struct {
	Build  BuildConfig  `toml:"build"`
	Deploy DeployConfig `toml:"deploy"`
	Pkl    PklConfig    `toml:"pkl"`
}

type BuildConfig struct {
	// Default output format (json|yaml) when --format is not given
	Format string `toml:"format"`
}

type DeployConfig struct {
	// Seconds between stack/change set status polls
	PollIntervalSeconds int `toml:"poll_interval_seconds"`
}

type PklConfig struct {
	// Path to the pkl binary (default: found via PATH)
	Binary string `toml:"binary"`
	// Extra flags appended to every `pkl eval` invocation
	ExtraFlags []string `toml:"extra_flags"`
}

func NewDefaultConfig() Config {
	return Config{
		Build:  BuildConfig{Format: "json"},
		Deploy: DeployConfig{PollIntervalSeconds: 5},
	}
}

func (c Config) PollInterval() time.Duration {
	return time.Duration(c.Deploy.PollIntervalSeconds) * time.Second
}

// Load reads .pklformation.toml from the current directory, falling back
// to the user's home directory. Absence of the file is not an error.
func Load() (Config, error) {
	paths := []string{fileName}

	home, err := os.UserHomeDir()
	if err == nil {
		paths = append(paths, filepath.Join(home, fileName))
	}

	for _, path := range paths {
		cfg, found, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		if found {
			return cfg, nil
		}
	}

	return NewDefaultConfig(), nil
}

func loadFile(path string) (Config, bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, false, nil
		}
		return Config{}, false, err
	}

	cfg := NewDefaultConfig()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, false, fmt.Errorf("Parsing %s: %w", path, err)
	}

	if keys := meta.Undecoded(); len(keys) > 0 {
		return Config{}, false, fmt.Errorf("Parsing %s: unknown key '%s'", path, keys[0])
	}

	return cfg, true, nil
}
